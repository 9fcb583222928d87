package smallvec

// relocate copies the live elements of src, in order, into fresh storage dst.
// Element transfer in Go is a slice copy and cannot fail partway, so the
// rollback half of the relocation contract is vacuous here. The source slots
// are left intact; retiring them (clearing, or releasing a heap block) is the
// caller's responsibility once the whole transfer has succeeded.
func relocate[T any](dst, src []T) {
	copy(dst, src)
}

// Reserve guarantees Cap() >= n, allocating a heap block of exactly n slots
// and relocating the live elements into it when the current region is too
// small. Requests already satisfied are no-ops: in particular, inline storage
// is never abandoned for n <= InlineCapacity. A promoted block is therefore
// always strictly larger than the inline region.
//
// Returns ErrCapacityOverflow for negative or unaddressable n, with the
// vector unchanged.
//
// Complexity: O(Len()) when it reallocates, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 || n > maxCapacity {
		return ErrCapacityOverflow
	}
	if n <= v.Cap() {
		return nil
	}

	block := make([]T, n)
	relocate(block, v.slots()[:v.n])
	if v.heap == nil {
		// Retire the inline region: its slots must not keep values alive.
		clear(v.inline[:v.n])
	}
	v.heap = block

	return nil
}

// grow ensures capacity for need elements using the growth policy: double the
// current capacity while at or below largeSizeThreshold, grow by 1.5x above
// it, and never less than need itself. need < 0 means the caller's size
// arithmetic overflowed.
func (v *Vector[T]) grow(need int) error {
	if need < 0 {
		return ErrCapacityOverflow
	}
	if need <= v.Cap() {
		return nil
	}

	c := v.Cap()
	suggestion := c * 2
	if c > largeSizeThreshold {
		suggestion = c + c/2
	}
	if suggestion > maxCapacity {
		suggestion = maxCapacity
	}

	return v.Reserve(max(suggestion, need))
}

// Resize sets the length to n. Growth reserves capacity first and then
// fill-constructs the new trailing slots with fill; shrinking clears the
// surplus trailing slots; n == Len() is a no-op. Returns ErrCapacityOverflow
// for negative or unaddressable n, with the vector unchanged.
//
// Complexity: O(|n - Len()|), plus relocation when growth reallocates.
func (v *Vector[T]) Resize(n int, fill T) error {
	switch {
	case n == v.n:
		return nil
	case n < v.n:
		if n < 0 {
			return ErrCapacityOverflow
		}
		clear(v.slots()[n:v.n])
		v.n = n

		return nil
	}

	if err := v.Reserve(n); err != nil {
		return err
	}
	s := v.slots()
	for i := v.n; i < n; i++ {
		s[i] = fill
	}
	v.n = n

	return nil
}

// Clear drops all elements, clearing their slots. Capacity is untouched: a
// promoted vector keeps its heap block and stays heap-active.
//
// Complexity: O(Len()).
func (v *Vector[T]) Clear() {
	clear(v.slots()[:v.n])
	v.n = 0
}
