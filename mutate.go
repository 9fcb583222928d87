package smallvec

// Push appends x. Capacity grows by the amortized policy when exhausted; if
// growth fails the element is not placed and the vector is unchanged.
//
// Complexity: amortized O(1).
func (v *Vector[T]) Push(x T) error {
	if err := v.grow(v.n + 1); err != nil {
		return err
	}
	v.slots()[v.n] = x
	v.n++

	return nil
}

// Append pushes xs in order with a single capacity decision for the whole
// batch. On growth failure nothing is appended.
//
// Complexity: amortized O(len(xs)).
func (v *Vector[T]) Append(xs ...T) error {
	if len(xs) == 0 {
		return nil
	}
	if err := v.grow(v.n + len(xs)); err != nil {
		return err
	}
	copy(v.slots()[v.n:], xs)
	v.n += len(xs)

	return nil
}

// Pop removes and returns the last element, clearing its slot.
// The second result is false on an empty vector, which is left unchanged.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}

	s := v.slots()
	v.n--
	x := s[v.n]
	s[v.n] = zero

	return x, true
}

// Insert places x at position i, shifting [i, Len()) one slot toward the end.
// i == Len() appends. The valid range is 0 <= i <= Len(); anything else fails
// with ErrOutOfRange before any mutation, as does a growth failure.
//
// Complexity: O(Len()-i), plus relocation when growth reallocates.
func (v *Vector[T]) Insert(i int, x T) error {
	if i < 0 || i > v.n {
		return ErrOutOfRange
	}
	if err := v.grow(v.n + 1); err != nil {
		return err
	}

	s := v.slots()
	copy(s[i+1:v.n+1], s[i:v.n]) // copy is overlap-safe, shifts back-to-front
	s[i] = x
	v.n++

	return nil
}

// Erase removes the element at position i, shifting the tail left by one.
// The valid range is 0 <= i < Len(); anything else fails with ErrOutOfRange
// and no mutation. After success i addresses the old successor element.
//
// Complexity: O(Len()-i).
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.n {
		return ErrOutOfRange
	}

	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), shifting the tail left to
// close the gap and clearing the vacated trailing slots. The range is valid
// when 0 <= first <= last <= Len(); anything else fails with ErrOutOfRange
// and no mutation. An empty range is a no-op. After success, index first
// addresses the element that followed the erased range (or equals the new
// Len() when the range reached the end).
//
// Complexity: O(Len()-first).
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > v.n {
		return ErrOutOfRange
	}
	if first == last {
		return nil
	}

	s := v.slots()
	copy(s[first:], s[last:v.n])
	gap := last - first
	clear(s[v.n-gap : v.n])
	v.n -= gap

	return nil
}
