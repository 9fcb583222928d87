package smallvec

// Clone returns an independent copy of v: fresh storage sized by v's length,
// every element copied in order. The clone is inline-active when
// Len() <= InlineCapacity and heap-active otherwise, regardless of v's own
// storage mode; it never shares v's heap block.
//
// Complexity: O(Len()).
func (v *Vector[T]) Clone() Vector[T] {
	var out Vector[T]
	if v.n > InlineCapacity {
		out.heap = make([]T, v.n)
	}
	relocate(out.slots(), v.slots()[:v.n])
	out.n = v.n

	return out
}

// CopyFrom replaces v's contents with an independent copy of src, releasing
// v's previous storage. Self-copy is a no-op.
//
// Complexity: O(src.Len()).
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	*v = src.Clone()
}

// MoveFrom transfers src's contents into v, releasing v's previous storage.
// A heap-active source hands over its block in O(1) with no element touched;
// an inline-active source has its elements relocated into v's inline region.
// Either way src is left valid, empty, and inline-active. Self-move is a
// no-op: stealing from oneself would drop the block before reading it.
//
// Complexity: O(1) for a heap source, O(src.Len()) for an inline source.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}

	v.Clear()
	v.heap = nil

	if src.heap != nil {
		v.heap = src.heap
		v.n = src.n
		src.heap = nil
		src.n = 0

		return
	}

	relocate(v.inline[:], src.inline[:src.n])
	v.n = src.n
	src.Clear()
}

// Swap exchanges the contents of v and other in place.
//
// Three cases:
//   - both heap-active: the blocks and lengths swap, O(1), no element touched;
//   - both inline-active: the common prefix swaps pairwise, the longer one's
//     suffix relocates into the other's vacant slots and its source slots are
//     cleared, then the lengths swap;
//   - mixed: three moves through a temporary, so the heap block changes hands
//     exactly once and is never owned by two vectors at rest.
//
// Each vector ends in the storage mode its new contents dictate.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}

	switch {
	case v.heap != nil && other.heap != nil:
		v.heap, other.heap = other.heap, v.heap
		v.n, other.n = other.n, v.n

	case v.heap == nil && other.heap == nil:
		short, long := v, other
		if short.n > long.n {
			short, long = long, short
		}
		for i := 0; i < short.n; i++ {
			short.inline[i], long.inline[i] = long.inline[i], short.inline[i]
		}
		relocate(short.inline[short.n:long.n], long.inline[short.n:long.n])
		clear(long.inline[short.n:long.n])
		v.n, other.n = other.n, v.n

	default:
		var tmp Vector[T]
		tmp.MoveFrom(v)
		v.MoveFrom(other)
		other.MoveFrom(&tmp)
	}
}

// Swap exchanges the contents of a and b. Symmetric free-function form of
// (*Vector).Swap.
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}
