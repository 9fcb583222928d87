package smallvec

// New returns an empty Vector. Equivalent to the zero value; provided for
// symmetry with Of and Repeat.
func New[T any]() Vector[T] {
	return Vector[T]{}
}

// Of builds a Vector holding the given values in order. The result is
// inline-active when len(xs) <= InlineCapacity and heap-active otherwise.
//
// Complexity: O(len(xs)).
func Of[T any](xs ...T) Vector[T] {
	var v Vector[T]
	if len(xs) > InlineCapacity {
		v.heap = make([]T, len(xs))
	}
	relocate(v.slots(), xs)
	v.n = len(xs)

	return v
}

// Repeat builds a Vector of n copies of fill.
// Returns ErrCapacityOverflow if n is negative or exceeds the addressable range.
//
// Complexity: O(n).
func Repeat[T any](n int, fill T) (Vector[T], error) {
	var v Vector[T]
	if err := v.Resize(n, fill); err != nil {
		return Vector[T]{}, err
	}

	return v, nil
}

// Len reports the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap reports the number of slots available without reallocation:
// InlineCapacity while inline-active, the heap block's length after promotion.
func (v *Vector[T]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}

	return InlineCapacity
}

// Spilled reports whether heap storage is active. Diagnostic only: the
// logical contract of the container does not depend on it.
func (v *Vector[T]) Spilled() bool { return v.heap != nil }

// At returns the element at index i, or ErrOutOfRange if i is not in [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, ErrOutOfRange
	}

	return v.slots()[i], nil
}

// Set replaces the element at index i, or returns ErrOutOfRange if i is not
// in [0, Len()). The vector is unchanged on error.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.n {
		return ErrOutOfRange
	}
	v.slots()[i] = x

	return nil
}

// Front returns the first element, or ErrOutOfRange if the vector is empty.
func (v *Vector[T]) Front() (T, error) { return v.At(0) }

// Back returns the last element, or ErrOutOfRange if the vector is empty.
func (v *Vector[T]) Back() (T, error) { return v.At(v.n - 1) }

// Data returns the contiguous live elements [0, Len()) as a slice sharing the
// vector's storage. Writes through it are visible in the vector; this is the
// unchecked-indexing surface. The slice is valid only until the next mutating
// call, and its capacity is clipped so appends to it cannot write into the
// vector's spare slots.
func (v *Vector[T]) Data() []T {
	return v.slots()[:v.n:v.n]
}
