package smallvec

import "iter"

// All returns a forward iterator over index/value pairs in [0, Len()).
// Like a slice iterator, it is invalidated by any mutating call: mutating the
// vector while a yielded loop is still running is undefined.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.slots()
		for i := 0; i < v.n; i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over index/value pairs, from Len()-1
// down to 0. Same validity contract as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.slots()
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values returns a forward iterator over the element values only.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := v.slots()
		for i := 0; i < v.n; i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}
