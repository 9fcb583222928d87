package smallvec

// White-box bridge for tests only: exposes the spare region so tests can
// verify that vacated slots are cleared and hold no stale references.
// Compiled solely into the test binary (_test.go suffix).

// SpareSlots returns the slots beyond Len() of the active region.
func SpareSlots[T any](v *Vector[T]) []T {
	return v.slots()[v.n:]
}
