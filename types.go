// Package smallvec defines the Vector container, its tuning constants,
// and sentinel errors for github.com/katalvlaran/smallvec.
package smallvec

import (
	"errors"
	"math"
)

// Sentinel errors for vector operations.
var (
	// ErrOutOfRange indicates an index, position, or range argument outside its documented bound.
	ErrOutOfRange = errors.New("smallvec: index out of range")

	// ErrCapacityOverflow indicates a capacity request that is negative or
	// exceeds the addressable range.
	ErrCapacityOverflow = errors.New("smallvec: capacity request out of range")
)

const (
	// InlineCapacity is the number of element slots embedded in every Vector.
	// Sequences up to this length never touch the heap.
	InlineCapacity = 8

	// largeSizeThreshold is the capacity above which growth switches from
	// doubling to 1.5x, trading fewer reallocations for bounded waste.
	largeSizeThreshold = 1024

	// maxCapacity bounds any single capacity request. Half the int range keeps
	// the doubling policy itself overflow-free.
	maxCapacity = math.MaxInt / 2
)

// Vector is a contiguous sequence of T with small-buffer optimization.
//
// Elements at indices [0, Len()) are live; slots beyond Len() hold the zero
// value of T so the backing storage never pins stale references. Storage is
// the embedded inline array until the container grows past InlineCapacity,
// then a single exclusively-owned heap block; heap == nil is the storage tag.
//
// The zero value is an empty, inline-active vector ready for use. A promoted
// Vector must not be duplicated by plain assignment (the copies would share
// the heap block); transfer values with Clone, CopyFrom, or MoveFrom.
//
// Vector is a plain value type: concurrent reads are safe only while no
// goroutine mutates it, exactly as for an ordinary slice.
type Vector[T any] struct {
	n      int               // live element count; n <= Cap() always
	heap   []T               // non-nil once promoted; len(heap) == Cap() then
	inline [InlineCapacity]T // embedded storage, active while heap == nil
}

// slots returns the full-capacity active region. Every operation addresses
// storage through this accessor, so inline and heap regions cannot be mixed.
func (v *Vector[T]) slots() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inline[:]
}
