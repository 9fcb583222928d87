// Package smallvec provides a generic, contiguous sequence container with a
// small-buffer optimization: the first InlineCapacity elements live in storage
// embedded in the Vector value itself, and the container transparently
// promotes to a single heap-owned block once it outgrows that region.
//
// What:
//
//   - Vector[T] holds up to InlineCapacity elements with zero allocations.
//   - The first growth past InlineCapacity promotes storage to the heap;
//     promotion is one-way — removing elements never demotes back to inline.
//   - Full sequence surface: checked and unchecked access, push/pop,
//     positional insert and erase, reserve/resize/clear, forward and reverse
//     iteration, clone, move and swap across every inline/heap combination.
//
// Why:
//
//   - Hot paths that build many short, short-lived sequences (tokens, call
//     arguments, scratch rows) pay nothing for the common small case.
//   - Unlike a fixed array, capacity is still unbounded: past the inline
//     region the container grows like an ordinary vector.
//
// Growth policy:
//
//   - Capacity doubles while at or below 1024 slots, then grows by 1.5x to
//     bound waste on large containers; appends stay amortized O(1).
//
// Complexity:
//
//   - At/Set/Push/Pop:            O(1) (Push amortized)
//   - Insert/Erase at position i: O(Len−i)
//   - Reserve/Resize/Clone:       O(Len)
//   - Swap:                       O(1) heap/heap, O(Len) otherwise
//
// Errors:
//
//   - ErrOutOfRange:       index, position, or range argument outside its bound.
//   - ErrCapacityOverflow: capacity request negative or beyond the addressable range.
//
// A Vector must not be duplicated by plain assignment once promoted — the two
// values would share one heap block. Use Clone, CopyFrom, or MoveFrom.
package smallvec
