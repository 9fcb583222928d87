package smallvec_test

import (
	"testing"

	"github.com/katalvlaran/smallvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Promotion and Reserve
//----------------------------------------------------------------------------//

// TestInlineUntilFull: pushes up to InlineCapacity never promote.
func TestInlineUntilFull(t *testing.T) {
	var v smallvec.Vector[int]
	for i := 0; i < smallvec.InlineCapacity; i++ {
		require.NoError(t, v.Push(i))
		assert.False(t, v.Spilled(), "push %d must not promote", i)
		assert.Equal(t, smallvec.InlineCapacity, v.Cap())
	}
}

// TestPromotionPoint: the push that exceeds InlineCapacity promotes, and the
// vector never reverts to inline afterwards.
func TestPromotionPoint(t *testing.T) {
	var v smallvec.Vector[int]
	for i := 0; i < smallvec.InlineCapacity; i++ {
		require.NoError(t, v.Push(i))
	}

	require.NoError(t, v.Push(smallvec.InlineCapacity))
	assert.True(t, v.Spilled(), "push past the inline region must promote")
	assert.Greater(t, v.Cap(), smallvec.InlineCapacity, "a heap block is always larger than the inline region")

	// Shrinking all the way down never demotes.
	require.NoError(t, v.Resize(1, 0))
	assert.True(t, v.Spilled(), "promotion is one-way")
	v.Clear()
	assert.True(t, v.Spilled(), "Clear must not release the heap block")
}

// TestReserve_NoOpWhileSatisfied: requests the current region already covers
// change nothing, including n <= InlineCapacity while inline.
func TestReserve_NoOpWhileSatisfied(t *testing.T) {
	v := smallvec.Of(1, 2, 3)

	require.NoError(t, v.Reserve(smallvec.InlineCapacity))
	assert.False(t, v.Spilled(), "inline storage must not be abandoned for a request it satisfies")
	assert.Equal(t, smallvec.InlineCapacity, v.Cap())

	require.NoError(t, v.Reserve(20))
	assert.True(t, v.Spilled())
	assert.Equal(t, 20, v.Cap(), "Reserve allocates exactly the requested slots")

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 20, v.Cap(), "a satisfied request on a promoted vector is a no-op")
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "elements survive relocation in order")
}

// TestReserve_Overflow: invalid requests fail and leave the vector untouched.
func TestReserve_Overflow(t *testing.T) {
	v := smallvec.Of(1, 2, 3)

	err := v.Reserve(-1)
	assert.ErrorIs(t, err, smallvec.ErrCapacityOverflow)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, smallvec.InlineCapacity, v.Cap())
	assert.False(t, v.Spilled())
	assert.Equal(t, []int{1, 2, 3}, v.Data(), "failed Reserve must leave state unchanged")
}

//----------------------------------------------------------------------------//
// Resize and Clear
//----------------------------------------------------------------------------//

// TestResize covers grow, shrink, no-op, and the negative-length error.
func TestResize(t *testing.T) {
	var v smallvec.Vector[int]

	require.NoError(t, v.Resize(3, 7))
	assert.Equal(t, []int{7, 7, 7}, v.Data(), "growth fill-constructs new slots")

	require.NoError(t, v.Resize(3, 9))
	assert.Equal(t, []int{7, 7, 7}, v.Data(), "equal length is a no-op")

	require.NoError(t, v.Resize(1, 0))
	assert.Equal(t, []int{7}, v.Data(), "shrink drops trailing elements")

	require.NoError(t, v.Resize(12, 5))
	assert.True(t, v.Spilled())
	assert.Equal(t, 7, v.Data()[0], "surviving element keeps its value across promotion")
	for _, x := range v.Data()[1:] {
		assert.Equal(t, 5, x)
	}

	err := v.Resize(-2, 0)
	assert.ErrorIs(t, err, smallvec.ErrCapacityOverflow)
	assert.Equal(t, 12, v.Len(), "failed Resize must leave length unchanged")
}

// TestClear_KeepsCapacity: Clear empties the vector without touching capacity.
func TestClear_KeepsCapacity(t *testing.T) {
	v := smallvec.Of(1, 2, 3)
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, smallvec.InlineCapacity, v.Cap())

	big := smallvec.Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	before := big.Cap()
	big.Clear()
	assert.Equal(t, 0, big.Len())
	assert.Equal(t, before, big.Cap())
	assert.True(t, big.Spilled())

	// The cleared vector is fully reusable.
	require.NoError(t, big.Push(42))
	got, err := big.At(0)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

// TestGrowth_Amortized: a long run of appends reallocates only a logarithmic
// number of times, the amortization contract of the growth policy.
func TestGrowth_Amortized(t *testing.T) {
	const total = 100000

	var v smallvec.Vector[int]
	reallocs := 0
	prevCap := v.Cap()
	for i := 0; i < total; i++ {
		require.NoError(t, v.Push(i))
		if v.Cap() != prevCap {
			reallocs++
			prevCap = v.Cap()
		}
	}

	assert.Equal(t, total, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), total)
	assert.Less(t, reallocs, 64, "growth must be geometric, not linear")

	// Spot-check contents survived every relocation.
	for _, i := range []int{0, 1, smallvec.InlineCapacity, 12345, total - 1} {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}
