package wbt

import (
	"testing"

	"github.com/jblindsay/whitebox-tools-sub015/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateChain(t *testing.T) {
	dem := testGrid([][]float64{{5, 4, 3, 2, 1}})
	dirs, npits, err := FlowDirections(dem, 1, false)
	require.NoError(t, err)
	require.Zero(t, npits)

	acc, err := Accumulate(dirs, dem, UnitValues(dem), AccumSum)
	require.NoError(t, err)
	// mass accumulates down the chain; the terminal outlet cell is outside
	// the propagation network and keeps its local value
	assert.Equal(t, []float64{1, 2, 3, 4, 1}, acc)
}

func TestAccumulateConfluence(t *testing.T) {
	// hand-built network on a 3x3 patch: three chains meet at the centre
	// cell, which drains east toward the terminal outlet
	//   (0,0)→(0,1)→(1,1)   (1,0)→(1,1)   (2,0)→(2,1)→(1,1)   (1,1)→(1,2)
	dem := testGrid([][]float64{
		{9, 8, 9},
		{7, 6, 1},
		{9, 8, 9},
	})
	dirs := []int8{
		1, 3, pointer.None,
		1, 1, pointer.None,
		1, 7, pointer.None,
	}

	ind := InDegrees(dirs, dem)
	assert.Equal(t, int8(0), ind[0], "headwater")
	assert.Equal(t, int8(1), ind[1])
	assert.Equal(t, int8(3), ind[4], "confluence receives three inflows")
	assert.Equal(t, int8(-1), ind[5], "terminal outlet is marked, not counted")

	acc, err := Accumulate(dirs, dem, UnitValues(dem), AccumSum)
	require.NoError(t, err)
	assert.Equal(t, 6., acc[4], "confluence collects every upstream cell exactly once")
	assert.Equal(t, 1., acc[5])
}

func TestAccumulateMax(t *testing.T) {
	dem := testGrid([][]float64{{5, 4, 3, 2, 1}})
	dirs, _, err := FlowDirections(dem, 1, false)
	require.NoError(t, err)

	vals := []float64{7, 1, 9, 1, 1}
	acc, err := Accumulate(dirs, dem, vals, AccumMax)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 7, 9, 9, 1}, acc)
}

func TestAccumulateWeighted(t *testing.T) {
	dem := testGrid([][]float64{{5, 4, 3, 2, 1}})
	dirs, _, err := FlowDirections(dem, 1, false)
	require.NoError(t, err)

	vals := []float64{.5, .25, 0, 1, 1}
	acc, err := Accumulate(dirs, dem, vals, AccumSum)
	require.NoError(t, err)
	assert.Equal(t, []float64{.5, .75, .75, 1.75, 1}, acc)
}

func TestAccumulateCycleDetected(t *testing.T) {
	dem := testGrid([][]float64{{1, 1, 2}})
	// (0,0) and (0,1) point at each other: a corrupted pointer input
	dirs := []int8{1, 5, 5}

	_, err := Accumulate(dirs, dem, UnitValues(dem), AccumSum)
	require.ErrorIs(t, err, ErrFlowCycle)
}

func TestInDegreesMarkers(t *testing.T) {
	nd := -9999.
	dem := testGrid([][]float64{{5, nd, 1}})
	dirs := []int8{1, pointer.None, pointer.None}

	ind := InDegrees(dirs, dem)
	assert.Equal(t, int8(0), ind[0], "valid cell with outflow but no inflow")
	assert.Equal(t, int8(-1), ind[1], "NoData cell")
	assert.Equal(t, int8(-1), ind[2], "no-direction terminal")
}
