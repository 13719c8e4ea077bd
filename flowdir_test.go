package wbt

import (
	"testing"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowDirectionsTieBreak(t *testing.T) {
	// uniform drop to every neighbour: cardinal slopes beat the longer
	// diagonals, and the first cardinal encountered clockwise from
	// north-east is due east
	dem := testGrid([][]float64{
		{4, 4, 4},
		{4, 5, 4},
		{4, 4, 4},
	})
	dirs, npits, err := FlowDirections(dem, 1, false)
	require.NoError(t, err)
	require.Zero(t, npits)
	assert.Equal(t, int8(1), dirs[4])
}

func TestFlowDirectionsNonSquareCells(t *testing.T) {
	gd := grid.NewDefinition(3, 3, 1.)
	gd.Cwy = 2. // tall cells: the northward drop is over a longer run
	g := grid.NewReal(gd)
	g.SetRowData(0, []float64{4, 3, 4})
	g.SetRowData(1, []float64{4, 5, 3})
	g.SetRowData(2, []float64{4, 4, 4})

	dirs, _, err := FlowDirections(g, 1, false)
	require.NoError(t, err)
	// north drop 2/2=1 versus east drop 2/1=2: east wins
	assert.Equal(t, int8(1), dirs[4])
}

func TestFlowDirectionsInteriorPit(t *testing.T) {
	nd := -9999.
	dem := testGrid([][]float64{
		{5, 5, 5, 5, 5},
		{5, 1, 5, nd, 5},
		{5, 5, 5, 2, 5},
		{5, 5, 5, 5, 5},
	})
	dirs, npits, err := FlowDirections(dem, 1, false)
	require.NoError(t, err)

	assert.Equal(t, 1, npits, "only the pit away from NoData counts")
	assert.Equal(t, pointer.None, dirs[1*5+1])
	assert.Equal(t, pointer.None, dirs[2*5+3], "local minimum beside NoData: no direction but not an interior pit")
}

func TestFlowDirectionsParallelConsistency(t *testing.T) {
	dem := testGrid([][]float64{
		{9, 8, 7, 6, 5, 6},
		{8, 7, 6, 5, 4, 5},
		{7, 6, 5, 4, 3, 4},
		{6, 5, 4, 3, 2, 3},
		{5, 4, 3, 2, 1, 2},
		{6, 5, 4, 3, 2, 1},
	})
	d1, p1, err := FlowDirections(dem, 1, false)
	require.NoError(t, err)
	d4, p4, err := FlowDirections(dem, 4, false)
	require.NoError(t, err)
	assert.Equal(t, d1, d4, "row partitioning must not change the result")
	assert.Equal(t, p1, p4)
}

func TestFlowDirectionsIdempotentOnFilledDEM(t *testing.T) {
	dem := testGrid([][]float64{
		{9, 8, 9, 9, 9, 9},
		{9, 2, 9, 9, 4, 9},
		{9, 3, 9, 4, 1, 4},
		{9, 9, 9, 9, 4, 9},
		{7, 6, 5, 9, 9, 9},
		{9, 9, 9, 9, 9, 9},
	})
	filled, _ := FillDepressions(dem, DefaultEpsilon, false)

	d1, npits, err := FlowDirections(filled, 1, false)
	require.NoError(t, err)
	assert.Zero(t, npits, "a filled surface has no interior pits left")

	d2, _, err := FlowDirections(filled, 1, false)
	require.NoError(t, err)
	assert.Equal(t, d1, d2, "re-resolution of a resolved surface is stable")

	// and the resolver's network on the filled surface is acyclic
	_, err = Accumulate(d1, filled, UnitValues(filled), AccumSum)
	require.NoError(t, err)
}
