package wbt

import (
	"errors"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// AccumOp selects how a cell's value is pushed into its downstream neighbour.
type AccumOp int

const (
	// AccumSum adds the upstream value (flow accumulation, contributing area).
	AccumSum AccumOp = iota
	// AccumMax keeps the largest upstream value (max-upslope-value tools).
	AccumMax
)

// ErrFlowCycle reports a malformed flow-direction grid: the in-degree-gated
// traversal emptied before every participating cell was resolved, which can
// only happen when the directed graph contains a cycle. Correctly
// constructed back-links cannot cycle, so this points at a corrupted
// externally supplied pointer raster.
var ErrFlowCycle = errors.New("flow-direction grid contains a cycle")

// InDegrees counts, per cell, the neighbours whose flow direction points
// into it. NoData cells and cells carrying the no-direction sentinel (pits
// and outlets, terminal by construction) are marked -1, distinguishing them
// from true in-degree-0 headwater cells.
func InDegrees(dirs []int8, dem *grid.Real) []int8 {
	gd := dem.GD
	ind := make([]int8, gd.Ncells())
	for i := range ind {
		if gd.IsNodata(dem.A[i]) || dirs[i] == pointer.None {
			ind[i] = -1
		}
	}
	for i, k := range dirs {
		if k == pointer.None || gd.IsNodata(dem.A[i]) {
			continue
		}
		r, c := gd.RowCol(i)
		if t := gd.CellIndex(r+pointer.Dy[k], c+pointer.Dx[k]); t >= 0 && ind[t] >= 0 {
			ind[t]++
		}
	}
	return ind
}

// Accumulate propagates per-cell local values downstream over the
// flow-direction grid: a cell is resolved only once all of its inflowing
// neighbours have been, so every upstream contribution is incorporated
// exactly once. vals supplies the initial local value per cell (e.g. 1. for
// flow accumulation, a weights raster, a value raster for AccumMax);
// terminal cells (pits/outlets, in-degree marker -1) keep their local value
// and neither receive nor propagate. NoData closure holds: NoData cells come
// out as the sentinel.
func Accumulate(dirs []int8, dem *grid.Real, vals []float64, op AccumOp) ([]float64, error) {
	gd := dem.GD
	n := gd.Ncells()
	if len(dirs) != n || len(vals) != n {
		panic("Accumulate: array dimension error")
	}

	out := make([]float64, n)
	copy(out, vals)
	ind := InDegrees(dirs, dem)

	nparticipating, stack := 0, make([]int, 0, n/4+1)
	for i, d := range ind {
		if gd.IsNodata(dem.A[i]) {
			out[i] = gd.Nodata
			continue
		}
		if d < 0 {
			continue
		}
		nparticipating++
		if d == 0 {
			stack = append(stack, i) // headwater
		}
	}

	nresolved := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nresolved++

		k := dirs[i]
		r, c := gd.RowCol(i)
		t := gd.CellIndex(r+pointer.Dy[k], c+pointer.Dx[k])
		if t < 0 || ind[t] < 0 {
			continue // drains off grid or into a terminal cell
		}
		switch op {
		case AccumMax:
			if out[i] > out[t] {
				out[t] = out[i]
			}
		default:
			out[t] += out[i]
		}
		if ind[t]--; ind[t] == 0 {
			stack = append(stack, t)
		}
	}

	if nresolved < nparticipating {
		return out, ErrFlowCycle
	}
	return out, nil
}

// UnitValues returns the local-value array for plain flow accumulation:
// 1. at every valid cell, the NoData sentinel elsewhere.
func UnitValues(dem *grid.Real) []float64 {
	gd := dem.GD
	vals := make([]float64, gd.Ncells())
	for i, z := range dem.A {
		if gd.IsNodata(z) {
			vals[i] = gd.Nodata
		} else {
			vals[i] = 1.
		}
	}
	return vals
}
