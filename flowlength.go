package wbt

import (
	"fmt"
	"math"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// DownslopeFlowpathLength measures, per cell, the distance along the D8 path
// to its terminal cell (outlet or pit), optionally scaling each step by a
// weights raster (e.g. resistance or unit-cost surfaces). A NoData weight
// degrades to 1. for that step rather than poisoning the path. Computed
// downstream-first over the reversed topological order so each cell is a
// single lookup on its downslope neighbour.
func DownslopeFlowpathLength(dem *grid.Real, dirs []int8, weights *grid.Real) (*grid.Real, error) {
	gd := dem.GD
	if weights != nil && !gd.Compatible(weights.GD) {
		return nil, fmt.Errorf("DownslopeFlowpathLength: weights raster extent does not match DEM")
	}
	strc, err := BuildStructure(dem, dirs)
	if err != nil {
		return nil, err
	}

	cwx, cwy, dd := make([]float64, gd.Nrow), make([]float64, gd.Nrow), make([]float64, gd.Nrow)
	for r := 0; r < gd.Nrow; r++ {
		x, y, err := gd.CellSizesAt(r)
		if err != nil {
			return nil, err
		}
		cwx[r], cwy[r], dd[r] = x, y, math.Hypot(x, y)
	}

	out := grid.NewReal(gd)
	for p := strc.Nc - 1; p >= 0; p-- { // downstream cells first
		i := strc.Cids[p]
		r, _ := gd.RowCol(i)
		if strc.Ds[p] < 0 {
			out.A[i] = 0.
			continue
		}
		k := dirs[i]
		dist := dd[r]
		if !pointer.Diagonal(k) {
			if k == 1 || k == 5 {
				dist = cwx[r]
			} else {
				dist = cwy[r]
			}
		}
		if weights != nil {
			if w := weights.A[i]; !weights.GD.IsNodata(w) {
				dist *= w
			}
		}
		out.A[i] = dist + out.A[strc.Cids[strc.Ds[p]]]
	}
	return out, nil
}
