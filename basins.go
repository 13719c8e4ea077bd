package wbt

import (
	"fmt"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
)

// Basins labels every valid cell with a 1-based id shared by all cells
// draining to the same terminal (outlet/pit) cell. Labels are assigned in
// the order terminals are encountered walking the topological ordering, so
// the output is deterministic for a given direction grid.
func Basins(dem *grid.Real, dirs []int8) (*grid.Real, error) {
	strc, err := BuildStructure(dem, dirs)
	if err != nil {
		return nil, err
	}
	gd := dem.GD
	out := grid.NewReal(gd)
	nb := 0
	for p := strc.Nc - 1; p >= 0; p-- { // terminals label themselves first
		i := strc.Cids[p]
		if strc.Ds[p] < 0 {
			nb++
			out.A[i] = float64(nb)
		} else {
			out.A[i] = out.A[strc.Cids[strc.Ds[p]]]
		}
	}
	return out, nil
}

// Watershed labels each cell with the value of the nearest pour point
// encountered walking downstream; cells draining off grid without passing a
// pour point stay NoData. pourpts is an auxiliary raster holding outlet ids
// at pour-point cells and NoData (or zero) elsewhere.
func Watershed(dem *grid.Real, dirs []int8, pourpts *grid.Real) (*grid.Real, error) {
	gd := dem.GD
	if !gd.Compatible(pourpts.GD) {
		return nil, fmt.Errorf("Watershed: pour-point raster extent does not match DEM")
	}
	strc, err := BuildStructure(dem, dirs)
	if err != nil {
		return nil, err
	}
	out := grid.NewReal(gd)
	for p := strc.Nc - 1; p >= 0; p-- {
		i := strc.Cids[p]
		if v := pourpts.A[i]; !pourpts.GD.IsNodata(v) && v != 0. {
			out.A[i] = v // the pour point claims itself and, transitively, its upslope
			continue
		}
		if strc.Ds[p] >= 0 {
			out.A[i] = out.A[strc.Cids[strc.Ds[p]]]
		}
	}
	return out, nil
}
