package wbt

import (
	"fmt"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// PointerGrid encodes a direction array as a raster in the given convention:
// power-of-two codes per cell, 0 at pits/outlets, NoData preserved.
func PointerGrid(dem *grid.Real, dirs []int8, conv pointer.Convention) *grid.Real {
	gd := dem.GD
	out := grid.NewReal(gd)
	for i, k := range dirs {
		if gd.IsNodata(dem.A[i]) {
			continue
		}
		out.A[i] = conv.Encode(k)
	}
	return out
}

// DecodePointerGrid converts a pointer raster back to a direction array.
// Any valid-data cell holding a code outside the expected set aborts with
// the offending location, since a corrupted flow network cannot safely be
// reasoned about further.
func DecodePointerGrid(g *grid.Real, conv pointer.Convention) ([]int8, error) {
	gd := g.GD
	dirs := make([]int8, gd.Ncells())
	for i, v := range g.A {
		if gd.IsNodata(v) {
			dirs[i] = pointer.None
			continue
		}
		k, err := conv.Decode(v)
		if err != nil {
			r, c := gd.RowCol(i)
			return nil, fmt.Errorf("DecodePointerGrid: cell (%d,%d): %w", r, c, err)
		}
		dirs[i] = k
	}
	return dirs, nil
}
