package tem

import (
	"math"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// FromGrid builds a TEM from a hydrologically corrected DEM and its D8
// direction array. Cell ids are row-major grid indices; gradients are
// computed against the metric cell spacing of each row.
func FromGrid(dem *grid.Real, dirs []int8) (*TEM, error) {
	gd := dem.GD
	t := TEM{TECs: make(map[int]*TEC, gd.Ncells())}
	for i, z := range dem.A {
		if gd.IsNodata(z) {
			continue
		}
		r, c := gd.RowCol(i)
		k := dirs[i]
		if k == pointer.None {
			t.TECs[i] = &TEC{Z: z, Ds: -1}
			continue
		}
		cwx, cwy, err := gd.CellSizesAt(r)
		if err != nil {
			return nil, err
		}
		nr, nc := r+pointer.Dy[k], c+pointer.Dx[k]
		ds := gd.CellIndex(nr, nc)
		dist := math.Hypot(cwx, cwy)
		if !pointer.Diagonal(k) {
			if k == 1 || k == 5 {
				dist = cwx
			} else {
				dist = cwy
			}
		}
		s := 0.
		if ds >= 0 && !gd.IsNodata(dem.A[ds]) {
			s = (z - dem.A[ds]) / dist
		} else {
			ds = -1
		}
		// azimuth clockwise from grid north
		a := math.Atan2(float64(pointer.Dx[k]), float64(-pointer.Dy[k]))
		if a < 0. {
			a += 2. * math.Pi
		}
		t.TECs[i] = &TEC{Z: z, S: s, A: a, Ds: ds}
	}
	t.BuildUpslopes()
	return &t, nil
}
