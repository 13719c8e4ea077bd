package wbt

import (
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// testGrid builds a unit-celled raster from row-major values; -9999. is the
// NoData sentinel.
func testGrid(vals [][]float64) *grid.Real {
	gd := grid.NewDefinition(len(vals), len(vals[0]), 1.)
	g := grid.NewReal(gd)
	for r, row := range vals {
		g.SetRowData(r, row)
	}
	return g
}

// walkDown follows the direction chain from (r,c), returning the visited
// cell indices including the start; the walk is capped at the cell count so
// a cyclic chain cannot hang the test.
func walkDown(g *grid.Real, dirs []int8, r, c int) []int {
	gd := g.GD
	path := make([]int, 0)
	for n := 0; n <= gd.Ncells(); n++ {
		i := gd.CellIndex(r, c)
		if i < 0 {
			return path
		}
		path = append(path, i)
		k := dirs[i]
		if k == pointer.None {
			return path
		}
		r, c = r+pointer.Dy[k], c+pointer.Dx[k]
	}
	return path
}
