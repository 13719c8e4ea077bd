package wbt

import (
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// seedEdges grows breadth-first from the virtual ring of cells surrounding
// the raster (row -1..Nrow, col -1..Ncol), crossing NoData regions so that
// irregular data footprints and exterior-connected holes are fully traced.
// Each valid cell first reached from the outside is handed to seed exactly
// once; every NoData cell met along the way is handed to mark. A simple
// border scan would miss valid-data boundaries hidden behind exterior NoData
// collars, which is why the growth is needed.
func seedEdges(dem *grid.Real, seed, mark func(r, c int)) {
	gd := dem.GD
	nrow, ncol := gd.Nrow, gd.Ncol

	// visit flags over the extended (virtual-ring) extent
	vis := make([]bool, (nrow+2)*(ncol+2))
	vi := func(r, c int) int { return (r+1)*(ncol+2) + c + 1 }

	q := make([][2]int, 0, 2*(nrow+ncol)+4)
	for c := -1; c <= ncol; c++ {
		q = append(q, [2]int{-1, c}, [2]int{nrow, c})
		vis[vi(-1, c)], vis[vi(nrow, c)] = true, true
	}
	for r := 0; r < nrow; r++ {
		q = append(q, [2]int{r, -1}, [2]int{r, ncol})
		vis[vi(r, -1)], vis[vi(r, ncol)] = true, true
	}

	for len(q) > 0 {
		rc := q[0]
		q = q[1:]
		for k := 0; k < 8; k++ {
			nr, nc := rc[0]+pointer.Dy[k], rc[1]+pointer.Dx[k]
			if nr < -1 || nr > nrow || nc < -1 || nc > ncol {
				continue
			}
			if vis[vi(nr, nc)] {
				continue
			}
			vis[vi(nr, nc)] = true
			if gd.IsNodata(dem.Value(nr, nc)) {
				if nr >= 0 && nr < nrow && nc >= 0 && nc < ncol {
					mark(nr, nc)
				}
				q = append(q, [2]int{nr, nc}) // continue the growth through the hole
			} else {
				seed(nr, nc)
			}
		}
	}
}
