package wbt

import (
	"math"
	"runtime"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

type dirRow struct {
	r     int
	d     []int8
	npits int
}

// FlowDirections computes the D8 steepest-descent direction of every valid
// cell: the neighbour of maximum positive slope, slopes normalized by the
// cardinal cell width or the diagonal hypotenuse, ties broken by the first
// neighbour encountered in clockwise-from-northeast order. Cells with no
// downslope neighbour get pointer.None; those of them with no NoData
// neighbour are interior pits, returned as a count for the caller to report
// (the routing tools expect hydrologically corrected input, so pits are a
// data-quality warning, not an error).
//
// The scan is split row-wise (round-robin) across nthreads workers, each
// owning its private row slices; rows are merged back through a
// single-consumer channel so no state is shared mutably during the parallel
// phase. nthreads <= 0 selects runtime.NumCPU().
func FlowDirections(dem *grid.Real, nthreads int, verbose bool) ([]int8, int, error) {
	gd := dem.GD
	if nthreads <= 0 {
		nthreads = runtime.NumCPU()
	}

	// per-row metric cell sizes (latitude-corrected for geographic grids)
	cwx, cwy, dd := make([]float64, gd.Nrow), make([]float64, gd.Nrow), make([]float64, gd.Nrow)
	for r := 0; r < gd.Nrow; r++ {
		x, y, err := gd.CellSizesAt(r)
		if err != nil {
			return nil, 0, err
		}
		cwx[r], cwy[r], dd[r] = x, y, math.Hypot(x, y)
	}

	var bar *uiprogress.Bar
	if verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(gd.Nrow).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	res := make(chan dirRow, nthreads)
	var wg sync.WaitGroup
	for t := 0; t < nthreads; t++ {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			for r := t; r < gd.Nrow; r += nthreads {
				res <- resolveRow(dem, r, cwx[r], cwy[r], dd[r])
			}
		}(t)
	}
	go func() {
		wg.Wait()
		close(res)
	}()

	dirs, npits := make([]int8, gd.Ncells()), 0
	for dr := range res {
		copy(dirs[dr.r*gd.Ncol:(dr.r+1)*gd.Ncol], dr.d)
		npits += dr.npits
		if bar != nil {
			bar.Incr()
		}
	}
	return dirs, npits, nil
}

func resolveRow(dem *grid.Real, r int, cwx, cwy, dd float64) dirRow {
	gd := dem.GD
	d := make([]int8, gd.Ncol)
	npits := 0
	for c := 0; c < gd.Ncol; c++ {
		d[c] = pointer.None
		z := dem.Value(r, c)
		if gd.IsNodata(z) {
			continue
		}
		smax, kmax, nnd := 0., pointer.None, 0
		for k := 0; k < 8; k++ {
			zn := dem.Value(r+pointer.Dy[k], c+pointer.Dx[k])
			if gd.IsNodata(zn) {
				nnd++
				continue
			}
			dist := dd
			if !pointer.Diagonal(int8(k)) {
				if k == 1 || k == 5 { // east/west
					dist = cwx
				} else { // north/south
					dist = cwy
				}
			}
			if s := (z - zn) / dist; s > smax {
				smax, kmax = s, int8(k)
			}
		}
		d[c] = kmax
		if kmax == pointer.None && nnd == 0 {
			npits++
		}
	}
	return dirRow{r: r, d: d, npits: npits}
}
