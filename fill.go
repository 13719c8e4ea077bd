package wbt

import (
	"container/heap"
	"math"

	"github.com/gosuri/uiprogress"
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// DefaultEpsilon is the fill increment applied when a cell is raised to its
// pour point: small enough not to perceptibly distort true elevation
// differences, large enough to remain representable against DEM values of a
// few thousand metres in float64. Tunable per run for DEMs with unusual
// value ranges.
const DefaultEpsilon = 1e-5

// unvisited marks output cells not yet discovered by the flood. DEM values
// and NoData sentinels are finite, so -Inf cannot collide.
var unvisited = math.Inf(-1)

// FillDepressions returns a hydrologically corrected copy of dem in which
// every cell drains to the raster edge along a monotonically descending
// path, together with the D8 back-link directions established during the
// flood (pointer offset indices; pointer.None at outlets and NoData cells).
func FillDepressions(dem *grid.Real, eps float64, verbose bool) (*grid.Real, []int8) {
	out, dirs, _ := priorityFlood(dem, eps, nil, verbose)
	return out, dirs
}

// FloodOrder records the order of inundation instead of the filled surface:
// cell k of the traversal receives the strictly increasing value k (1-based).
// Same traversal as FillDepressions, different payload.
func FloodOrder(dem *grid.Real, verbose bool) (*grid.Real, []int8) {
	ord := grid.NewReal(dem.GD)
	_, dirs, _ := priorityFlood(dem, DefaultEpsilon, ord, verbose)
	return ord, dirs
}

// priorityFlood is the region-growing traversal shared by the hydrological
// tools. Cells are resolved in non-decreasing order of assigned elevation:
// seeds enter at their own elevation from the edge/NoData boundary, and an
// undiscovered neighbour N of a resolved cell C is committed to
// max(dem[N], out[C]+eps) with a back-link toward C. First resolution wins,
// so each cell is pushed at most once and the whole pass is O(N log N).
// NoData neighbours resolve terminally to the sentinel without enqueuing.
// Returns the filled surface, the back-link directions and the push count
// (the latter for instrumentation).
func priorityFlood(dem *grid.Real, eps float64, order *grid.Real, verbose bool) (*grid.Real, []int8, int) {
	gd := dem.GD
	n := gd.Ncells()

	out := &grid.Real{GD: gd, A: make([]float64, n)}
	for i := range out.A {
		out.A[i] = unvisited
	}
	dirs := make([]int8, n)
	for i := range dirs {
		dirs[i] = pointer.None
	}

	var bar *uiprogress.Bar
	if verbose {
		uiprogress.Start()
		bar = uiprogress.AddBar(n).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	h, seq, npush := make(cellHeap, 0, 2*(gd.Nrow+gd.Ncol)), 0, 0
	push := func(r, c int, z float64) {
		heap.Push(&h, gridCell{r: r, c: c, z: z, seq: seq})
		seq++
		npush++
	}

	seedEdges(dem,
		func(r, c int) { // true boundary cell, seeded at its own elevation
			z := dem.Value(r, c)
			out.A[r*gd.Ncol+c] = z
			push(r, c, z)
		},
		func(r, c int) { // exterior-connected NoData, terminal
			out.A[r*gd.Ncol+c] = gd.Nodata
		})

	nord := 0
	for h.Len() > 0 {
		gc := heap.Pop(&h).(gridCell)
		nord++
		if order != nil {
			order.A[gc.r*gd.Ncol+gc.c] = float64(nord)
		}
		if bar != nil {
			bar.Incr()
		}
		for k := 0; k < 8; k++ {
			nr, nc := gc.r+pointer.Dy[k], gc.c+pointer.Dx[k]
			i := gd.CellIndex(nr, nc)
			if i < 0 || out.A[i] != unvisited {
				continue // off grid, or first resolution already won
			}
			zn := dem.A[i]
			if gd.IsNodata(zn) {
				out.A[i] = gd.Nodata // terminal, no growth through it
				continue
			}
			z := zn
			if z < gc.z+eps {
				z = gc.z + eps // raised just above its pour point
			}
			out.A[i] = z
			dirs[i] = pointer.Back(int8(k))
			push(nr, nc, z)
		}
	}

	// valid cells unreachable from the edge growth (islands enclosed by
	// interior NoData) degrade to NoData rather than keeping the sentinel
	for i, v := range out.A {
		if v == unvisited {
			out.A[i] = gd.Nodata
		}
	}
	return out, dirs, npush
}
