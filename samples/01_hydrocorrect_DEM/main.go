package main

/*
   this example builds a synthetic DEM containing a closed depression,
   hydrologically corrects it by priority flood, routes D8 flow and reports
   the contributing-area raster and TEM at the basin outlet
*/

import (
	"fmt"
	"log"
	"math"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/tem"
	"github.com/maseology/mmio"
)

const (
	nrow, ncol = 120, 150
	cellwidth  = 50.
)

func main() {
	tt := mmio.NewTimer()
	defer tt.Print("sample complete!")

	// a tilted plane with a superimposed closed depression
	gd := grid.NewDefinition(nrow, ncol, cellwidth)
	dem := grid.NewReal(gd)
	for r := 0; r < nrow; r++ {
		for c := 0; c < ncol; c++ {
			z := 100. + .05*float64(r) + .02*float64(c)
			dr, dc := float64(r-40), float64(c-60)
			if d := math.Sqrt(dr*dr + dc*dc); d < 15. {
				z -= (15. - d) * .5
			}
			dem.Set(r, c, z)
		}
	}

	filled, dirs := wbt.FillDepressions(dem, wbt.DefaultEpsilon, true)
	tt.Lap("depression filling complete")

	acc, err := wbt.Accumulate(dirs, filled, wbt.UnitValues(filled), wbt.AccumSum)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tt.Lap("flow accumulation complete")

	tm, err := tem.FromGrid(filled, dirs)
	if err != nil {
		log.Fatalf("%v", err)
	}
	amax, imax := 0., -1
	for i, a := range acc {
		if !gd.IsNodata(a) && a > amax {
			amax, imax = a, i
		}
	}
	fmt.Printf(" basin outlet cell %d: %.0f contributing cells (climb check: %.0f)\n",
		imax, amax, tm.UnitContributingArea(imax))

	if err := filled.WriteBin("filled.bin"); err != nil {
		log.Fatalf("%v", err)
	}
	if err := (&grid.Real{GD: gd, A: acc}).WriteBin("accum.bin"); err != nil {
		log.Fatalf("%v", err)
	}
}
