package cli

import (
	"fmt"

	wbt "github.com/jblindsay/whitebox-tools-sub015"
	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
	"github.com/maseology/mmio"
)

func loadDEM(fp string) (*grid.Real, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf("input raster not found: %s", fp)
	}
	return grid.Read(fp)
}

func convention(esri bool) pointer.Convention {
	if esri {
		return pointer.Esri
	}
	return pointer.Whitebox
}

// resolveDirs yields the D8 direction array either by decoding a supplied
// pointer raster (which must match the DEM extent) or by running the
// steepest-descent resolver over the DEM, reporting interior pits as a
// data-quality warning.
func resolveDirs(dem *grid.Real, pntrFP string, esri, verbose bool) ([]int8, error) {
	if pntrFP != "" {
		pg, err := loadDEM(pntrFP)
		if err != nil {
			return nil, err
		}
		if !dem.GD.Compatible(pg.GD) {
			return nil, fmt.Errorf("pointer raster extent does not match DEM: %s", pntrFP)
		}
		return wbt.DecodePointerGrid(pg, convention(esri))
	}
	dirs, npits, err := wbt.FlowDirections(dem, 0, verbose)
	if err != nil {
		return nil, err
	}
	if npits > 0 {
		fmt.Printf(" WARNING: %d interior pit cell(s) detected; the DEM does not appear to be hydrologically corrected (see the fill tool)\n", npits)
	}
	return dirs, nil
}

// writeValues writes a per-cell value array as an output raster.
func writeValues(gd *grid.Definition, vals []float64, fp string) error {
	g := grid.Real{GD: gd, A: vals}
	return g.Write(fp)
}
