package grid

import (
	"fmt"
	"math"

	"github.com/im7mortal/UTM"
)

// Definition holds the geometry of a uniform rectangular grid: a north-west
// origin, cell widths (possibly non-square) and a NoData sentinel. Row 0 is
// the northernmost row; cell (r,c) maps to array index r*Ncol+c.
type Definition struct {
	Eorig, Norig float64 // north-west corner
	Rot          float64 // grid rotation (unsupported, must be 0.)
	Cwx, Cwy     float64 // cell widths
	Nodata       float64
	Nrow, Ncol   int
	UTMzone      int  // 0: unknown/unprojected
	Geographic   bool // coordinates are lon/lat degrees
}

// NewDefinition builds a square-celled definition with the default -9999. NoData sentinel.
func NewDefinition(nrow, ncol int, cw float64) *Definition {
	return &Definition{Nrow: nrow, Ncol: ncol, Cwx: cw, Cwy: cw, Nodata: -9999.}
}

// Ncells total cell count
func (gd *Definition) Ncells() int { return gd.Nrow * gd.Ncol }

// IsNodata reports whether v is the NoData sentinel (NaN always qualifies).
func (gd *Definition) IsNodata(v float64) bool {
	return v == gd.Nodata || math.IsNaN(v)
}

// CellIndex converts a (row,col) pair to its array index; -1 when out of range.
func (gd *Definition) CellIndex(r, c int) int {
	if r < 0 || r >= gd.Nrow || c < 0 || c >= gd.Ncol {
		return -1
	}
	return r*gd.Ncol + c
}

// RowCol inverts CellIndex.
func (gd *Definition) RowCol(i int) (r, c int) { return i / gd.Ncol, i % gd.Ncol }

// CellCentroid returns the coordinate of the centre of cell (r,c).
func (gd *Definition) CellCentroid(r, c int) (x, y float64) {
	x = gd.Eorig + (float64(c)+.5)*gd.Cwx
	y = gd.Norig - (float64(r)+.5)*gd.Cwy
	return
}

// CellSizesAt returns the metric cell widths applicable at row r. For
// projected grids these are simply Cwx/Cwy; for geographic grids the degree
// widths are converted by projecting adjacent cell centroids to UTM, which
// gives the latitude correction needed by slope computations.
func (gd *Definition) CellSizesAt(r int) (cwx, cwy float64, err error) {
	if !gd.Geographic {
		return gd.Cwx, gd.Cwy, nil
	}
	lon, lat := gd.CellCentroid(r, 0)
	e0, n0, _, _, err := UTM.FromLatLon(lat, lon, lat >= 0.)
	if err != nil {
		return 0., 0., fmt.Errorf("Definition.CellSizesAt failed: %v", err)
	}
	e1, n1, _, _, err := UTM.FromLatLon(lat, lon+gd.Cwx, lat >= 0.)
	if err != nil {
		return 0., 0., fmt.Errorf("Definition.CellSizesAt failed: %v", err)
	}
	e2, n2, _, _, err := UTM.FromLatLon(lat-gd.Cwy, lon, lat >= 0.)
	if err != nil {
		return 0., 0., fmt.Errorf("Definition.CellSizesAt failed: %v", err)
	}
	return math.Hypot(e1-e0, n1-n0), math.Hypot(e2-e0, n2-n0), nil
}

// Compatible reports whether two definitions describe the same extent and
// resolution, the precondition for combining rasters cell-by-cell.
func (gd *Definition) Compatible(gd2 *Definition) bool {
	return gd.Nrow == gd2.Nrow && gd.Ncol == gd2.Ncol &&
		gd.Cwx == gd2.Cwx && gd.Cwy == gd2.Cwy
}
