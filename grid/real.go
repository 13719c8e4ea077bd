package grid

// Real is a float64 raster laid over a Definition. A is row-major,
// length GD.Ncells().
type Real struct {
	GD *Definition
	A  []float64
}

// NewReal builds a raster with every cell set to the NoData sentinel.
func NewReal(gd *Definition) *Real {
	a := make([]float64, gd.Ncells())
	for i := range a {
		a[i] = gd.Nodata
	}
	return &Real{GD: gd, A: a}
}

// Value returns the cell value at (r,c), or the NoData sentinel for any
// coordinate outside the valid extent. Callers may address one cell beyond
// the grid (the virtual ring at row/col -1, Nrow, Ncol) without bounds
// checking of their own.
func (g *Real) Value(r, c int) float64 {
	if r < 0 || r >= g.GD.Nrow || c < 0 || c >= g.GD.Ncol {
		return g.GD.Nodata
	}
	return g.A[r*g.GD.Ncol+c]
}

// Set assigns v to cell (r,c); out-of-range coordinates are ignored.
func (g *Real) Set(r, c int, v float64) {
	if r < 0 || r >= g.GD.Nrow || c < 0 || c >= g.GD.Ncol {
		return
	}
	g.A[r*g.GD.Ncol+c] = v
}

// SetRowData overwrites row r.
func (g *Real) SetRowData(r int, d []float64) {
	if r < 0 || r >= g.GD.Nrow || len(d) != g.GD.Ncol {
		panic("Real.SetRowData: row dimension error")
	}
	copy(g.A[r*g.GD.Ncol:(r+1)*g.GD.Ncol], d)
}

// Copy returns a deep copy sharing the Definition.
func (g *Real) Copy() *Real {
	a := make([]float64, len(g.A))
	copy(a, g.A)
	return &Real{GD: g.GD, A: a}
}

// IsNodata reports whether cell (r,c) holds the NoData sentinel.
func (g *Real) IsNodata(r, c int) bool { return g.GD.IsNodata(g.Value(r, c)) }
