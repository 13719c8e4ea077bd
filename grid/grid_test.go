package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOutOfRangeIsNodata(t *testing.T) {
	gd := NewDefinition(2, 3, 10.)
	g := NewReal(gd)
	g.SetRowData(0, []float64{1, 2, 3})
	g.SetRowData(1, []float64{4, 5, 6})

	assert.Equal(t, 5., g.Value(1, 1))
	// the virtual ring one cell beyond the extent reads as NoData
	assert.Equal(t, gd.Nodata, g.Value(-1, -1))
	assert.Equal(t, gd.Nodata, g.Value(-1, 0))
	assert.Equal(t, gd.Nodata, g.Value(2, 3))
	assert.Equal(t, gd.Nodata, g.Value(0, 3))
	assert.Equal(t, gd.Nodata, g.Value(2, 0))
}

func TestSetRowDataDimension(t *testing.T) {
	g := NewReal(NewDefinition(2, 3, 1.))
	require.Panics(t, func() { g.SetRowData(0, []float64{1, 2}) })
	require.Panics(t, func() { g.SetRowData(2, []float64{1, 2, 3}) })
}

func TestCopyIsDeep(t *testing.T) {
	g := NewReal(NewDefinition(1, 2, 1.))
	g.SetRowData(0, []float64{1, 2})
	cp := g.Copy()
	cp.Set(0, 0, 99.)
	assert.Equal(t, 1., g.Value(0, 0))
	assert.Equal(t, 99., cp.Value(0, 0))
}

func TestEsriAsciiRoundTrip(t *testing.T) {
	gd := NewDefinition(2, 3, 10.)
	gd.Eorig, gd.Norig = 1000., 2000.
	g := NewReal(gd)
	g.SetRowData(0, []float64{1, 2, 3})
	g.SetRowData(1, []float64{4, -9999., 6})

	fp := filepath.Join(t.TempDir(), "g.asc")
	require.NoError(t, g.WriteEsriAscii(fp))

	g2, err := ReadEsriAscii(fp)
	require.NoError(t, err)
	assert.Equal(t, g.A, g2.A)
	assert.Equal(t, gd.Nrow, g2.GD.Nrow)
	assert.Equal(t, gd.Ncol, g2.GD.Ncol)
	assert.InDelta(t, gd.Eorig, g2.GD.Eorig, 1e-6)
	assert.InDelta(t, gd.Norig, g2.GD.Norig, 1e-6)
	assert.Equal(t, gd.Nodata, g2.GD.Nodata)
}

func TestReadEsriAsciiTruncated(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "bad.asc")
	require.NoError(t, os.WriteFile(fp, []byte("ncols 3\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2 3\n"), 0644))
	_, err := ReadEsriAscii(fp)
	require.Error(t, err, "missing values must not be silently zero-filled")
}

func TestGobRoundTrip(t *testing.T) {
	gd := NewDefinition(2, 2, 5.)
	g := NewReal(gd)
	g.SetRowData(0, []float64{1, 2})
	g.SetRowData(1, []float64{3, 4})

	fp := filepath.Join(t.TempDir(), "g.gob")
	require.NoError(t, g.SaveGob(fp))
	g2, err := LoadGob(fp)
	require.NoError(t, err)
	assert.Equal(t, g.A, g2.A)
	assert.Equal(t, g.GD.Ncol, g2.GD.Ncol)
}

func TestReadGDEF(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "g.gdef")
	require.NoError(t, os.WriteFile(fp, []byte("1000\n2000\n0\n5\n7\n25\n-32768\n"), 0644))

	gd, err := ReadGDEF(fp)
	require.NoError(t, err)
	assert.Equal(t, 5, gd.Nrow)
	assert.Equal(t, 7, gd.Ncol)
	assert.Equal(t, 25., gd.Cwx)
	assert.Equal(t, 25., gd.Cwy)
	assert.Equal(t, 1000., gd.Eorig)
	assert.Equal(t, 2000., gd.Norig)
	assert.Equal(t, -32768., gd.Nodata)
}

func TestCellSizesAtGeographic(t *testing.T) {
	gd := NewDefinition(10, 10, 0.01) // ~1 km cells in longitude/latitude
	gd.Eorig, gd.Norig = -79.5, 44.5
	gd.Geographic = true

	cwx, cwy, err := gd.CellSizesAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 1110., cwy, 30., "a hundredth of a degree of latitude is ~1.11 km")
	assert.InDelta(t, 793., cwx, 30., "longitude shrinks with the cosine of latitude")
	assert.Less(t, cwx, cwy)
}

func TestCellSizesAtProjected(t *testing.T) {
	gd := NewDefinition(3, 3, 50.)
	cwx, cwy, err := gd.CellSizesAt(1)
	require.NoError(t, err)
	assert.Equal(t, 50., cwx)
	assert.Equal(t, 50., cwy)
}
