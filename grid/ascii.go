package grid

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadEsriAscii imports an ESRI ASCII grid (.asc): a 5-6 line header
// (ncols, nrows, xllcorner|xllcenter, yllcorner|yllcenter, cellsize and an
// optional nodata_value) followed by whitespace-delimited cell values,
// northernmost row first.
func ReadEsriAscii(fp string) (*Real, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadEsriAscii failed: %v", err)
	}
	defer f.Close()

	scn := bufio.NewScanner(f)
	scn.Buffer(make([]byte, 1024*1024), 1024*1024)
	scn.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scn.Scan() {
			return "", false
		}
		return scn.Text(), true
	}

	gd := &Definition{Nodata: -9999.}
	var xll, yll float64
	center := false
	for { // header: keyword-value pairs until the first numeric token
		tok, ok := next()
		if !ok {
			return nil, fmt.Errorf("ReadEsriAscii failed: %s: unexpected end of header", fp)
		}
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			// first cell value; header complete
			return readAsciiValues(fp, gd, xll, yll, center, v, next)
		}
		val, ok := next()
		if !ok {
			return nil, fmt.Errorf("ReadEsriAscii failed: %s: header keyword %s missing value", fp, tok)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("ReadEsriAscii failed: %s: %s: %v", fp, tok, err)
		}
		switch strings.ToLower(tok) {
		case "ncols":
			gd.Ncol = int(v)
		case "nrows":
			gd.Nrow = int(v)
		case "xllcorner":
			xll = v
		case "yllcorner":
			yll = v
		case "xllcenter":
			xll, center = v, true
		case "yllcenter":
			yll, center = v, true
		case "cellsize":
			gd.Cwx, gd.Cwy = v, v
		case "nodata_value":
			gd.Nodata = v
		default:
			return nil, fmt.Errorf("ReadEsriAscii failed: %s: unknown header keyword %s", fp, tok)
		}
	}
}

func readAsciiValues(fp string, gd *Definition, xll, yll float64, center bool, v0 float64, next func() (string, bool)) (*Real, error) {
	if gd.Nrow <= 0 || gd.Ncol <= 0 || gd.Cwx <= 0. {
		return nil, fmt.Errorf("ReadEsriAscii failed: %s: incomplete header", fp)
	}
	if center {
		xll -= gd.Cwx / 2.
		yll -= gd.Cwy / 2.
	}
	gd.Eorig = xll
	gd.Norig = yll + float64(gd.Nrow)*gd.Cwy

	g := &Real{GD: gd, A: make([]float64, gd.Ncells())}
	g.A[0] = v0
	for i := 1; i < len(g.A); i++ {
		tok, ok := next()
		if !ok {
			return nil, fmt.Errorf("ReadEsriAscii failed: %s: expecting %d values, read %d", fp, len(g.A), i)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("ReadEsriAscii failed: %s: value %d: %v", fp, i, err)
		}
		g.A[i] = v
	}
	return g, nil
}

// WriteEsriAscii exports the raster as an ESRI ASCII grid.
func (g *Real) WriteEsriAscii(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("Real.WriteEsriAscii failed: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	gd := g.GD
	if gd.Cwx != gd.Cwy {
		return fmt.Errorf("Real.WriteEsriAscii failed: non-square cells cannot be written to .asc")
	}
	fmt.Fprintf(w, "ncols %d\n", gd.Ncol)
	fmt.Fprintf(w, "nrows %d\n", gd.Nrow)
	fmt.Fprintf(w, "xllcorner %f\n", gd.Eorig)
	fmt.Fprintf(w, "yllcorner %f\n", gd.Norig-float64(gd.Nrow)*gd.Cwy)
	fmt.Fprintf(w, "cellsize %f\n", gd.Cwx)
	fmt.Fprintf(w, "NODATA_value %g\n", gd.Nodata)
	for r := 0; r < gd.Nrow; r++ {
		for c := 0; c < gd.Ncol; c++ {
			if c > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g", g.A[r*gd.Ncol+c])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
