package grid

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/maseology/mmio"
)

// ReadGDEF imports a text grid definition file: one value per line in the
// order OE, ON, ROT, NR, NC, CS and optionally the NoData sentinel
// (default -9999.).
func ReadGDEF(fp string) (*Definition, error) {
	a, _ := mmio.ReadTextLines(fp)
	if len(a) < 6 {
		return nil, fmt.Errorf("ReadGDEF failed: %s: expecting at least 6 lines", fp)
	}
	stErr := make([]string, 0)
	errfunc := func(v string, err error) {
		stErr = append(stErr, fmt.Sprintf("     failed to read '%v': %v", v, err))
	}

	oe, err := strconv.ParseFloat(a[0], 64)
	if err != nil {
		errfunc("OE", err)
	}
	on, err := strconv.ParseFloat(a[1], 64)
	if err != nil {
		errfunc("ON", err)
	}
	rot, err := strconv.ParseFloat(a[2], 64)
	if err != nil {
		errfunc("ROT", err)
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		errfunc("NR", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		errfunc("NC", err)
	}
	cs, err := strconv.ParseFloat(a[5], 64)
	if err != nil {
		errfunc("CS", err)
	}
	nd := -9999.
	if len(a) > 6 {
		nd, err = strconv.ParseFloat(a[6], 64)
		if err != nil {
			errfunc("ND", err)
		}
	}
	if len(stErr) > 0 {
		s := ""
		for _, v := range stErr {
			s += v + "\n"
		}
		return nil, fmt.Errorf("ReadGDEF failed: %s:\n%s", fp, s)
	}
	if rot != 0. {
		return nil, fmt.Errorf("ReadGDEF failed: %s: rotated grids not supported", fp)
	}
	return &Definition{
		Eorig: oe, Norig: on, Rot: rot,
		Cwx: cs, Cwy: cs, Nodata: nd,
		Nrow: int(nr), Ncol: int(nc),
	}, nil
}

// SaveGob persists the raster, definition included.
func (g *Real) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Real.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(g); err != nil {
		return fmt.Errorf(" Real.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGob re-reads a raster written by SaveGob.
func LoadGob(fp string) (*Real, error) {
	var g Real
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, err
	}
	f.Close()
	return &g, nil
}

// WriteBin dumps the raster values as raw little-endian float32, the
// exchange format paired with a .gdef.
func (g *Real) WriteBin(fp string) error {
	f32 := make([]float32, len(g.A))
	for i, v := range g.A {
		f32[i] = float32(v)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("Real.WriteBin failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("Real.WriteBin failed: %v", err)
	}
	return nil
}

// Read loads a raster, dispatching on file extension.
func Read(fp string) (*Real, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf("grid.Read: file not found: %s", fp)
	}
	switch filepath.Ext(fp) {
	case ".asc", ".txt":
		return ReadEsriAscii(fp)
	case ".gob":
		return LoadGob(fp)
	default:
		return nil, fmt.Errorf("grid.Read: unknown raster file type: %s", fp)
	}
}

// Write saves a raster, dispatching on file extension.
func (g *Real) Write(fp string) error {
	switch filepath.Ext(fp) {
	case ".asc", ".txt":
		return g.WriteEsriAscii(fp)
	case ".gob":
		return g.SaveGob(fp)
	case ".bin":
		return g.WriteBin(fp)
	default:
		return fmt.Errorf("grid.Write: unknown raster file type: %s", fp)
	}
}
