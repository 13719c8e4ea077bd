package tem

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

// .uhdem binary layout: a tagged header, the cell records, then the singular
// flowpath records (tree-graph topology only).

type uhdemReader struct {
	I             int32
	X, Y, Z, S, A float64
}

type fpReader struct {
	I, Nds, Ids int32
	F           float64
}

// SaveUHDEM writes the TEM to the unstructured-hdem binary exchange format.
func (t *TEM) SaveUHDEM(fp string) error {
	buf := new(bytes.Buffer)
	tag := []byte("unstructured")
	if err := binary.Write(buf, binary.LittleEndian, int32(len(tag))); err != nil {
		return fmt.Errorf("SaveUHDEM failed: %v", err)
	}
	buf.Write(tag)

	if err := binary.Write(buf, binary.LittleEndian, int32(len(t.TECs))); err != nil {
		return fmt.Errorf("SaveUHDEM failed: %v", err)
	}
	nfp := 0
	for i, v := range t.TECs {
		u := uhdemReader{I: int32(i), Z: v.Z, S: v.S, A: v.A}
		if err := binary.Write(buf, binary.LittleEndian, u); err != nil {
			return fmt.Errorf("SaveUHDEM failed: %v", err)
		}
		if v.Ds >= 0 {
			nfp++
		}
	}
	if err := binary.Write(buf, binary.LittleEndian, int32(nfp)); err != nil {
		return fmt.Errorf("SaveUHDEM failed: %v", err)
	}
	for i, v := range t.TECs {
		if v.Ds < 0 {
			continue
		}
		f := fpReader{I: int32(i), Nds: 1, Ids: int32(v.Ds), F: 1.}
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("SaveUHDEM failed: %v", err)
		}
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("SaveUHDEM failed: %v", err)
	}
	return nil
}

// LoadUHDEM re-reads a TEM written by SaveUHDEM.
func LoadUHDEM(fp string) (*TEM, error) {
	b := mmio.OpenBinary(fp)

	var ltag int32
	if err := binary.Read(b, binary.LittleEndian, &ltag); err != nil {
		return nil, fmt.Errorf("LoadUHDEM failed: %v", err)
	}
	tag := make([]byte, ltag)
	if _, err := b.Read(tag); err != nil || string(tag) != "unstructured" {
		return nil, fmt.Errorf("LoadUHDEM failed: unsupported UHDEM type")
	}

	var nc int32
	if err := binary.Read(b, binary.LittleEndian, &nc); err != nil {
		return nil, fmt.Errorf("LoadUHDEM failed: %v", err)
	}
	t := TEM{TECs: make(map[int]*TEC, nc)}
	for i := int32(0); i < nc; i++ {
		var u uhdemReader
		if err := binary.Read(b, binary.LittleEndian, &u); err != nil {
			return nil, fmt.Errorf("LoadUHDEM failed: %v", err)
		}
		t.TECs[int(u.I)] = &TEC{Z: u.Z, S: u.S, A: u.A, Ds: -1}
	}

	var nfp int32
	if err := binary.Read(b, binary.LittleEndian, &nfp); err != nil {
		return nil, fmt.Errorf("LoadUHDEM failed: %v", err)
	}
	for i := int32(0); i < nfp; i++ {
		var f fpReader
		if err := binary.Read(b, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("LoadUHDEM failed: %v", err)
		}
		if f.Nds != 1 {
			return nil, fmt.Errorf("LoadUHDEM failed: only singular downslope IDs supported (tree-graph topology)")
		}
		t.TECs[int(f.I)].Ds = int(f.Ids)
	}
	t.BuildUpslopes()
	return &t, nil
}
