package wbt

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/jblindsay/whitebox-tools-sub015/grid"
	"github.com/jblindsay/whitebox-tools-sub015/pointer"
)

// Structure holds the flow network in topologically safe, 0-based arrays:
// Cids lists valid cell indices ordered so that every cell precedes its
// downslope cell, Ds gives the downslope position within Cids (-1 at
// outlets/pits), and Upcnt the count of upslope contributing cells.
type Structure struct {
	GD    *grid.Definition
	Cids  []int
	Ds    []int
	Upcnt []int
	Nc    int
}

// BuildStructure orders the valid cells of a flow-direction grid by
// in-degree-gated traversal. Unlike Accumulate, terminal cells participate
// here: they close the ordering so that downstream walks (flowpath lengths,
// basin labelling) can run over the reversed array. Returns ErrFlowCycle for
// malformed pointer input.
func BuildStructure(dem *grid.Real, dirs []int8) (*Structure, error) {
	gd := dem.GD
	n := gd.Ncells()
	if len(dirs) != n {
		panic("BuildStructure: array dimension error")
	}

	target := func(i int) int {
		k := dirs[i]
		if k == pointer.None {
			return -1
		}
		r, c := gd.RowCol(i)
		return gd.CellIndex(r+pointer.Dy[k], c+pointer.Dx[k])
	}

	nin, nvalid := make([]int, n), 0
	for i := range dirs {
		if gd.IsNodata(dem.A[i]) {
			continue
		}
		nvalid++
		if t := target(i); t >= 0 && !gd.IsNodata(dem.A[t]) {
			nin[t]++
		}
	}

	cids, stack := make([]int, 0, nvalid), make([]int, 0, nvalid/4+1)
	for i := range dirs {
		if !gd.IsNodata(dem.A[i]) && nin[i] == 0 {
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cids = append(cids, i)
		if t := target(i); t >= 0 && !gd.IsNodata(dem.A[t]) {
			if nin[t]--; nin[t] == 0 {
				stack = append(stack, t)
			}
		}
	}
	if len(cids) < nvalid {
		return nil, fmt.Errorf("BuildStructure: %w", ErrFlowCycle)
	}

	mx := make(map[int]int, nvalid) // cell index to position in Cids
	for p, i := range cids {
		mx[i] = p
	}
	ds, upcnt := make([]int, nvalid), make([]int, nvalid)
	for p, i := range cids {
		t := target(i)
		if t < 0 || gd.IsNodata(dem.A[t]) {
			ds[p] = -1
			continue
		}
		pt, ok := mx[t]
		if !ok {
			panic("BuildStructure: downslope index error")
		}
		ds[p] = pt
	}
	for p := range cids { // upstream-first, so counts cascade
		if ds[p] >= 0 {
			upcnt[ds[p]] += upcnt[p] + 1
		}
	}

	return &Structure{GD: gd, Cids: cids, Ds: ds, Upcnt: upcnt, Nc: nvalid}, nil
}

func (s *Structure) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" structure.Save %v", err)
	}
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" structure.Save %v", err)
	}
	f.Close()
	return nil
}

func LoadGobStructure(fp string) (*Structure, error) {
	var strc Structure
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&strc); err != nil {
		return nil, err
	}
	f.Close()
	return &strc, nil
}
