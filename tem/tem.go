// Package tem holds the topologic elevation model: the cell-graph view of a
// hydrologically corrected DEM, each cell carrying its (filled) elevation,
// downslope gradient, flow azimuth and a singular downslope id
// (tree-graph topology).
package tem

// TEM topologic elevation model
type TEM struct {
	TECs map[int]*TEC
	USlp map[int][]int
}

// NumCells number of cells that make up the TEM
func (t *TEM) NumCells() int {
	return len(t.TECs)
}

// BuildUpslopes (re-)derives the upslope adjacency from the downslope ids.
func (t *TEM) BuildUpslopes() {
	t.USlp = make(map[int][]int, len(t.TECs))
	for i, v := range t.TECs {
		if v.Ds >= 0 {
			t.USlp[v.Ds] = append(t.USlp[v.Ds], i)
		}
	}
}

// UnitContributingArea counts the cells draining through cid, cid included.
func (t *TEM) UnitContributingArea(cid int) float64 {
	return float64(len(t.UpslopeCellIDs(cid)) + 1)
}

// UpslopeCellIDs collects every cell upslope of cid (cid excluded).
func (t *TEM) UpslopeCellIDs(cid int) []int {
	var climb func(int) []int
	climb = func(c int) []int {
		us := make([]int, 0, len(t.USlp[c]))
		for _, u := range t.USlp[c] {
			us = append(us, u)
			us = append(us, climb(u)...)
		}
		return us
	}
	return climb(cid)
}

// Outlets lists the cells with no downslope id.
func (t *TEM) Outlets() []int {
	o := make([]int, 0)
	for i, v := range t.TECs {
		if v.Ds < 0 {
			o = append(o, i)
		}
	}
	return o
}
