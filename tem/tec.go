package tem

// TEC topologic elevation model cell
type TEC struct {
	Z, S, A float64 // elevation, downslope gradient, flow azimuth (radians cw from north)
	Ds      int     // downslope cell id; -1 at outlets/pits
}
