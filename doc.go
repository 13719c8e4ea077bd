// Package wbt implements the priority-flood depression-filling and
// flow-routing engine shared by the hydrological raster tools: D8
// flow-direction resolution, edge/NoData boundary seeding, min-priority-
// queue depression filling (with an order-of-inundation variant), and
// in-degree-gated topological propagation of accumulation values over the
// resulting flow network.
package wbt
