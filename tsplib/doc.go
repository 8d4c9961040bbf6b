// Package tsplib reads planar instances and writes tours in the TSPLIB format.
//
// Supported input is TYPE: TSP with EDGE_WEIGHT_TYPE: EUC_2D (or absent) and a
// NODE_COORD_SECTION. Node ids in a file are 1-based; Instance.Points is
// indexed from 0 in file order. Output tours use TOUR_SECTION terminated by -1.
package tsplib
