// Package renormtsp is a renormalization heuristic for the planar Euclidean
// travelling salesman problem, with simulated annealing over the rotation of
// the renormalization grid.
//
// The point set is covered by a grid that is refined level by level. At each
// level the 2×2 cell blocks are crossed by precomputed routes through a small
// cell graph; a block whose cells still hold more than one point is refined
// into the next level, where its children take the crossing points of the
// parent route as their own entry and exit. Once every cell holds at most one
// point the hierarchy is walked in route order to produce a tour.
//
// Quick ASCII example (one 2×2 block, clockwise route):
//
//	  ┌───┬───┐
//	  │ 0 → 1 │
//	  ├─↑─┼─↓─┤
//	  │ 2 ← 3 │
//	  └───┴───┘
//
// The tour depends on the grid orientation, so the rotation is annealed: each
// iteration proposes a Brownian step, rebuilds the tour and accepts or rejects
// it by the Metropolis rule, with the temperature re-derived from the
// accumulated energy and entropy variations.
//
// Packages:
//
//	tsp/        points, cyclic tours, Euclidean tour length
//	grid/       rotated point indexer and cell-occupancy grids
//	cellgraph/  block geometry, crossing routes table, basic route
//	renorm/     hierarchy builder, tour extraction, Solve
//	anneal/     rotation annealing, text log, Prometheus metrics
//	mqttdiag/   MQTT diagnostic stream
//	tsplib/     TSPLIB problem and tour files
//	render/     SVG and PNG plots
//	config/     YAML run configuration
//
// The renormtsp command in cmd/renormtsp wires them together:
//
//	go install github.com/katalvlaran/renormtsp/cmd/renormtsp@latest
package renormtsp
