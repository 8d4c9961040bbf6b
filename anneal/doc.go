// Package anneal searches the grid rotation that gives the shortest
// renormalization tour, using thermodynamic simulated annealing.
//
// Each iteration perturbs the rotation by a Brownian step whose amplitude
// shrinks as the temperature approaches its terminal value, rebuilds the
// tour at the proposed rotation, and accepts the proposal by the Metropolis
// criterion. The temperature is re-derived from the accumulated energy and
// entropy variations (T = k·ΔE/ΔS) and falls back to the initial temperature
// while no net improvement has been made.
//
// Stop conditions:
//
//   - T ≤ TempEnd and |T − T_prev| ≤ TempSig;
//   - MaxIterations iterations, when positive;
//   - cancellation of the context (the best result so far is returned with ctx.Err()).
//
// Observation:
//
//   - Observer receives one Record per iteration. TextLog writes the classic
//     space-separated diagnostic log; Metrics exports Prometheus series.
//   - WithLogger enables debug-level iteration logs and an info-level summary.
//
// Determinism: a fixed Seed (0 selects a fixed default) reproduces the run
// exactly. Proposals and acceptance draw from two independent streams.
package anneal
