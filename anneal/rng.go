package anneal

import "math/rand"

// defaultRNGSeed is used when Params.Seed is 0.
const defaultRNGSeed int64 = 1

// Stream identifiers of the two random sources of a run.
const (
	streamProposal uint64 = iota + 1
	streamAcceptance
)

// rngFromSeed returns a deterministic *rand.Rand; seed 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streams returns the proposal and acceptance sources for seed. Both are
// derived from the seed itself, so neither depends on how much the other is
// consumed.
func streams(seed int64) (proposal, acceptance *rand.Rand) {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rngFromSeed(deriveSeed(seed, streamProposal)),
		rngFromSeed(deriveSeed(seed, streamAcceptance))
}
