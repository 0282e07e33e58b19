package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in the UCT formula, higher values increase
// exploration while lower values increase exploitation. Default is sqrt(2).
var ExplorationParam float64 = math.Sqrt2

// Set the default exploration parameter used in the UCT formula
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

const (
	// Number of playouts ran from a leaf per search iteration
	DefaultPlayouts = 200

	// Maximum number of plies in a single playout
	DefaultMaxDepthPerPlayout = 50
)

type SeedGeneratorFnType func() uint64

var SeedGeneratorFn SeedGeneratorFnType = func() uint64 {
	return uint64(time.Now().UnixNano())
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
