package connectfour

import (
	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"

	"github.com/asimihsan/mcts-connect-four/pkg/mcts"
)

// Config bundles everything a single best-move decision needs
type Config struct {
	// Search budget, iterations and/or wall-clock
	Limits *mcts.Limits

	// UCT exploration constant, default sqrt(2)
	ExplorationParam float64

	// Playouts per simulation and their depth bound
	Playouts int
	MaxDepth int

	// Seed for the engine's PCG generator, same seed same decision
	Seed uint64

	// Attach a serializable snapshot of the search tree to the result
	DebugTrackTree bool
}

func DefaultConfig() Config {
	return Config{
		Limits:           mcts.DefaultLimits().SetCycles(300),
		ExplorationParam: mcts.ExplorationParam,
		Playouts:         mcts.DefaultPlayouts,
		MaxDepth:         mcts.DefaultMaxDepthPerPlayout,
		Seed:             mcts.SeedGeneratorFn(),
	}
}

// Validate reports every violation at once, not just the first
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Limits == nil {
		result = multierror.Append(result, pkgerrors.New("limits must be set"))
	}
	if c.ExplorationParam < 0 {
		result = multierror.Append(result, pkgerrors.Errorf("exploration param must be >= 0, got %v", c.ExplorationParam))
	}
	if c.Playouts < 1 {
		result = multierror.Append(result, pkgerrors.Errorf("playouts must be >= 1, got %d", c.Playouts))
	}
	if c.MaxDepth < 1 {
		result = multierror.Append(result, pkgerrors.Errorf("max depth must be >= 1, got %d", c.MaxDepth))
	}

	return result.ErrorOrNil()
}

// BestMoveResult is the decision plus the optional debug snapshot
type BestMoveResult struct {
	Move Move
	Tree *mcts.NodeSnapshot[Move]
}

// NewEngine builds a configured engine rooted at 'state'. Most callers
// want BestMove, this is for drivers that attach listeners or interrupt
// the search themselves.
func NewEngine(state State, cfg Config) (*mcts.MCTS[Move, State], error) {
	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, "connect four engine config")
	}

	engine := mcts.NewMCTS[Move](state)
	engine.SetLimits(cfg.Limits)
	engine.SetExplorationParam(cfg.ExplorationParam)
	engine.SetPlayouts(cfg.Playouts)
	engine.SetMaxDepthPerPlayout(cfg.MaxDepth)
	engine.SetSeed(cfg.Seed)
	return engine, nil
}

// BestMove runs one full search from 'state' and returns the most visited
// root action. Fails on an invalid config or when the position is already
// terminal (there is nothing to choose).
func BestMove(state State, cfg Config) (BestMoveResult, error) {
	engine, err := NewEngine(state, cfg)
	if err != nil {
		return BestMoveResult{}, err
	}

	engine.Search()

	move, ok := engine.BestMove()
	if !ok {
		return BestMoveResult{}, pkgerrors.New("no legal move: position is terminal")
	}

	result := BestMoveResult{Move: move}
	if cfg.DebugTrackTree {
		snapshot := engine.Tree().Snapshot()
		result.Tree = &snapshot
	}
	return result, nil
}
