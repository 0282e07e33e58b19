package bench

/*
Arena benchmark subpackage, plays a series of games between two different
engine configurations. Each game's search stays single-threaded, the arena
only parallelizes independent games across workers.
*/

import (
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/stat"

	"github.com/asimihsan/mcts-connect-four/pkg/connectfour"
)

// Contender is a named engine configuration
type Contender struct {
	Name   string
	Config connectfour.Config
}

type VersusArenaStats struct {
	p1Wins           atomic.Uint32
	p2Wins           atomic.Uint32
	draws            atomic.Uint32
	firstToMoveWins  atomic.Uint32
	secondToMoveWins atomic.Uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.firstToMoveWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.secondToMoveWins.Load())
}

type VersusSummary struct {
	TotalGames       int     `json:"total_games"`
	P1Wins           int     `json:"player1_wins"`
	P2Wins           int     `json:"player2_wins"`
	Draws            int     `json:"draws"`
	FirstToMoveWins  int     `json:"first_to_move_wins"`
	SecondToMoveWins int     `json:"second_to_move_wins"`
	Workers          int     `json:"workers"`
	P1Name           string  `json:"player1_name"`
	P2Name           string  `json:"player2_name"`
	// Mean score for player 1 (win 1, draw 0.5, loss 0) and its spread
	P1Score     float64 `json:"player1_score"`
	ScoreStdDev float64 `json:"score_std_dev"`
}

// VersusArena plays NGames between two contenders, alternating who moves
// first, and aggregates the outcomes
type VersusArena struct {
	VersusArenaStats
	Player1  Contender
	Player2  Contender
	NGames   int
	NWorkers int

	// Games longer than MaxPlies count as draws, a safety net only
	MaxPlies int

	// Starting position of every game
	Start connectfour.State

	mu     sync.Mutex
	scores []float64
	wg     sync.WaitGroup
}

func NewVersusArena(start connectfour.State, p1, p2 Contender) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   20,
		NWorkers: 2,
		MaxPlies: 200,
		Start:    start,
	}
}

// Run plays all games and blocks until they finish
func (va *VersusArena) Run() {
	games := make(chan int)

	va.wg.Add(va.NWorkers)
	for w := 0; w < va.NWorkers; w++ {
		go va.worker(games)
	}

	for i := 0; i < va.NGames; i++ {
		games <- i
	}
	close(games)
	va.wg.Wait()
}

func (va *VersusArena) worker(games <-chan int) {
	defer va.wg.Done()

	for gameIdx := range games {
		p1GoesFirst := gameIdx%2 == 0
		outcome := va.playGame(gameIdx, p1GoesFirst)
		va.record(outcome, p1GoesFirst)
	}
}

type gameOutcome struct {
	firstMoverWon bool
	isDraw        bool
}

// playGame runs one full game from the starting position, the contender
// order decided by p1GoesFirst. Seeds derive from the game index, so a
// rerun of the arena replays the same games.
func (va *VersusArena) playGame(gameIdx int, p1GoesFirst bool) gameOutcome {
	state := va.Start
	state.Board = va.Start.Board.Clone()
	firstMover := state.Turn

	for plies := 0; plies < va.MaxPlies && !state.IsTerminal(); plies++ {
		contender := va.Player1
		if (state.Turn == firstMover) != p1GoesFirst {
			contender = va.Player2
		}

		cfg := contender.Config
		cfg.Seed = cfg.Seed ^ uint64(gameIdx)<<16 ^ uint64(plies)
		state.Perspective = state.Turn

		result, err := connectfour.BestMove(state, cfg)
		if err != nil {
			panic("versus arena: " + err.Error())
		}
		state = state.Successor(result.Move)
	}

	winner, won := connectfour.IsTerminalPosition(state.Board).Winner()
	if !won {
		return gameOutcome{isDraw: true}
	}
	return gameOutcome{firstMoverWon: winner == firstMover}
}

func (va *VersusArena) record(outcome gameOutcome, p1GoesFirst bool) {
	score := 0.5
	switch {
	case outcome.isDraw:
		va.draws.Add(1)
	case outcome.firstMoverWon == p1GoesFirst:
		va.p1Wins.Add(1)
		score = 1.0
	default:
		va.p2Wins.Add(1)
		score = 0.0
	}

	if !outcome.isDraw {
		if outcome.firstMoverWon {
			va.firstToMoveWins.Add(1)
		} else {
			va.secondToMoveWins.Add(1)
		}
	}

	va.mu.Lock()
	va.scores = append(va.scores, score)
	va.mu.Unlock()
}

// Results summarizes the finished run
func (va *VersusArena) Results() VersusSummary {
	va.mu.Lock()
	scores := append([]float64(nil), va.scores...)
	va.mu.Unlock()

	summary := VersusSummary{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          va.NWorkers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}
	if len(scores) > 0 {
		summary.P1Score = stat.Mean(scores, nil)
		summary.ScoreStdDev = stat.StdDev(scores, nil)
	}
	return summary
}
