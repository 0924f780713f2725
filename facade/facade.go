// Package facade exposes the engine as the small external command
// surface: start a new game, set a position, search it, and report
// readiness. It has no persisted state — a new Engine starts blank, and
// Quit simply stops whatever search is in flight.
package facade

import (
	"context"
	"fmt"
	"time"

	"github.com/halvorsen/negafish/engine"
	"github.com/halvorsen/negafish/eval"
	"github.com/halvorsen/negafish/search"
)

const defaultTTSizeMB = 64

// Engine is the façade's single stateful object: the current position
// plus a transposition table that persists across searches within one
// game (cleared only by NewGame).
type Engine struct {
	pos      *engine.Position
	tt       *search.TranspositionTable
	ttSizeMB int
	weights  eval.MaterialWeights

	cancel context.CancelFunc
}

// New returns an Engine at the standard starting position, using the
// default transposition table size and material values.
func New() *Engine {
	return NewWithOptions(defaultTTSizeMB, eval.MaterialWeights{})
}

// NewWithTTSizeMB is like New but lets a caller (typically wiring in an
// internal/config.Config) size the transposition table explicitly.
func NewWithTTSizeMB(ttSizeMB int) *Engine {
	return NewWithOptions(ttSizeMB, eval.MaterialWeights{})
}

// NewWithOptions is like New but lets a caller size the transposition
// table and override material values, both typically sourced from an
// internal/config.Config.
func NewWithOptions(ttSizeMB int, weights eval.MaterialWeights) *Engine {
	if ttSizeMB <= 0 {
		ttSizeMB = defaultTTSizeMB
	}
	e := &Engine{ttSizeMB: ttSizeMB, weights: weights, tt: search.NewTranspositionTable(ttSizeMB)}
	e.NewGame()
	return e
}

// NewGame resets the board to the starting position and clears the
// transposition table, since old entries refer to a now-unrelated game.
func (e *Engine) NewGame() {
	pos, err := engine.ParseFEN(engine.StartFEN)
	if err != nil {
		panic("facade: starting FEN must always parse: " + err.Error())
	}
	e.pos = pos
	e.tt.Resize(e.ttSizeMB)
}

// SetPosition sets the current position from FEN and then applies moves
// (in long algebraic form, e.g. "e2e4") in order — mirroring the UCI
// "position fen ... moves ..." shape the front-end parses commands into.
// An unparseable or illegal move token is skipped rather than aborting
// the whole command: the rest of the move list still applies.
func (e *Engine) SetPosition(fen string, moves []string) error {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return fmt.Errorf("facade: set position: %w", err)
	}
	for _, ms := range moves {
		m, err := engine.ParseUCIMove(pos, ms)
		if err != nil {
			continue
		}
		pos.DoMove(m)
	}
	e.pos = pos
	return nil
}

// SearchResult is what Search reports back to the front-end.
type SearchResult struct {
	BestMove string
	ScoreCP  int
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
}

// Search runs the engine on the current position under the given
// limits and returns the best move found.
func (e *Engine) Search(ctx context.Context, lim search.Limits) SearchResult {
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	defer cancel()

	if lim.Weights == (eval.MaterialWeights{}) {
		lim.Weights = e.weights
	}
	res := search.Think(ctx, e.pos, e.tt, lim)
	return SearchResult{
		BestMove: res.Best.String(),
		ScoreCP:  res.ScoreCP,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		Elapsed:  res.Elapsed,
	}
}

// Ready reports whether the engine is idle and able to accept the next
// command — always true, since Search blocks its caller rather than
// running in the background.
func (e *Engine) Ready() bool { return true }

// Quit stops any in-flight search. It is safe to call even when nothing
// is searching.
func (e *Engine) Quit() {
	if e.cancel != nil {
		e.cancel()
	}
}

// FEN returns the current position's FEN, for front-end board printing.
func (e *Engine) FEN() string { return e.pos.FEN() }
