// Package bench runs the engine over a handful of fixed games and
// reports total nodes and nodes/sec, the way the teacher's own
// internal/bench tool tracks non-functional regressions across
// commits: the node count for a given depth should stay put unless
// search behavior actually changed.
package bench

import (
	"context"
	"strings"
	"time"

	"github.com/halvorsen/negafish/engine"
	"github.com/halvorsen/negafish/internal/logging"
	"github.com/halvorsen/negafish/search"
)

// gameInfo is one fixed game to replay move by move, searching at each
// position reached.
type gameInfo struct {
	description string
	moves       []string
}

// games are a few well-known master games, replayed move by move so the
// benchmark walks a realistic spread of middlegame and endgame
// positions rather than just the opening.
var games = []gameInfo{
	{
		description: "Kasparov - Topalov, Wijk aan Zee 1999 (excerpt)",
		moves: strings.Fields(
			"e2e4 d7d6 d2d4 g8f6 b1c3 g7g6 c1e3 f8g7 d1d2 c7c6 " +
				"f2f3 b7b5 g1e2 b8d7 e3h6 g7h6 d2h6 c8b7 a2a3 e7e5"),
	},
	{
		description: "Kramnik - Shirov, Linares 1994 (excerpt)",
		moves: strings.Fields(
			"g1f3 d7d5 d2d4 c8f5 c2c4 e7e6 b1c3 c7c6 d1b3 d8b6 " +
				"c4c5 b6c7 c1f4 c7c8 e2e3 g8f6 b3a4 b8d7 b2b4 a7a6"),
	},
	{
		description: "Tal - Spassky, Leningrad 1954 (excerpt)",
		moves: strings.Fields(
			"c2c4 g8f6 b1c3 e7e6 d2d4 c7c5 d4d5 e6d5 c4d5 g7g6 " +
				"g1f3 f8g7 c1f4 d7d6 h2h3 e8g8 e2e3 f6e8 f1e2 b8d7"),
	},
}

// Result is the outcome of running the benchmark at a given depth.
type Result struct {
	Nodes   uint64
	Elapsed time.Duration
}

// NodesPerSecond reports nodes searched per second of wall time.
func (r Result) NodesPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(r.Nodes) / secs
}

// Run replays every game in the suite move by move, searching each
// position reached to the given depth, and returns the total node
// count and elapsed time across all of them.
func Run(ctx context.Context, depth int, log *logging.Logger) (Result, error) {
	start := time.Now()
	var totalNodes uint64

	for _, g := range games {
		pos, err := engine.ParseFEN(engine.StartFEN)
		if err != nil {
			return Result{}, err
		}
		tt := search.NewTranspositionTable(2)

		var gameNodes uint64
		for _, ms := range g.moves {
			res := search.Think(ctx, pos, tt, search.Limits{MaxDepth: depth})
			gameNodes += res.Nodes

			m, err := engine.ParseUCIMove(pos, ms)
			if err != nil {
				return Result{}, err
			}
			pos.DoMove(m)
		}

		if log != nil {
			log.Infof("%d %s", gameNodes, g.description)
		}
		totalNodes += gameNodes
	}

	return Result{Nodes: totalNodes, Elapsed: time.Since(start)}, nil
}
