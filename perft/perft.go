// Package perft counts leaf nodes of the legal move tree to a fixed
// depth — the standard correctness harness for move generators.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/halvorsen/negafish/engine"
)

// Count returns the number of leaf positions reachable from pos in
// exactly depth plies.
func Count(pos *engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var moves []engine.Move
	engine.GenerateLegal(pos, &moves)

	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		u := pos.DoMove(m)
		nodes += Count(pos, depth-1)
		pos.UndoMove(m, u)
	}
	return nodes
}

// DivideEntry is one root move's perft contribution.
type DivideEntry struct {
	Move  engine.Move
	Nodes uint64
}

// Divide computes perft per root move, fanning out one goroutine per
// root move. Each goroutine works on its own Position copy — Position
// is a plain value type, so cloning it is exactly as cheap and safe as
// the single-threaded engine's own per-node mutation, just duplicated
// once per root move — so there is no shared mutable state and no
// violation of the search package's single-threaded invariant (this is
// a test/tooling harness, not the search itself).
func Divide(ctx context.Context, pos *engine.Position, depth int) ([]DivideEntry, uint64, error) {
	var moves []engine.Move
	engine.GenerateLegal(pos, &moves)

	entries := make([]DivideEntry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cp := pos.Clone()
			u := cp.DoMove(m)
			nodes := Count(cp, depth-1)
			cp.UndoMove(m, u)
			entries[i] = DivideEntry{Move: m, Nodes: nodes}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return entries, total, nil
}
