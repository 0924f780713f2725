package search

import (
	"sort"

	"github.com/halvorsen/negafish/engine"
	"github.com/halvorsen/negafish/eval"
)

// scoredMove pairs a move with its ordering score, high scores first.
type scoredMove struct {
	move  engine.Move
	score int
}

func sortMoves(sm []scoredMove) {
	sort.Slice(sm, func(i, j int) bool { return sm[i].score > sm[j].score })
}

// isCaptureLike reports whether a move is a capture, en passant, or
// promotion — the set of moves quiescence search continues to explore.
func isCaptureLike(m engine.Move) bool {
	return m.IsCapture() || m.IsEnPassant() || m.IsPromotion()
}

// scoreMove is pure ordering sugar: it biases big buckets (promotion,
// en passant, capture) ahead of everything else, then seasons with the
// evaluator's cheap delta estimate, then breaks ties deterministically.
// It intentionally has no static-exchange evaluator behind it.
func scoreMove(pos *engine.Position, ev *eval.Evaluator, m engine.Move) int {
	s := 0

	if m.IsPromotion() {
		s += 500000
	}
	if m.IsEnPassant() {
		s += 400000
	}
	if m.IsCapture() {
		s += 300000
	}

	if cp, affectsRestriction, ok := ev.EstimateDeltaCP(pos, m); ok {
		s += 1000 * cp
		if affectsRestriction {
			s += 2500
		}
	}

	s += int(m.To()) - int(m.From())
	return s
}
