// Package eval implements position evaluation as a small set of
// composable components, each scoring a distinct aspect of the position
// (material, piece placement, space, mobility) and blended across the
// middlegame/endgame phase.
package eval

import "github.com/halvorsen/negafish/engine"

// Pair is a middlegame/endgame score pair, in centipawns from the
// perspective of the side it was scored for (Component.Value's us).
// Components score in this shape so the aggregator can
// blend by game phase without knowing what produced either half.
type Pair struct {
	MG int
	EG int
}

func (p Pair) Add(o Pair) Pair { return Pair{p.MG + o.MG, p.EG + o.EG} }
func (p Pair) Sub(o Pair) Pair { return Pair{p.MG - o.MG, p.EG - o.EG} }
func (p Pair) Neg() Pair       { return Pair{-p.MG, -p.EG} }

// Delta is an incremental evaluation update a Component can offer move
// ordering instead of a full Value recompute: Valid reports whether the
// component was able to estimate cheaply at all.
type Delta struct {
	Score              Pair
	Valid              bool
	AffectsRestriction bool
}

// Component scores one aspect of a position and optionally tracks
// incremental state across DoMove/UndoMove. Components that have no
// incremental state to track (most of them) can leave OnMakeMove and
// OnUnmakeMove as no-ops.
type Component interface {
	Init(pos *engine.Position)
	Value(pos *engine.Position, us engine.Color) Pair
	OnMakeMove(pos *engine.Position, m engine.Move)
	OnUnmakeMove(pos *engine.Position, m engine.Move)
	EstimateDelta(pos *engine.Position, m engine.Move) Delta
}
