package eval

import "github.com/halvorsen/negafish/engine"

// Mobility scores how restricted each side's pieces are, via the
// popcount of each side's combined attack map. This stands in for a
// true legal-move-count restriction estimator (which would require a
// full pseudo-legal generation and legality check per side on every
// node) at a fraction of the cost: it builds each side's attack map
// with the same attacksOf helper Space uses.
type Mobility struct{}

func (Mobility) Init(*engine.Position) {}

func (Mobility) Value(pos *engine.Position, us engine.Color) Pair {
	them := us.Other()
	usMobility := attacksOf(pos, us).Popcount()
	themMobility := attacksOf(pos, them).Popcount()
	const weight = 1
	s := weight * (usMobility - themMobility)
	return Pair{MG: s, EG: s}
}

func (Mobility) OnMakeMove(*engine.Position, engine.Move)   {}
func (Mobility) OnUnmakeMove(*engine.Position, engine.Move) {}

// EstimateDelta does not attempt to estimate the score delta itself —
// mobility is a whole-board property, not something a single moved
// piece's delta captures cheaply — but a capture or promotion removes
// or upgrades a piece from the board and so reliably shifts both
// sides' mobility, which move ordering rewards via AffectsRestriction.
func (Mobility) EstimateDelta(_ *engine.Position, m engine.Move) Delta {
	if m.IsCapture() || m.IsEnPassant() || m.IsPromotion() {
		return Delta{Valid: true, AffectsRestriction: true}
	}
	return Delta{}
}
