package eval

import "github.com/halvorsen/negafish/engine"

// phaseWeight mirrors the common tapered-eval weighting: a knight or
// bishop is worth one phase point, a rook two, a queen four, and the
// total is capped at 24 (the material of one side's start-position
// minor/major pieces, doubled).
func phaseWeight(f engine.Figure) int {
	switch f {
	case engine.Knight, engine.Bishop:
		return 1
	case engine.Rook:
		return 2
	case engine.Queen:
		return 4
	default:
		return 0
	}
}

const maxPhase = 24

// phase256 returns a 0..256 value: 256 at the full starting material,
// trending to 0 as pieces come off the board.
func phase256(pos *engine.Position) int {
	ph := 0
	for _, c := range [2]engine.Color{engine.White, engine.Black} {
		for f := engine.Knight; f <= engine.Queen; f++ {
			ph += phaseWeight(f) * pos.ByPiece(c, f).Popcount()
		}
	}
	if ph > maxPhase {
		ph = maxPhase
	}
	return (ph*256 + maxPhase/2) / maxPhase
}

func blend(p256 int, s Pair) int {
	return (s.MG*p256 + s.EG*(256-p256) + 128) >> 8
}

// Evaluator aggregates every Component into a single centipawn score
// from the side-to-move's point of view, blended by game phase.
type Evaluator struct {
	components []Component
}

// NewEvaluator returns an Evaluator running the full component set:
// material, piece-square tables, space, and mobility, using the
// default material values.
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithWeights(MaterialWeights{})
}

// NewEvaluatorWithWeights is like NewEvaluator but lets a caller
// (typically wiring in an internal/config.Config) override material
// values.
func NewEvaluatorWithWeights(w MaterialWeights) *Evaluator {
	return &Evaluator{
		components: []Component{
			NewMaterial(w),
			PieceSquare{},
			Space{},
			Mobility{},
		},
	}
}

func (e *Evaluator) Init(pos *engine.Position) {
	for _, c := range e.components {
		c.Init(pos)
	}
}

func (e *Evaluator) OnMakeMove(pos *engine.Position, m engine.Move) {
	for _, c := range e.components {
		c.OnMakeMove(pos, m)
	}
}

func (e *Evaluator) OnUnmakeMove(pos *engine.Position, m engine.Move) {
	for _, c := range e.components {
		c.OnUnmakeMove(pos, m)
	}
}

// value sums every component's Pair for us.
func (e *Evaluator) value(pos *engine.Position, us engine.Color) Pair {
	var total Pair
	for _, c := range e.components {
		total = total.Add(c.Value(pos, us))
	}
	return total
}

// EvalCP returns the position's static evaluation in centipawns from
// the side to move's perspective.
func (e *Evaluator) EvalCP(pos *engine.Position) int {
	return blend(phase256(pos), e.value(pos, pos.SideToMove))
}

// EstimateDeltaCP combines every component's incremental estimate for a
// candidate move into a single centipawn delta, used by move ordering.
// ok is false if no component could offer an estimate.
func (e *Evaluator) EstimateDeltaCP(pos *engine.Position, m engine.Move) (cp int, affectsRestriction bool, ok bool) {
	var total Pair
	any := false
	for _, c := range e.components {
		d := c.EstimateDelta(pos, m)
		if d.Valid {
			any = true
			total = total.Add(d.Score)
			affectsRestriction = affectsRestriction || d.AffectsRestriction
		}
	}
	if !any {
		return 0, false, false
	}
	return blend(phase256(pos), total), affectsRestriction, true
}
