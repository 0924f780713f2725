package eval

import "github.com/halvorsen/negafish/engine"

// Material values in centipawns. Pawn is pinned at 100; the rest follow
// the common engine convention of a slightly heavier bishop than knight.
const (
	valuePawn   = 100
	valueKnight = 320
	valueBishop = 330
	valueRook   = 500
	valueQueen  = 900
)

func defaultPieceValue(f engine.Figure) int {
	switch f {
	case engine.Pawn:
		return valuePawn
	case engine.Knight:
		return valueKnight
	case engine.Bishop:
		return valueBishop
	case engine.Rook:
		return valueRook
	case engine.Queen:
		return valueQueen
	default:
		return 0
	}
}

// MaterialWeights overrides the default piece values. A zero field
// means "use the default" rather than "worth nothing", so a caller
// supplying a partial override doesn't zero out the rest.
type MaterialWeights struct {
	Pawn, Knight, Bishop, Rook, Queen int
}

// Material scores the simple material balance: sum of piece values for
// us minus sum for them. It does not distinguish middlegame from
// endgame — material is material at any phase.
type Material struct {
	values [7]int // indexed by engine.Figure; NoFigure stays 0
}

// NewMaterial builds a Material component from the standard piece
// values, with any non-zero field of w overriding its default.
func NewMaterial(w MaterialWeights) Material {
	m := Material{}
	for f := engine.Pawn; f <= engine.Queen; f++ {
		m.values[f] = defaultPieceValue(f)
	}
	if w.Pawn != 0 {
		m.values[engine.Pawn] = w.Pawn
	}
	if w.Knight != 0 {
		m.values[engine.Knight] = w.Knight
	}
	if w.Bishop != 0 {
		m.values[engine.Bishop] = w.Bishop
	}
	if w.Rook != 0 {
		m.values[engine.Rook] = w.Rook
	}
	if w.Queen != 0 {
		m.values[engine.Queen] = w.Queen
	}
	return m
}

func (m Material) pieceValue(f engine.Figure) int { return m.values[f] }

func (Material) Init(*engine.Position) {}

func (m Material) Value(pos *engine.Position, us engine.Color) Pair {
	them := us.Other()
	var usMat, themMat int
	for f := engine.Pawn; f <= engine.Queen; f++ {
		v := m.pieceValue(f)
		usMat += v * pos.ByPiece(us, f).Popcount()
		themMat += v * pos.ByPiece(them, f).Popcount()
	}
	s := usMat - themMat
	return Pair{MG: s, EG: s}
}

func (Material) OnMakeMove(*engine.Position, engine.Move)   {}
func (Material) OnUnmakeMove(*engine.Position, engine.Move) {}

func (m Material) EstimateDelta(pos *engine.Position, mv engine.Move) Delta {
	var d Delta
	them := pos.SideToMove.Other()

	if mv.IsEnPassant() {
		v := m.pieceValue(engine.Pawn)
		d.Score = Pair{v, v}
		d.Valid = true
	} else if mv.IsCapture() {
		// EstimateDelta is called before DoMove, so the victim is still
		// on the board at mv.To().
		cf := captureFigureBeforeMove(pos, them, mv.To())
		v := m.pieceValue(cf)
		if v != 0 {
			d.Score.MG += v
			d.Score.EG += v
			d.Valid = true
		}
	}

	if mv.IsPromotion() {
		v := m.pieceValue(mv.Promotion()) - m.pieceValue(engine.Pawn)
		if v != 0 {
			d.Score.MG += v
			d.Score.EG += v
			d.Valid = true
		}
	}

	return d
}

func captureFigureBeforeMove(pos *engine.Position, victim engine.Color, sq engine.Square) engine.Figure {
	for f := engine.Pawn; f <= engine.Queen; f++ {
		if pos.ByPiece(victim, f).Has(sq) {
			return f
		}
	}
	return engine.NoFigure
}
