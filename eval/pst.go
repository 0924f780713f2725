package eval

import "github.com/halvorsen/negafish/engine"

// The tables below hold the Tomasz Michniewski "simplified evaluation"
// piece-square bonuses from White's point of view. The knight and king
// tables are written a1..h8; the pawn, bishop, rook and queen tables are
// written rank 8 first, as the tables are usually printed, so mgTable
// flips the square before indexing them. Black's score mirrors the
// square vertically (sq ^ 56).
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// kingMiddlegameTable prefers the castled corners and penalizes the open
// center, where a king is most exposed before pieces are traded off.
var kingMiddlegameTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

// kingEndgameTable reverses that preference: with queens and rooks
// traded off, the king is a fighting piece that wants the center.
var kingEndgameTable = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

func mirrorSquare(sq engine.Square) engine.Square { return engine.Square(int(sq) ^ 56) }

func mgTable(f engine.Figure, sq engine.Square) int {
	switch f {
	case engine.Pawn:
		return pawnTable[mirrorSquare(sq)]
	case engine.Knight:
		return knightTable[sq]
	case engine.Bishop:
		return bishopTable[mirrorSquare(sq)]
	case engine.Rook:
		return rookTable[mirrorSquare(sq)]
	case engine.Queen:
		return queenTable[mirrorSquare(sq)]
	case engine.King:
		return kingMiddlegameTable[sq]
	default:
		return 0
	}
}

func egTable(f engine.Figure, sq engine.Square) int {
	if f == engine.King {
		return kingEndgameTable[sq]
	}
	return mgTable(f, sq)
}

func pstScore(f engine.Figure, sq engine.Square, c engine.Color) Pair {
	s := sq
	if c == engine.Black {
		s = mirrorSquare(sq)
	}
	return Pair{MG: mgTable(f, s), EG: egTable(f, s)}
}

// PieceSquare scores each side's pieces by their square, Michniewski
// style, and returns the us-minus-them balance.
type PieceSquare struct{}

func (PieceSquare) Init(*engine.Position) {}

func (PieceSquare) Value(pos *engine.Position, us engine.Color) Pair {
	var total Pair
	for _, c := range [2]engine.Color{engine.White, engine.Black} {
		sign := 1
		if c != us {
			sign = -1
		}
		for f := engine.Pawn; f <= engine.King; f++ {
			bb := pos.ByPiece(c, f)
			for bb != 0 {
				sq := bb.Pop()
				s := pstScore(f, sq, c)
				total.MG += sign * s.MG
				total.EG += sign * s.EG
			}
		}
	}
	return total
}

func (PieceSquare) OnMakeMove(*engine.Position, engine.Move)   {}
func (PieceSquare) OnUnmakeMove(*engine.Position, engine.Move) {}

func (PieceSquare) EstimateDelta(pos *engine.Position, m engine.Move) Delta {
	us := pos.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()

	mover := pos.PieceOn(from).Figure
	if mover == engine.NoFigure {
		return Delta{}
	}

	var d Delta
	d.Valid = true

	before := pstScore(mover, from, us)
	destFigure := mover
	if m.IsPromotion() {
		destFigure = m.Promotion()
	}
	after := pstScore(destFigure, to, us)
	d.Score.MG += after.MG - before.MG
	d.Score.EG += after.EG - before.EG

	if m.IsCapture() {
		capSq := to
		if m.IsEnPassant() {
			capSq = to - 8
			if us == engine.Black {
				capSq = to + 8
			}
		}
		victim := pos.PieceOn(capSq).Figure
		if victim != engine.NoFigure {
			lost := pstScore(victim, capSq, them)
			d.Score.MG += lost.MG
			d.Score.EG += lost.EG
		}
	}

	return d
}
