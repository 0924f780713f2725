package eval

import "github.com/halvorsen/negafish/engine"

const (
	whiteHalf = engine.Bitboard(0xFFFFFFFF00000000)
	blackHalf = engine.Bitboard(0x00000000FFFFFFFF)
)

func opponentHalf(us engine.Color) engine.Bitboard {
	if us == engine.White {
		return whiteHalf
	}
	return blackHalf
}

func attacksOf(pos *engine.Position, c engine.Color) engine.Bitboard {
	occ := pos.Occupied()
	var a engine.Bitboard

	pawns := pos.ByPiece(c, engine.Pawn)
	for pawns != 0 {
		a |= engine.PawnAttacks(c, pawns.Pop())
	}
	knights := pos.ByPiece(c, engine.Knight)
	for knights != 0 {
		a |= engine.KnightAttacks(knights.Pop())
	}
	bishops := pos.ByPiece(c, engine.Bishop)
	for bishops != 0 {
		a |= engine.BishopAttacks(bishops.Pop(), occ)
	}
	rooks := pos.ByPiece(c, engine.Rook)
	for rooks != 0 {
		a |= engine.RookAttacks(rooks.Pop(), occ)
	}
	queens := pos.ByPiece(c, engine.Queen)
	for queens != 0 {
		a |= engine.QueenAttacks(queens.Pop(), occ)
	}
	if k := pos.ByPiece(c, engine.King); k != 0 {
		a |= engine.KingAttacks(k.LSB())
	}
	return a
}

// Space scores control of the opponent's half of the board: a square
// counts only if it is in the opponent's half, attacked by us, not
// occupied by us, and not itself attacked back by the opponent — a
// square we'd lose a piece on if we advanced into it isn't space we
// control. It matters less in the endgame, where the board opens up
// and space is cheap to contest.
type Space struct{}

func (Space) Init(*engine.Position) {}

func spaceOf(pos *engine.Position, us engine.Color) int {
	them := us.Other()
	controlled := attacksOf(pos, us) & opponentHalf(us) &^ pos.OccupiedBy(us) &^ attacksOf(pos, them)
	return controlled.Popcount()
}

func (Space) Value(pos *engine.Position, us engine.Color) Pair {
	them := us.Other()
	usSpace := spaceOf(pos, us)
	themSpace := spaceOf(pos, them)
	const weight = 2
	return Pair{MG: weight * (usSpace - themSpace), EG: 0}
}

func (Space) OnMakeMove(*engine.Position, engine.Move)   {}
func (Space) OnUnmakeMove(*engine.Position, engine.Move) {}

// EstimateDelta is not cheap to compute incrementally (it depends on
// the whole attack map, not just the moved piece), so Space opts out of
// move-ordering estimation rather than recomputing the full board scan
// per candidate move.
func (Space) EstimateDelta(*engine.Position, engine.Move) Delta {
	return Delta{}
}
