package engine

// square shorthands used by castling/movegen logic.
const (
	sqA1 = Square(0)
	sqB1 = Square(1)
	sqC1 = Square(2)
	sqD1 = Square(3)
	sqE1 = Square(4)
	sqF1 = Square(5)
	sqG1 = Square(6)
	sqH1 = Square(7)
	sqA8 = Square(56)
	sqB8 = Square(57)
	sqC8 = Square(58)
	sqD8 = Square(59)
	sqE8 = Square(60)
	sqF8 = Square(61)
	sqG8 = Square(62)
	sqH8 = Square(63)
)

func genPawns(pos *Position, out *[]Move, us Color) {
	them := us.Other()
	pawns := pos.pieces[us][Pawn]
	occ := pos.occupancyBoth
	theirs := pos.occupancyByColor[them]

	forward := 8
	startRank := 1
	promoRank := 6
	if us == Black {
		forward = -8
		startRank = 6
		promoRank = 1
	}

	for pawns != 0 {
		from := pawns.Pop()
		r := from.Rank()
		one := Square(int(from) + forward)

		if one >= 0 && one < 64 && !occ.Has(one) {
			if r == promoRank {
				*out = append(*out,
					MakeMove(from, one, PromoFlag, Knight),
					MakeMove(from, one, PromoFlag, Bishop),
					MakeMove(from, one, PromoFlag, Rook),
					MakeMove(from, one, PromoFlag, Queen))
			} else {
				*out = append(*out, MakeMove(from, one, Quiet, NoFigure))
				if r == startRank {
					two := Square(int(from) + 2*forward)
					if !occ.Has(two) {
						*out = append(*out, MakeMove(from, two, DoublePush, NoFigure))
					}
				}
			}
		}

		caps := PawnAttacks(us, from) & theirs
		for caps != 0 {
			to := caps.Pop()
			if r == promoRank {
				*out = append(*out,
					MakeMove(from, to, Capture|PromoFlag, Knight),
					MakeMove(from, to, Capture|PromoFlag, Bishop),
					MakeMove(from, to, Capture|PromoFlag, Rook),
					MakeMove(from, to, Capture|PromoFlag, Queen))
			} else {
				*out = append(*out, MakeMove(from, to, Capture, NoFigure))
			}
		}

		if pos.EnPassant != NoSquare && PawnAttacks(us, from).Has(pos.EnPassant) {
			*out = append(*out, MakeMove(from, pos.EnPassant, Capture|EnPassantFlag, NoFigure))
		}
	}
}

func genLeapers(pos *Position, out *[]Move, us Color, f Figure, attacks func(Square) Bitboard) {
	them := us.Other()
	ours := pos.occupancyByColor[us]
	theirs := pos.occupancyByColor[them]

	bb := pos.pieces[us][f]
	for bb != 0 {
		from := bb.Pop()
		atk := attacks(from) &^ ours
		quiets := atk &^ theirs
		caps := atk & theirs
		for quiets != 0 {
			*out = append(*out, MakeMove(from, quiets.Pop(), Quiet, NoFigure))
		}
		for caps != 0 {
			*out = append(*out, MakeMove(from, caps.Pop(), Capture, NoFigure))
		}
	}
}

func genSliders(pos *Position, out *[]Move, us Color, f Figure) {
	them := us.Other()
	ours := pos.occupancyByColor[us]
	theirs := pos.occupancyByColor[them]
	occ := pos.occupancyBoth

	bb := pos.pieces[us][f]
	for bb != 0 {
		from := bb.Pop()
		var atk Bitboard
		switch f {
		case Bishop:
			atk = BishopAttacks(from, occ)
		case Rook:
			atk = RookAttacks(from, occ)
		case Queen:
			atk = QueenAttacks(from, occ)
		}
		atk &^= ours
		quiets := atk &^ theirs
		caps := atk & theirs
		for quiets != 0 {
			*out = append(*out, MakeMove(from, quiets.Pop(), Quiet, NoFigure))
		}
		for caps != 0 {
			*out = append(*out, MakeMove(from, caps.Pop(), Capture, NoFigure))
		}
	}
}

// genCastles checks through-check requirements directly, since the
// legal-move filter alone (which only checks the resulting position)
// isn't enough to reject castling through an attacked square.
func genCastles(pos *Position, out *[]Move, us Color) {
	if us == White {
		if pos.CastlingRights&WhiteKingSide != 0 &&
			pos.IsEmpty(sqF1) && pos.IsEmpty(sqG1) &&
			!pos.IsSquareAttacked(sqE1, Black) &&
			!pos.IsSquareAttacked(sqF1, Black) &&
			!pos.IsSquareAttacked(sqG1, Black) {
			*out = append(*out, MakeMove(sqE1, sqG1, CastleFlag, NoFigure))
		}
		if pos.CastlingRights&WhiteQueenSide != 0 &&
			pos.IsEmpty(sqD1) && pos.IsEmpty(sqC1) && pos.IsEmpty(sqB1) &&
			!pos.IsSquareAttacked(sqE1, Black) &&
			!pos.IsSquareAttacked(sqD1, Black) &&
			!pos.IsSquareAttacked(sqC1, Black) {
			*out = append(*out, MakeMove(sqE1, sqC1, CastleFlag, NoFigure))
		}
	} else {
		if pos.CastlingRights&BlackKingSide != 0 &&
			pos.IsEmpty(sqF8) && pos.IsEmpty(sqG8) &&
			!pos.IsSquareAttacked(sqE8, White) &&
			!pos.IsSquareAttacked(sqF8, White) &&
			!pos.IsSquareAttacked(sqG8, White) {
			*out = append(*out, MakeMove(sqE8, sqG8, CastleFlag, NoFigure))
		}
		if pos.CastlingRights&BlackQueenSide != 0 &&
			pos.IsEmpty(sqD8) && pos.IsEmpty(sqC8) && pos.IsEmpty(sqB8) &&
			!pos.IsSquareAttacked(sqE8, White) &&
			!pos.IsSquareAttacked(sqD8, White) &&
			!pos.IsSquareAttacked(sqC8, White) {
			*out = append(*out, MakeMove(sqE8, sqC8, CastleFlag, NoFigure))
		}
	}
}

// GeneratePseudoLegal appends every pseudo-legal move for the side to
// move to out. Pseudo-legal means the moving side's own king may be left
// in check; GenerateLegal filters that out.
func GeneratePseudoLegal(pos *Position, out *[]Move) {
	us := pos.SideToMove
	genPawns(pos, out, us)
	genLeapers(pos, out, us, Knight, KnightAttacks)
	genSliders(pos, out, us, Bishop)
	genSliders(pos, out, us, Rook)
	genSliders(pos, out, us, Queen)
	genLeapers(pos, out, us, King, KingAttacks)
	genCastles(pos, out, us)
}

// GenerateLegal appends every legal move for the side to move to out.
func GenerateLegal(pos *Position, out *[]Move) {
	us := pos.SideToMove
	pseudo := make([]Move, 0, 64)
	GeneratePseudoLegal(pos, &pseudo)

	for _, m := range pseudo {
		u := pos.DoMove(m)
		ok := !pos.InCheck(us)
		pos.UndoMove(m, u)
		if ok {
			*out = append(*out, m)
		}
	}
}

// GenerateCaptures appends only pseudo-legal captures, en passant
// captures and promotions (capturing or not). Quiescence search does not
// call it; it filters the legal move list with isCaptureLike instead.
func GenerateCaptures(pos *Position, out *[]Move) {
	var pseudo []Move
	GeneratePseudoLegal(pos, &pseudo)
	for _, m := range pseudo {
		if m.IsCapture() || m.IsPromotion() {
			*out = append(*out, m)
		}
	}
}
