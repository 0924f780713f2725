package engine

// Undo holds exactly what DoMove destroys and UndoMove needs to restore:
// the irreversible bits of position state, plus what (if anything) was
// captured. Make/unmake works from this record rather than recomputing
// anything from the move alone.
type Undo struct {
	CastlingRights Castling
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
	Key            uint64

	Captured       bool
	CapturedFigure Figure
	CapturedSquare Square
}

func rookCastleSquares(us Color, to Square) (rookFrom, rookTo Square) {
	if us == White {
		if to == sqG1 {
			return sqH1, sqF1
		}
		return sqA1, sqD1
	}
	if to == sqG8 {
		return sqH8, sqF8
	}
	return sqA8, sqD8
}

func updateCastlingOnMove(pos *Position, c Color, f Figure, from Square) {
	if f == King {
		if c == White {
			pos.setCastling(pos.CastlingRights &^ (WhiteKingSide | WhiteQueenSide))
		} else {
			pos.setCastling(pos.CastlingRights &^ (BlackKingSide | BlackQueenSide))
		}
		return
	}
	if f == Rook {
		switch from {
		case sqH1:
			pos.setCastling(pos.CastlingRights &^ WhiteKingSide)
		case sqA1:
			pos.setCastling(pos.CastlingRights &^ WhiteQueenSide)
		case sqH8:
			pos.setCastling(pos.CastlingRights &^ BlackKingSide)
		case sqA8:
			pos.setCastling(pos.CastlingRights &^ BlackQueenSide)
		}
	}
}

func updateCastlingOnCapture(pos *Position, capSq Square) {
	switch capSq {
	case sqH1:
		pos.setCastling(pos.CastlingRights &^ WhiteKingSide)
	case sqA1:
		pos.setCastling(pos.CastlingRights &^ WhiteQueenSide)
	case sqH8:
		pos.setCastling(pos.CastlingRights &^ BlackKingSide)
	case sqA8:
		pos.setCastling(pos.CastlingRights &^ BlackQueenSide)
	}
}

func (pos *Position) setCastling(cr Castling) {
	pos.Key ^= castlingKey(pos.CastlingRights)
	pos.CastlingRights = cr
	pos.Key ^= castlingKey(pos.CastlingRights)
}

func (pos *Position) setEnPassant(sq Square) {
	pos.Key ^= epFileKey(pos.EnPassant)
	pos.EnPassant = sq
	pos.Key ^= epFileKey(pos.EnPassant)
}

// DoMove applies m to pos and returns the Undo record needed to reverse
// it. pos must have m as one of its pseudo-legal moves.
func (pos *Position) DoMove(m Move) Undo {
	u := Undo{
		CastlingRights: pos.CastlingRights,
		EnPassant:      pos.EnPassant,
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
		Key:            pos.Key,
		CapturedSquare: NoSquare,
		CapturedFigure: NoFigure,
	}

	from, to := m.From(), m.To()
	flags := m.Flags()

	us := pos.SideToMove
	them := us.Other()

	pos.setEnPassant(NoSquare)

	f := pos.figureAt(us, from)

	if flags&EnPassantFlag != 0 {
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		u.Captured = true
		u.CapturedFigure = Pawn
		u.CapturedSquare = capSq
		pos.remove(them, Pawn, capSq)
		pos.HalfmoveClock = 0
	} else if flags&Capture != 0 {
		cf := pos.figureAt(them, to)
		u.Captured = true
		u.CapturedFigure = cf
		u.CapturedSquare = to
		if cf != NoFigure {
			pos.remove(them, cf, to)
		}
		updateCastlingOnCapture(pos, to)
		pos.HalfmoveClock = 0
	}

	if f == Pawn {
		pos.HalfmoveClock = 0
	} else if flags&(Capture|EnPassantFlag) == 0 {
		pos.HalfmoveClock++
	}

	pos.remove(us, f, from)

	switch {
	case flags&CastleFlag != 0:
		pos.put(us, King, to)
		rookFrom, rookTo := rookCastleSquares(us, to)
		pos.remove(us, Rook, rookFrom)
		pos.put(us, Rook, rookTo)
		updateCastlingOnMove(pos, us, King, from)
	case flags&PromoFlag != 0:
		pos.put(us, m.Promotion(), to)
	default:
		pos.put(us, f, to)
		if flags&DoublePush != 0 {
			epSq := from + 8
			if us == Black {
				epSq = from - 8
			}
			pos.setEnPassant(epSq)
		}
		updateCastlingOnMove(pos, us, f, from)
	}

	if us == Black {
		pos.FullmoveNumber++
	}
	pos.SideToMove = them
	pos.Key ^= sideKey()

	return u
}

// UndoMove reverses m, given the Undo record DoMove returned for it.
func (pos *Position) UndoMove(m Move, u Undo) {
	from, to := m.From(), m.To()
	flags := m.Flags()

	us := pos.SideToMove.Other()
	them := us.Other()

	switch {
	case flags&CastleFlag != 0:
		pos.remove(us, King, to)
		pos.put(us, King, from)
		rookFrom, rookTo := rookCastleSquares(us, to)
		pos.remove(us, Rook, rookTo)
		pos.put(us, Rook, rookFrom)
	case flags&PromoFlag != 0:
		pos.remove(us, m.Promotion(), to)
		pos.put(us, Pawn, from)
	default:
		f := pos.figureAt(us, to)
		pos.remove(us, f, to)
		pos.put(us, f, from)
	}

	if u.Captured && u.CapturedSquare != NoSquare {
		pos.put(them, u.CapturedFigure, u.CapturedSquare)
	}

	pos.CastlingRights = u.CastlingRights
	pos.EnPassant = u.EnPassant
	pos.HalfmoveClock = u.HalfmoveClock
	pos.FullmoveNumber = u.FullmoveNumber
	pos.Key = u.Key
	pos.SideToMove = us
}

// IsLegalMove reports whether m keeps the moving side's own king safe.
// It applies and reverses the move to check, so it is only cheap to call
// occasionally (movegen's legal filter does this for every pseudo-legal
// move; callers with a single candidate move should prefer this).
func (pos *Position) IsLegalMove(m Move) bool {
	us := pos.SideToMove
	u := pos.DoMove(m)
	ok := !pos.InCheck(us)
	pos.UndoMove(m, u)
	return ok
}
