package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a complete board state: piece placement, side to move,
// castling rights, en passant target, and the two fifty-move-rule
// clocks. occupancy bitboards are kept in step with the piece bitboards
// by put and remove, and rebuilt from them after FEN parsing.
type Position struct {
	pieces [ColorArraySize][FigureArraySize]Bitboard

	occupancyByColor [ColorArraySize]Bitboard
	occupancyBoth    Bitboard

	SideToMove     Color
	CastlingRights Castling
	EnPassant      Square

	HalfmoveClock  int
	FullmoveNumber int

	Key uint64
}

// NewPosition returns an empty position (no pieces, White to move).
// Use ParseFEN to build a real starting position.
func NewPosition() *Position {
	pos := &Position{EnPassant: NoSquare, FullmoveNumber: 1}
	pos.Key = ComputeKey(pos)
	return pos
}

// Clone returns an independent copy, safe to mutate without affecting
// the original — used by perft.Divide to hand each goroutine its own
// position.
func (pos *Position) Clone() *Position {
	cp := *pos
	return &cp
}

func (pos *Position) updateOccupancy() {
	pos.occupancyByColor[White] = 0
	pos.occupancyByColor[Black] = 0
	for f := Figure(0); f < Figure(FigureArraySize); f++ {
		pos.occupancyByColor[White] |= pos.pieces[White][f]
		pos.occupancyByColor[Black] |= pos.pieces[Black][f]
	}
	pos.occupancyBoth = pos.occupancyByColor[White] | pos.occupancyByColor[Black]
}

func (pos *Position) Occupied() Bitboard          { return pos.occupancyBoth }
func (pos *Position) OccupiedBy(c Color) Bitboard { return pos.occupancyByColor[c] }
func (pos *Position) IsEmpty(sq Square) bool       { return !pos.occupancyBoth.Has(sq) }

func (pos *Position) ByPiece(c Color, f Figure) Bitboard { return pos.pieces[c][f] }

// PieceOn returns the piece occupying sq, or NoPiece if empty.
func (pos *Position) PieceOn(sq Square) Piece {
	if !pos.occupancyBoth.Has(sq) {
		return NoPiece
	}
	c := White
	if pos.occupancyByColor[Black].Has(sq) {
		c = Black
	}
	for f := Figure(0); f < Figure(FigureArraySize); f++ {
		if pos.pieces[c][f].Has(sq) {
			return Piece{Figure: f, Color: c}
		}
	}
	return NoPiece
}

func (pos *Position) KingSquare(c Color) Square {
	return pos.pieces[c][King].LSB()
}

// put places a piece on an empty square and keeps Key/occupancy in sync.
func (pos *Position) put(c Color, f Figure, sq Square) {
	pos.pieces[c][f] |= sq.Bitboard()
	pos.occupancyByColor[c] |= sq.Bitboard()
	pos.occupancyBoth |= sq.Bitboard()
	pos.Key ^= pieceKey(c, f, sq)
}

// remove clears a piece known to be on sq.
func (pos *Position) remove(c Color, f Figure, sq Square) {
	pos.pieces[c][f] &^= sq.Bitboard()
	pos.occupancyByColor[c] &^= sq.Bitboard()
	pos.occupancyBoth &^= sq.Bitboard()
	pos.Key ^= pieceKey(c, f, sq)
}

func (pos *Position) figureAt(c Color, sq Square) Figure {
	for f := Figure(0); f < Figure(FigureArraySize); f++ {
		if pos.pieces[c][f].Has(sq) {
			return f
		}
	}
	return NoFigure
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by, in the current occupancy.
func (pos *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := pos.occupancyBoth

	if PawnAttacks(by.Other(), sq)&pos.pieces[by][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&pos.pieces[by][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&pos.pieces[by][King] != 0 {
		return true
	}
	bq := pos.pieces[by][Bishop] | pos.pieces[by][Queen]
	if BishopAttacks(sq, occ)&bq != 0 {
		return true
	}
	rq := pos.pieces[by][Rook] | pos.pieces[by][Queen]
	if RookAttacks(sq, occ)&rq != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (pos *Position) InCheck(c Color) bool {
	ksq := pos.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return pos.IsSquareAttacked(ksq, c.Other())
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var figureFromFENByte = map[byte]Figure{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN parses Forsyth-Edwards Notation into a new Position. Parsing
// is strict: a board section that doesn't cover all 64 squares in 8
// ranks of 8 files, or that is missing either king, is rejected.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	pos := &Position{EnPassant: NoSquare, FullmoveNumber: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return nil, fmt.Errorf("fen: rank %d overflows 8 files", rank+1)
			}
			c := White
			lower := ch
			if ch >= 'a' && ch <= 'z' {
				c = Black
			} else {
				lower = ch + ('a' - 'A')
			}
			f, ok := figureFromFENByte[lower]
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece byte %q", string(ch))
			}
			pos.put(c, f, MakeSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("fen: rank %d covers %d files, want 8", rank+1, file)
		}
	}

	if pos.pieces[White][King].Popcount() != 1 || pos.pieces[Black][King].Popcount() != 1 {
		return nil, fmt.Errorf("fen: each side must have exactly one king")
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				pos.CastlingRights |= WhiteKingSide
			case 'Q':
				pos.CastlingRights |= WhiteQueenSide
			case 'k':
				pos.CastlingRights |= BlackKingSide
			case 'q':
				pos.CastlingRights |= BlackQueenSide
			default:
				return nil, fmt.Errorf("fen: invalid castling byte %q", string(ch))
			}
		}
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en passant square: %w", err)
		}
		pos.EnPassant = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock: %w", err)
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid fullmove number: %w", err)
		}
		pos.FullmoveNumber = n
	}

	pos.updateOccupancy()
	pos.Key = ComputeKey(pos)
	return pos, nil
}

// FEN renders the position back to Forsyth-Edwards Notation.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			p := pos.PieceOn(sq)
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}
