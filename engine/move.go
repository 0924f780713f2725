package engine

import "fmt"

// Move is a packed move: from | to<<6 | promo<<12 | flags<<16. Keeping
// it a plain integer (rather than a struct, as the wider engine family
// in this codebase tends to use) means moves compare with == and pack
// densely into move lists and the transposition table.
type Move uint32

const NoMove Move = 0

// MoveFlag is a bitmask of move properties, stored in a Move's flags
// field.
type MoveFlag uint32

const (
	Quiet         MoveFlag = 0
	Capture       MoveFlag = 1 << 0
	EnPassantFlag MoveFlag = 1 << 1
	CastleFlag    MoveFlag = 1 << 2
	DoublePush    MoveFlag = 1 << 3
	PromoFlag     MoveFlag = 1 << 4
)

// MakeMove packs a move. promo is only meaningful when flags has
// PromoFlag set, and must be one of Knight, Bishop, Rook, Queen.
func MakeMove(from, to Square, flags MoveFlag, promo Figure) Move {
	return Move(uint32(from) | uint32(to)<<6 | uint32(promo)<<12 | uint32(flags)<<16)
}

func (m Move) From() Square    { return Square(m & 0x3F) }
func (m Move) To() Square      { return Square((m >> 6) & 0x3F) }
func (m Move) Promotion() Figure { return Figure((m >> 12) & 0xF) }
func (m Move) Flags() MoveFlag { return MoveFlag(m >> 16) }

func (m Move) IsCapture() bool   { return m.Flags()&Capture != 0 }
func (m Move) IsEnPassant() bool { return m.Flags()&EnPassantFlag != 0 }
func (m Move) IsCastle() bool    { return m.Flags()&CastleFlag != 0 }
func (m Move) IsDoublePush() bool { return m.Flags()&DoublePush != 0 }
func (m Move) IsPromotion() bool { return m.Flags()&PromoFlag != 0 }

// String renders a move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoSymbol(m.Promotion())
	}
	return s
}

func promoSymbol(f Figure) string {
	switch f {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

// ParseUCIMove resolves a long-algebraic move string (as sent over the
// facade's textual move interface) against the legal moves available in
// pos. Resolving against the legal list, rather than trusting the
// flags implied by the text, means a malformed or illegal UCI string is
// always rejected instead of silently desyncing Position's invariants.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("malformed move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NoMove, err
	}
	var promo Figure = NoFigure
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece %q", s[4:])
		}
	}

	var legal []Move
	GenerateLegal(pos, &legal)
	for _, mv := range legal {
		if mv.From() == from && mv.To() == to {
			if mv.IsPromotion() {
				if mv.Promotion() == promo {
					return mv, nil
				}
				continue
			}
			return mv, nil
		}
	}
	return NoMove, fmt.Errorf("move %q is not legal in this position", s)
}
