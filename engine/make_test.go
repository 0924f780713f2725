package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestMakeUnmakeRoundTrip applies every legal move from a variety of
// positions and checks that UndoMove restores the position exactly —
// go-cmp gives a readable field-by-field diff when it doesn't.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)

		before := *pos
		var moves []Move
		GenerateLegal(pos, &moves)

		for _, m := range moves {
			u := pos.DoMove(m)
			pos.UndoMove(m, u)

			if diff := cmp.Diff(before, *pos, cmp.AllowUnexported(Position{})); diff != "" {
				t.Fatalf("fen %q move %s: position not restored (-want +got):\n%s", fen, m, diff)
			}
		}
	}
}

func TestCastlingClearsRights(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := MakeMove(sqE1, sqG1, CastleFlag, NoFigure)
	pos.DoMove(m)

	require.Equal(t, Castling(0), pos.CastlingRights&(WhiteKingSide|WhiteQueenSide))
	require.Equal(t, BlackKingSide|BlackQueenSide, pos.CastlingRights)
	require.True(t, pos.pieces[White][Rook].Has(sqF1))
	require.True(t, pos.pieces[White][King].Has(sqG1))
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	d6, _ := SquareFromString("d6")
	e5, _ := SquareFromString("e5")
	d5, _ := SquareFromString("d5")

	m := MakeMove(e5, d6, Capture|EnPassantFlag, NoFigure)
	u := pos.DoMove(m)

	require.True(t, pos.IsEmpty(d5), "captured pawn must be removed")
	require.True(t, pos.pieces[White][Pawn].Has(d6))

	pos.UndoMove(m, u)
	require.True(t, pos.pieces[Black][Pawn].Has(d5))
	require.True(t, pos.pieces[White][Pawn].Has(e5))
}
