package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartPos(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	assert.Equal(t, White, pos.SideToMove)
	assert.Equal(t, AnyCastling, pos.CastlingRights)
	assert.Equal(t, NoSquare, pos.EnPassant)
	assert.Equal(t, 0, pos.HalfmoveClock)
	assert.Equal(t, 1, pos.FullmoveNumber)
	assert.Equal(t, 8, pos.pieces[White][Pawn].Popcount())
	assert.Equal(t, 8, pos.pieces[Black][Pawn].Popcount())
	assert.Equal(t, sqE1, pos.KingSquare(White))
	assert.Equal(t, sqE8, pos.KingSquare(Black))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.FEN())
	}
}

func TestParseFENStrictRejectsMissingKing(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestParseFENStrictRejectsShortRank(t *testing.T) {
	_, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestIsSquareAttacked(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	require.NoError(t, err)

	f3, _ := SquareFromString("f3")
	assert.True(t, pos.IsSquareAttacked(f3, White))
	c5, _ := SquareFromString("c5")
	assert.False(t, pos.IsSquareAttacked(c5, White))
}

func TestComputeKeyMatchesIncrementalKey(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, ComputeKey(pos), pos.Key)

	var moves []Move
	GenerateLegal(pos, &moves)
	require.NotEmpty(t, moves)

	u := pos.DoMove(moves[0])
	assert.Equal(t, ComputeKey(pos), pos.Key, "incremental key must match recomputed key after DoMove")

	pos.UndoMove(moves[0], u)
	assert.Equal(t, ComputeKey(pos), pos.Key, "incremental key must match recomputed key after UndoMove")
}
