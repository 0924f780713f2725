package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLegalStartPosCount(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	var moves []Move
	GenerateLegal(pos, &moves)
	assert.Len(t, moves, 20)
}

func TestGenerateLegalExcludesMovesIntoCheck(t *testing.T) {
	// White king on e1 pinned view: black rook on e8, white king e1,
	// nothing blocking - king must not be able to step off the pin line
	// in a way that's still check, and a blocking piece can't move away.
	pos, err := ParseFEN("1k2r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	require.NoError(t, err)

	var moves []Move
	GenerateLegal(pos, &moves)

	e2, _ := SquareFromString("e2")
	for _, m := range moves {
		if m.From() == e2 {
			assert.True(t, m.To().File() == e2.File(), "pinned bishop may only move along the pin line, got %s", m)
		}
	}
}

func TestCastlingExcludedWhenThroughCheck(t *testing.T) {
	pos, err := ParseFEN("1k3r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	var moves []Move
	GenerateLegal(pos, &moves)

	for _, m := range moves {
		assert.False(t, m.IsCastle() && m.To() == sqG1, "king-side castle crosses f1, which the f8 rook attacks, must be excluded")
	}
}

func TestNoLegalMovesIsCheckmateOrStalemate(t *testing.T) {
	// Fool's mate final position: white to move has no legal moves and is
	// in check (checkmate).
	pos, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	var moves []Move
	GenerateLegal(pos, &moves)
	assert.Empty(t, moves)
	assert.True(t, pos.InCheck(White))
}
