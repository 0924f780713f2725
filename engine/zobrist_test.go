package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobristKeyIsDeterministic(t *testing.T) {
	a, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, a.Key, b.Key)
}

func TestZobristKeyDependsOnSideToMove(t *testing.T) {
	a, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, a.Key, b.Key)
}

// TestZobristTranspositionConverges checks that two move orders reaching
// the same position converge to the same key, the property the
// transposition table depends on.
func TestZobristTranspositionConverges(t *testing.T) {
	a, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)

	nf3 := MakeMove(sqG1, Square(21) /* f3 */, Quiet, NoFigure)
	nc3 := MakeMove(sqB1, Square(18) /* c3 */, Quiet, NoFigure)
	nf6 := MakeMove(sqG8, Square(45) /* f6 */, Quiet, NoFigure)

	a.DoMove(nf3)
	a.DoMove(nf6)
	a.DoMove(nc3)

	b.DoMove(nc3)
	b.DoMove(nf6)
	b.DoMove(nf3)

	assert.Equal(t, a.Key, b.Key)
	assert.Equal(t, ComputeKey(a), a.Key)
	assert.Equal(t, ComputeKey(b), b.Key)
}
