package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/negafish/engine"
)

func TestStoreThenProbeSameGeneration(t *testing.T) {
	tt := NewTranspositionTable(1)
	const key = uint64(0xdeadbeefcafef00d)
	m := engine.MakeMove(engine.Square(12), engine.Square(28), engine.Quiet, engine.NoFigure)

	tt.Store(key, 6, BoundExact, 123, m, 2)

	e, ok := tt.Probe(key)
	require.True(t, ok)
	assert.Equal(t, 123, fromTTScore(int(e.score), 2))
	assert.Equal(t, int16(6), e.depth)
	assert.Equal(t, BoundExact, e.bound)
	assert.Equal(t, m, e.best)
}

func TestMateScoreRoundTrip(t *testing.T) {
	for _, ply := range []int{0, 1, 5, 17} {
		for _, s := range []int{900000, -900000, 850000, -850000} {
			assert.Equal(t, s, fromTTScore(toTTScore(s, ply), ply))
		}
	}
}

func TestNonMateScoreUnaffectedByPly(t *testing.T) {
	assert.Equal(t, 37, toTTScore(37, 9))
	assert.Equal(t, -250, toTTScore(-250, 9))
}

func TestGenerationAgingUnsignedWraparound(t *testing.T) {
	// gen wraps 255 -> 1 (0 is reserved), never compares as a huge negative age.
	assert.Equal(t, 0, ageOf(1, 1))
	assert.Equal(t, 1, ageOf(2, 1))
	assert.Equal(t, 255, ageOf(0, 1))
}
