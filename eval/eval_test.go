package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/negafish/engine"
)

func TestStartPosIsBalanced(t *testing.T) {
	pos, err := engine.ParseFEN(engine.StartFEN)
	require.NoError(t, err)

	e := NewEvaluator()
	e.Init(pos)
	assert.Equal(t, 0, e.EvalCP(pos), "starting position must be perfectly balanced")
}

func TestExtraQueenIsWinning(t *testing.T) {
	pos, err := engine.ParseFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)

	e := NewEvaluator()
	e.Init(pos)
	assert.Greater(t, e.EvalCP(pos), 800)
}

func TestPhase256FullAndEmpty(t *testing.T) {
	start, err := engine.ParseFEN(engine.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, 256, phase256(start))

	bare, err := engine.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 0, phase256(bare))
}

func TestMaterialEstimateDeltaMatchesCapture(t *testing.T) {
	pos, err := engine.ParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var moves []engine.Move
	engine.GenerateLegal(pos, &moves)

	var capture engine.Move
	for _, m := range moves {
		if m.IsCapture() {
			capture = m
			break
		}
	}
	require.NotEqual(t, engine.NoMove, capture)

	d := NewMaterial(MaterialWeights{}).EstimateDelta(pos, capture)
	assert.True(t, d.Valid)
	assert.Equal(t, valuePawn, d.Score.MG)
}
