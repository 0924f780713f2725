package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/negafish/internal/config"
	"github.com/halvorsen/negafish/internal/logging"
)

func newTestUCI(t *testing.T) *uci {
	t.Helper()
	return newUCI(config.Default(), logging.New())
}

func TestExecuteEmptyLineIsNoop(t *testing.T) {
	u := newTestUCI(t)
	assert.NoError(t, u.execute(""))
}

func TestExecuteQuitReturnsErrQuit(t *testing.T) {
	u := newTestUCI(t)
	assert.ErrorIs(t, u.execute("quit"), errQuit)
}

func TestExecutePositionStartposThenMoves(t *testing.T) {
	u := newTestUCI(t)
	require.NoError(t, u.execute("position startpos moves e2e4 e7e5"))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", u.eng.FEN())
}

func TestExecutePositionFEN(t *testing.T) {
	u := newTestUCI(t)
	require.NoError(t, u.execute("position fen 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"))
	assert.Equal(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", u.eng.FEN())
}

func TestExecuteUnknownPositionArgErrors(t *testing.T) {
	u := newTestUCI(t)
	assert.Error(t, u.execute("position bogus"))
}

func TestExecuteGoReturnsABestMove(t *testing.T) {
	u := newTestUCI(t)
	require.NoError(t, u.execute("position startpos"))
	assert.NoError(t, u.execute("go depth 2"))
}
