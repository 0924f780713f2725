package facade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/negafish/search"
)

func TestNewGameStartsAtStandardPosition(t *testing.T) {
	e := New()
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", e.FEN())
}

func TestSetPositionAppliesMoves(t *testing.T) {
	e := New()
	err := e.SetPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", []string{"e2e4", "e7e5"})
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", e.FEN())
}

func TestSetPositionSkipsIllegalMoveToken(t *testing.T) {
	e := New()
	startFEN := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	err := e.SetPosition(startFEN, []string{"e2e5", "e2e4"})
	require.NoError(t, err)
	// e2e5 is illegal and skipped; e2e4 still applies.
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", e.FEN())
}

func TestSearchReturnsAMove(t *testing.T) {
	e := New()
	res := e.Search(context.Background(), search.Limits{MaxDepth: 3})
	assert.NotEmpty(t, res.BestMove)
	assert.NotEqual(t, "0000", res.BestMove)
}

func TestQuitStopsSearchPromptly(t *testing.T) {
	e := New()
	go func() {
		time.Sleep(10 * time.Millisecond)
		e.Quit()
	}()
	start := time.Now()
	e.Search(context.Background(), search.Limits{MaxDepth: 64})
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestReadyIsAlwaysTrue(t *testing.T) {
	e := New()
	assert.True(t, e.Ready())
}
