package perft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/negafish/engine"
)

func TestPerftStartPos(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	pos, err := engine.ParseFEN(engine.StartFEN)
	require.NoError(t, err)

	want := []uint64{20, 400, 8902, 197281, 4865609}
	for i, w := range want {
		depth := i + 1
		if depth >= 5 && testing.Short() {
			continue
		}
		got := Count(pos.Clone(), depth)
		assert.Equal(t, w, got, "perft(%d) from startpos", depth)
	}
}

func TestPerftStartPosDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("perft(6) from startpos is expensive; run with -short=false")
	}
	pos, err := engine.ParseFEN(engine.StartFEN)
	require.NoError(t, err)
	assert.Equal(t, uint64(119060324), Count(pos, 6))
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := engine.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	want := []uint64{48, 2039, 97862}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, Count(pos.Clone(), depth), "perft(%d) from kiwipete", depth)
	}
	if !testing.Short() {
		assert.Equal(t, uint64(4085603), Count(pos.Clone(), 4))
	}
}

func TestPerftEnPassantStress(t *testing.T) {
	pos, err := engine.ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)

	want := []uint64{14, 191, 2812, 43238}
	for i, w := range want {
		depth := i + 1
		assert.Equal(t, w, Count(pos.Clone(), depth), "perft(%d) from ep-stress position", depth)
	}
	if !testing.Short() {
		assert.Equal(t, uint64(674624), Count(pos.Clone(), 5))
	}
}

func TestDivideSumsToCount(t *testing.T) {
	pos, err := engine.ParseFEN(engine.StartFEN)
	require.NoError(t, err)

	entries, total, err := Divide(context.Background(), pos, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(8902), total)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Len(t, entries, 20)
}
