package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsNonZeroNodes(t *testing.T) {
	res, err := Run(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.Greater(t, res.Nodes, uint64(0))
}

func TestRunIsDeterministicAtFixedDepth(t *testing.T) {
	a, err := Run(context.Background(), 2, nil)
	require.NoError(t, err)
	b, err := Run(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Nodes, b.Nodes)
}
