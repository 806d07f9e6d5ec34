package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectNormalizationStats(t *testing.T) {
	n := NewIngredientNormalizer(newWaterStub(), 0.5)
	n.Stage("water", "warm water", "flour")
	require.NoError(t, n.BuildEmbeddings(context.Background()))

	stats := CollectNormalizationStats(n, 10)
	assert.Equal(t, 3, stats.RawNames)
	assert.Equal(t, 2, stats.Clusters)
	assert.InDelta(t, 33.3, stats.CompressionPct, 0.1)

	require.NotEmpty(t, stats.LargestGroups)
	assert.Equal(t, "water", stats.LargestGroups[0].Canonical)
	assert.Len(t, stats.LargestGroups[0].Aliases, 2)
}

func TestCollectNormalizationStatsTopN(t *testing.T) {
	n := NewIngredientNormalizer(newWaterStub(), 0.5)
	n.Stage("water", "flour")
	require.NoError(t, n.BuildEmbeddings(context.Background()))

	stats := CollectNormalizationStats(n, 1)
	assert.Len(t, stats.LargestGroups, 1)
}

func TestCollectNormalizationStatsEmpty(t *testing.T) {
	n := NewIngredientNormalizer(newWaterStub(), 0.5)

	stats := CollectNormalizationStats(n, 10)
	assert.Zero(t, stats.RawNames)
	assert.Zero(t, stats.CompressionPct)
}
