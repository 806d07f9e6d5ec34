package main

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// NormalizationStats summarizes how well the embedding clustering
// compressed the raw ingredient vocabulary in the current run.
type NormalizationStats struct {
	RawNames       int     `json:"raw_names"`
	Clusters       int     `json:"clusters"`
	CompressionPct float64 `json:"compression_pct"`
	LargestGroups  []Group `json:"largest_groups"`
}

// Group is one canonical cluster with its raw aliases.
type Group struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases"`
}

// CollectNormalizationStats reports cluster counts and the clusters that
// absorbed the most aliases, which is the quickest way to spot a
// threshold that is set too loose.
func CollectNormalizationStats(normalizer *IngredientNormalizer, topN int) NormalizationStats {
	stats := NormalizationStats{
		RawNames: normalizer.AliasCount(),
		Clusters: normalizer.ClusterCount(),
	}
	if stats.RawNames > 0 {
		stats.CompressionPct = 100 * float64(stats.RawNames-stats.Clusters) / float64(stats.RawNames)
	}

	for canonical, aliases := range normalizer.Groups() {
		stats.LargestGroups = append(stats.LargestGroups, Group{Canonical: canonical, Aliases: aliases})
	}
	sort.Slice(stats.LargestGroups, func(i, j int) bool {
		if len(stats.LargestGroups[i].Aliases) != len(stats.LargestGroups[j].Aliases) {
			return len(stats.LargestGroups[i].Aliases) > len(stats.LargestGroups[j].Aliases)
		}
		return stats.LargestGroups[i].Canonical < stats.LargestGroups[j].Canonical
	})
	if topN > 0 && len(stats.LargestGroups) > topN {
		stats.LargestGroups = stats.LargestGroups[:topN]
	}
	return stats
}

// GraphStats is a snapshot of graph size and composition.
type GraphStats struct {
	NodeCounts         []map[string]any `json:"node_counts"`
	MealTypes          []map[string]any `json:"meal_types"`
	DietPreferences    []map[string]any `json:"diet_preferences"`
	PopularIngredients []map[string]any `json:"popular_ingredients"`
	IngredientInsights []map[string]any `json:"ingredient_insights"`
}

// CollectGraphStats gathers the standard reporting queries in one call.
func CollectGraphStats(ctx context.Context, queries *QueryManager, logger *zap.Logger) (GraphStats, error) {
	var stats GraphStats
	var err error

	if stats.NodeCounts, err = queries.CountNodesByType(ctx); err != nil {
		return stats, fmt.Errorf("count nodes: %w", err)
	}
	if stats.MealTypes, err = queries.MealTypeDistribution(ctx); err != nil {
		return stats, fmt.Errorf("meal type distribution: %w", err)
	}
	if stats.DietPreferences, err = queries.FindDietPreferences(ctx); err != nil {
		return stats, fmt.Errorf("diet preferences: %w", err)
	}
	if stats.PopularIngredients, err = queries.FindPopularIngredients(ctx, 20); err != nil {
		return stats, fmt.Errorf("popular ingredients: %w", err)
	}
	if stats.IngredientInsights, err = queries.IngredientInsights(ctx); err != nil {
		return stats, fmt.Errorf("ingredient insights: %w", err)
	}

	logger.Info("graph stats collected",
		zap.Int("label_groups", len(stats.NodeCounts)),
		zap.Int("meal_types", len(stats.MealTypes)))
	return stats, nil
}
