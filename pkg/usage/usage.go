// Package usage counts how often each filter option is chosen so that popular options surface first.
// Counts are cosmetic: concurrent increments may be lost and nothing is retried synchronously.
package usage

import (
	"context"
	"maps"
	"slices"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/kv"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/taxonomy"
)

const (
	pendingKey  = "filter_stats_pending"
	snapshotKey = "filter_stats"
)

type Counter struct {
	repository repository.UsageRepository
	store      kv.Store
	logger     *zap.Logger
	degraded   atomic.Bool
}

func NewCounter(repo repository.UsageRepository, store kv.Store, logger *zap.Logger) *Counter {
	return &Counter{repository: repo, store: store, logger: logger}
}

func (c *Counter) Degraded() bool {
	return c.degraded.Load()
}

// Record adds one use of the option. When the repository is unreachable the increment is buffered until
// the next Flush.
func (c *Counter) Record(ctx context.Context, category filter.Category, optionID string) {
	key := filter.UsageKey(category, optionID)

	err := c.repository.AddFilterUsage(ctx, key, 1)
	if err == nil {
		return
	}

	c.logger.Warn("Buffering filter usage", zap.String("key", key), zap.Error(err))
	c.degraded.Store(true)

	if err := c.store.IncrBy(ctx, pendingKey, key, 1); err != nil {
		c.logger.Error("Could not buffer filter usage", zap.String("key", key), zap.Error(err))
	}
}

// RecordSelection records one use of every selected option.
func (c *Counter) RecordSelection(ctx context.Context, selection filter.Selection) {
	for _, category := range selection.Populated() {
		for _, optionID := range selection.Get(category) {
			c.Record(ctx, category, optionID)
		}
	}
}

// Counts returns the usage of every option, including increments not flushed yet.
func (c *Counter) Counts(ctx context.Context) map[string]int64 {
	counts, err := c.repository.GetFilterStats(ctx)
	if err != nil {
		c.logger.Warn("Serving filter usage from snapshot", zap.Error(err))
		c.degraded.Store(true)

		counts = make(map[string]int64)
		if err := kv.GetJSON(ctx, c.store, snapshotKey, &counts); err != nil {
			counts = make(map[string]int64)
		}
	} else if err := kv.SetJSON(ctx, c.store, snapshotKey, counts); err != nil {
		c.logger.Warn("Could not store filter usage snapshot", zap.Error(err))
	}

	pending, err := c.store.Counters(ctx, pendingKey)
	if err != nil {
		c.logger.Warn("Could not read buffered filter usage", zap.Error(err))

		return counts
	}

	for key, delta := range pending {
		counts[key] += delta
	}

	return counts
}

// Flush moves buffered increments into the repository. Increments that fail are buffered again.
func (c *Counter) Flush(ctx context.Context) error {
	pending, err := c.store.Drain(ctx, pendingKey)
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	var errs error

	for _, key := range slices.Sorted(maps.Keys(pending)) {
		if err := c.repository.AddFilterUsage(ctx, key, pending[key]); err != nil {
			errs = multierr.Append(errs, err)
			errs = multierr.Append(errs, c.store.IncrBy(ctx, pendingKey, key, pending[key]))
		}
	}

	if errs != nil {
		c.logger.Error("Could not flush filter usage", zap.Error(errs))

		return errs
	}

	c.logger.Info("Flushed filter usage", zap.Int("keys", len(pending)))
	c.degraded.Store(false)

	return nil
}

// CategoryStats is the usage of one category's options, most used first.
type CategoryStats struct {
	Category filter.Category
	Options  []filter.RankedOption
	Total    int64
}

// Breakdown groups counts by category for the admin statistics. Options never used are left out.
func Breakdown(options *taxonomy.Taxonomy, counts map[string]int64) []CategoryStats {
	stats := make([]CategoryStats, 0, len(filter.Categories()))

	for _, category := range filter.Categories() {
		stat := CategoryStats{Category: category}

		for _, option := range filter.SortByUsage(category, options.Options(category), counts) {
			if option.Uses == 0 {
				continue
			}

			stat.Options = append(stat.Options, option)
			stat.Total += option.Uses
		}

		stats = append(stats, stat)
	}

	return stats
}
