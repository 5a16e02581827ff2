package usage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BeerFinder/mocks"
	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/kv"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/taxonomy"
	"droscher.com/BeerFinder/pkg/usage"
)

type CounterTestSuite struct {
	suite.Suite
	repo         *mocks.UsageRepository
	store        *kv.Memory
	counter      *usage.Counter
	observedLogs *observer.ObservedLogs
}

func TestCounterTestSuite(t *testing.T) {
	suite.Run(t, new(CounterTestSuite))
}

var errDatabaseDown = errors.New("dial tcp: connection refused")

func (suite *CounterTestSuite) SetupTest() {
	var observedZapCore zapcore.Core

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	suite.repo = mocks.NewUsageRepository(suite.T())
	suite.store = kv.NewMemory()
	suite.counter = usage.NewCounter(suite.repo, suite.store, zap.New(observedZapCore))
}

func (suite *CounterTestSuite) TestRecord_IncrementsRepository() {
	ctx := context.Background()
	suite.repo.EXPECT().AddFilterUsage(ctx, "style:IPA", int64(1)).Return(nil).Once()

	suite.counter.Record(ctx, filter.Style, "IPA")

	suite.False(suite.counter.Degraded())
	suite.Equal(0, suite.observedLogs.Len())
}

func (suite *CounterTestSuite) TestRecord_BuffersWhenRepositoryFails() {
	ctx := context.Background()
	suite.repo.EXPECT().AddFilterUsage(ctx, "bitterness:medium", int64(1)).Return(errDatabaseDown).Twice()

	suite.counter.Record(ctx, filter.Bitterness, "medium")
	suite.counter.Record(ctx, filter.Bitterness, "medium")

	suite.True(suite.counter.Degraded())

	pending, err := suite.store.Counters(ctx, "filter_stats_pending")
	suite.Require().NoError(err)
	suite.Equal(map[string]int64{"bitterness:medium": 2}, pending)
	suite.Equal(2, suite.observedLogs.FilterMessage("Buffering filter usage").Len())
}

func (suite *CounterTestSuite) TestRecordSelection_RecordsEveryOption() {
	ctx := context.Background()
	suite.repo.EXPECT().AddFilterUsage(ctx, "flavor:Cítrico", int64(1)).Return(nil).Once()
	suite.repo.EXPECT().AddFilterUsage(ctx, "flavor:Tropical", int64(1)).Return(nil).Once()
	suite.repo.EXPECT().AddFilterUsage(ctx, "strength:strong", int64(1)).Return(nil).Once()

	var selection filter.Selection
	selection.Set(filter.Flavor, "Cítrico", "Tropical")
	selection.Set(filter.Strength, "strong")

	suite.counter.RecordSelection(ctx, selection)
}

func (suite *CounterTestSuite) TestCounts_AddsBufferedIncrements() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.IncrBy(ctx, "filter_stats_pending", "style:IPA", 2))
	suite.repo.EXPECT().GetFilterStats(ctx).Return(map[string]int64{"style:IPA": 5, "color:Negro": 1}, nil).Once()

	counts := suite.counter.Counts(ctx)

	suite.Equal(map[string]int64{"style:IPA": 7, "color:Negro": 1}, counts)
}

func (suite *CounterTestSuite) TestCounts_FallsBackToSnapshot() {
	ctx := context.Background()
	suite.repo.EXPECT().GetFilterStats(ctx).Return(map[string]int64{"style:Stout": 3}, nil).Once()
	suite.repo.EXPECT().GetFilterStats(ctx).Return(nil, errDatabaseDown).Once()

	suite.counter.Counts(ctx)
	counts := suite.counter.Counts(ctx)

	suite.True(suite.counter.Degraded())
	suite.Equal(map[string]int64{"style:Stout": 3}, counts)
}

func (suite *CounterTestSuite) TestCounts_EmptyWithoutSnapshot() {
	ctx := context.Background()
	suite.repo.EXPECT().GetFilterStats(ctx).Return(nil, errDatabaseDown).Once()

	suite.Empty(suite.counter.Counts(ctx))
}

func (suite *CounterTestSuite) TestFlush_MovesBufferToRepository() {
	ctx := context.Background()
	suite.repo.EXPECT().AddFilterUsage(ctx, "origin:México", int64(1)).Return(errDatabaseDown).Once()
	suite.counter.Record(ctx, filter.Origin, "México")
	suite.Require().NoError(suite.store.IncrBy(ctx, "filter_stats_pending", "origin:México", 2))

	suite.repo.EXPECT().AddFilterUsage(ctx, "origin:México", int64(3)).Return(nil).Once()

	suite.Require().NoError(suite.counter.Flush(ctx))
	suite.False(suite.counter.Degraded())

	pending, err := suite.store.Counters(ctx, "filter_stats_pending")
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *CounterTestSuite) TestFlush_KeepsFailedIncrements() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.IncrBy(ctx, "filter_stats_pending", "style:IPA", 4))
	suite.Require().NoError(suite.store.IncrBy(ctx, "filter_stats_pending", "style:Lager", 1))
	suite.repo.EXPECT().AddFilterUsage(ctx, "style:IPA", int64(4)).Return(errDatabaseDown).Once()
	suite.repo.EXPECT().AddFilterUsage(ctx, "style:Lager", int64(1)).Return(nil).Once()

	suite.Require().ErrorIs(suite.counter.Flush(ctx), errDatabaseDown)

	pending, err := suite.store.Counters(ctx, "filter_stats_pending")
	suite.Require().NoError(err)
	suite.Equal(map[string]int64{"style:IPA": 4}, pending)
}

func (suite *CounterTestSuite) TestFlush_NothingBuffered() {
	suite.Require().NoError(suite.counter.Flush(context.Background()))
}

func TestBreakdown_GroupsAndSortsByUsage(t *testing.T) {
	options := taxonomy.New([]model.FilterOption{
		{Category: "style", ID: "IPA"},
		{Category: "style", ID: "Stout"},
		{Category: "style", ID: "Lager"},
		{Category: "strength", ID: "medium"},
		{Category: "bitterness", ID: "medium"},
	})
	counts := map[string]int64{"style:Stout": 4, "style:IPA": 1, "bitterness:medium": 2}

	stats := usage.Breakdown(options, counts)

	require.Len(t, stats, len(filter.Categories()))

	style := stats[filter.Style]
	assert.Equal(t, int64(5), style.Total)
	require.Len(t, style.Options, 2)
	assert.Equal(t, "Stout", style.Options[0].ID)
	assert.Equal(t, int64(0), stats[filter.Strength].Total)
	assert.Equal(t, int64(2), stats[filter.Bitterness].Total)
}
