package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xtding233/cube-saver/internal/pricing"
	"github.com/xtding233/cube-saver/internal/scenario"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunSample(t *testing.T) {
	s := New(zaptest.NewLogger(t))
	r, err := s.Run(scenario.Sample())
	require.NoError(t, err)

	assert.Equal(t, pricing.Counts{11, 1, 0, 0, 0}, r.Plan.Funded)
	assert.Equal(t, "11x Tier 0 => 1x Tier I", r.Plan.PathString())
	assert.Equal(t, 20, r.Plan.RemainingBudget)
	assert.Equal(t, 550, r.Summary.AnticipatedCost)
	assert.Equal(t, scenario.Sample(), r.Input)
}

func TestRunRejectsNegativeInput(t *testing.T) {
	s := New(nil)
	for _, in := range []pricing.Input{
		{Budget: -1},
		{Budget: 10, Demand: pricing.Counts{0, -1, 0, 0, 0}},
	} {
		_, err := s.Run(in)
		assert.True(t, errors.Is(err, scenario.ErrInvalidInput), "input %+v: %v", in, err)
	}
}

func TestRunRejectsOversizedTable(t *testing.T) {
	s := New(nil, WithMaxCells(100))
	_, err := s.Run(pricing.Input{Budget: 99, Demand: pricing.Counts{1, 0, 0, 0, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, scenario.ErrInvalidInput))
	assert.Contains(t, err.Error(), "table cells limit")

	_, err = New(nil, WithMaxCells(0)).Run(pricing.Input{Budget: 99, Demand: pricing.Counts{1, 0, 0, 0, 0}})
	assert.NoError(t, err)
}

func TestRunRejectsOverflowingSizes(t *testing.T) {
	s := New(nil)
	for _, in := range []pricing.Input{
		{Budget: math.MaxInt},
		{Budget: 1 << 62, Demand: pricing.Counts{1, 0, 0, 0, 0}},
		{Demand: pricing.Counts{math.MaxInt / 2, math.MaxInt / 2, 3, 0, 0}},
		{Budget: 10, Demand: pricing.Counts{0, 0, 0, 0, math.MaxInt}},
	} {
		_, err := s.Run(in)
		require.Error(t, err, "input %+v", in)
		assert.True(t, errors.Is(err, scenario.ErrInvalidInput), "input %+v: %v", in, err)
		assert.Contains(t, err.Error(), "table cells limit")
	}
}

func TestRunAcceptsTableAtLimit(t *testing.T) {
	// (1+1) x (49+1) = 100 cells
	_, err := New(nil, WithMaxCells(100)).Run(pricing.Input{Budget: 49, Demand: pricing.Counts{1, 0, 0, 0, 0}})
	assert.NoError(t, err)
}

func TestRunWithCatalog(t *testing.T) {
	cat := pricing.DefaultCatalog()
	cat[pricing.TierI] = pricing.TierCost{Price: 20, Cashback: 10}
	s := New(nil, WithCatalog(cat))
	assert.Equal(t, cat, s.Catalog())

	r, err := s.Run(pricing.Input{Budget: 30, Demand: pricing.Counts{0, 3, 0, 0, 0}})
	require.NoError(t, err)
	// three tier-I modules at 10 net each fit a 30 cube budget
	assert.Equal(t, pricing.Counts{0, 3, 0, 0, 0}, r.Plan.Funded)
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := New(zap.New(core)).Run(scenario.Sample())
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("planning").Len())
	require.Equal(t, 1, logs.FilterMessage("knapsack table").Len())
	ready := logs.FilterMessage("plan ready").All()
	require.Len(t, ready, 1)
	assert.Equal(t, "11x Tier 0 => 1x Tier I", ready[0].ContextMap()["path"])
	assert.Equal(t, "19.75", ready[0].ContextMap()["coverage_pct"])
}
