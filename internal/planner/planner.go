// Package planner validates an analysis request, runs the optimizer and logs
// what it did.
package planner

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xtding233/cube-saver/internal/pricing"
	"github.com/xtding233/cube-saver/internal/scenario"
)

// DefaultMaxCells caps the knapsack table at roughly 400 MB of ints.
const DefaultMaxCells = 50_000_000

// Report bundles one run's input with everything derived from it.
type Report struct {
	Input   pricing.Input
	Plan    pricing.Plan
	Summary pricing.Summary
}

// Service runs analyses against a fixed catalog.
type Service struct {
	log      *zap.Logger
	cat      pricing.Catalog
	maxCells int
}

type Option func(*Service)

// WithCatalog replaces the default price table.
func WithCatalog(cat pricing.Catalog) Option {
	return func(s *Service) { s.cat = cat }
}

// WithMaxCells bounds the DP table size; n <= 0 disables the check.
func WithMaxCells(n int) Option {
	return func(s *Service) { s.maxCells = n }
}

func New(log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{log: log, cat: pricing.DefaultCatalog(), maxCells: DefaultMaxCells}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Catalog returns the price table the service plans with.
func (s *Service) Catalog() pricing.Catalog { return s.cat }

// Run validates in and returns the full report for it.
func (s *Service) Run(in pricing.Input) (Report, error) {
	if err := scenario.ValidateInput(in); err != nil {
		return Report{}, err
	}
	if s.maxCells > 0 {
		if err := s.checkSize(in); err != nil {
			return Report{}, err
		}
	}
	cells := pricing.TableCells(in)

	s.log.Info("planning",
		zap.Int("budget", in.Budget),
		zap.Ints("demand", in.Demand[:]),
	)
	s.log.Debug("knapsack table",
		zap.Int("items", in.Demand.Sum()),
		zap.Int("cells", cells),
	)

	p := pricing.Analyze(s.cat, in)
	sum := pricing.Summarize(s.cat, in, p)

	s.log.Info("plan ready",
		zap.Ints("funded", p.Funded[:]),
		zap.String("path", p.PathString()),
		zap.Int("remaining_budget", p.RemainingBudget),
		zap.Ints("to_buy", p.Residual.ToBuy[:]),
		zap.Ints("free", p.Residual.Free[:]),
		zap.Stringer("coverage_pct", sum.Coverage),
	)
	return Report{Input: in, Plan: p, Summary: sum}, nil
}

// checkSize rejects inputs whose table would exceed maxCells. The product is
// never formed before each factor is known to be small enough.
func (s *Service) checkSize(in pricing.Input) error {
	for t, n := range in.Demand {
		if n > s.maxCells {
			return errors.Wrapf(scenario.ErrInvalidInput,
				"%s demand %d exceeds the table cells limit %d", pricing.Tier(t).Label(), n, s.maxCells)
		}
	}
	if in.Budget >= s.maxCells {
		return errors.Wrapf(scenario.ErrInvalidInput,
			"budget %d exceeds the table cells limit %d", in.Budget, s.maxCells)
	}
	if rows := in.Demand.Sum() + 1; rows > s.maxCells/(in.Budget+1) {
		return errors.Wrapf(scenario.ErrInvalidInput,
			"budget %d with %d modules exceeds the table cells limit %d",
			in.Budget, rows-1, s.maxCells)
	}
	return nil
}
