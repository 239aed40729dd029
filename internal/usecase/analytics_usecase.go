package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/goexpense/internal/domain"
)

// AnalyticsUseCase computes spending summaries over stored expenses.
type AnalyticsUseCase struct {
	repo    ExpenseRepository
	metrics MetricsRecorder
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(repo ExpenseRepository, metrics MetricsRecorder) *AnalyticsUseCase {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &AnalyticsUseCase{repo: repo, metrics: metrics}
}

// Summary filters a snapshot of the store with criteria and aggregates the
// matching records. The four reductions read the same slice and run
// concurrently.
func (uc *AnalyticsUseCase) Summary(ctx context.Context, criteria domain.FilterCriteria) (*domain.Summary, error) {
	start := time.Now()

	records, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := domain.Filter(records, criteria)
	if err != nil {
		return nil, err
	}

	summary, err := Aggregate(filtered)
	if err != nil {
		return nil, err
	}

	uc.metrics.AnalyticsComputed(time.Since(start), len(filtered))
	return summary, nil
}

// Aggregate computes every view of records in parallel.
func Aggregate(records []domain.Expense) (*domain.Summary, error) {
	var (
		total      decimal.Decimal
		byCategory []domain.CategoryAmount
		byMonth    map[string]decimal.Decimal
		byDay      map[string]decimal.Decimal
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		total, err = domain.Total(records)
		return err
	})
	g.Go(func() (err error) {
		byCategory, err = domain.ByCategory(records)
		return err
	})
	g.Go(func() (err error) {
		byMonth, err = domain.ByMonth(records)
		return err
	})
	g.Go(func() (err error) {
		byDay, err = domain.ByDay(records)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.NewSummary(len(records), total, byCategory, byMonth, byDay), nil
}
