package aggregate

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrWindowSize = errors.New("the window size must be at least one month")
	ErrMonthZero  = errors.New("the target month must be set")
)

// Source is the persistence boundary for the rolling summary.
// Implementations must return records restricted to exactly the
// requested month.
type Source interface {
	Records(ctx context.Context, kind models.RecordKind, month types.Month) ([]models.Record, error)
}

// MonthlySummary is the income and expense total for one month.
type MonthlySummary struct {
	Month   types.Month     `json:"month" example:"2026-09-01T00:00:00Z"`
	Income  decimal.Decimal `json:"income" example:"1500000"`
	Expense decimal.Decimal `json:"expense" example:"1200000"`
}

// Net returns the balance of the month. It is always derived,
// never stored.
func (s MonthlySummary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// RollingSummary computes one MonthlySummary per month in the window-month
// range ending at end, ordered ascending by month.
//
// The per-month fetches run concurrently and are joined before the result
// is built. A failing fetch degrades that month to zero totals instead of
// failing the whole window; the error is logged, not returned. Each
// summary is written to its own pre-allocated slot, so the merge needs no
// locking and is independent of completion order.
//
// A window below one month or a zero end month is a contract violation
// and fails fast.
func RollingSummary(ctx context.Context, source Source, end types.Month, window int) ([]MonthlySummary, error) {
	if window < 1 {
		return nil, ErrWindowSize
	}

	if end.IsZero() {
		return nil, ErrMonthZero
	}

	summaries := make([]MonthlySummary, window)

	var g errgroup.Group
	for i, month := range end.Window(window) {
		g.Go(func() error {
			summaries[i] = monthSummary(ctx, source, month)
			return nil
		})
	}

	// The goroutines never return errors, failures degrade per month
	_ = g.Wait()

	return summaries, nil
}

// monthSummary sums the month's incomes and expenses. Any fetch failure
// degrades the whole month to zero totals.
func monthSummary(ctx context.Context, source Source, month types.Month) MonthlySummary {
	summary := MonthlySummary{
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	incomes, err := source.Records(ctx, models.KindIncome, month)
	if err != nil {
		log.Warn().Err(err).Stringer("month", month).Msg("income fetch failed, using zero totals")
		return summary
	}

	expenses, err := source.Records(ctx, models.KindExpense, month)
	if err != nil {
		log.Warn().Err(err).Stringer("month", month).Msg("expense fetch failed, using zero totals")
		return summary
	}

	summary.Income = Sum(incomes)
	summary.Expense = Sum(expenses)
	return summary
}
