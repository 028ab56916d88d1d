package v1

import (
	"time"

	"github.com/scastellanosl/coinary-backend/internal/aggregate"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/types"
	ez_uuid "github.com/scastellanosl/coinary-backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// StatsFilter is the shared query filter for the stats endpoints. Not
// every endpoint uses every field.
type StatsFilter struct {
	Month    string            `form:"month"`    // The month in YYYY-MM format
	Kind     models.RecordKind `form:"kind"`     // INCOME or EXPENSE. Defaults to EXPENSE.
	LedgerID ez_uuid.UUID      `form:"ledger"`   // ID of the ledger. Unset means all ledgers.
	Top      int               `form:"top"`      // Return only the n largest categories
	Category string            `form:"category"` // Glob pattern matching category names, e.g. "Food*"
	Time     string            `form:"time"`     // Reference time for the weekly window. Defaults to now.
	Window   string            `form:"window"`   // Number of months in the rolling summary. Defaults to 3.
}

// DayStats are the per-day totals of one month.
type DayStats struct {
	Month types.Month          `json:"month" example:"2026-09-01T00:00:00Z"` // The month the days belong to
	Days  []aggregate.DayTotal `json:"days"`                                 // Totals per day with at least one record, ascending
	Total decimal.Decimal      `json:"total" example:"1250000"`              // Sum over all days of the month
}

type DayStatsResponse struct {
	Error *string   `json:"error" example:"the month query parameter must be set in YYYY-MM format"` // The error, if any occurred
	Data  *DayStats `json:"data"`                                                                    // The day totals
}

// CategoryStats are the per-category totals of one month.
type CategoryStats struct {
	Month      types.Month               `json:"month" example:"2026-09-01T00:00:00Z"` // The month the categories are aggregated over
	Categories []aggregate.CategoryTotal `json:"categories"`                           // Totals per category, largest first
	Total      decimal.Decimal           `json:"total" example:"1250000"`              // Sum over all returned categories
}

type CategoryStatsResponse struct {
	Error *string        `json:"error" example:"the month query parameter must be set in YYYY-MM format"` // The error, if any occurred
	Data  *CategoryStats `json:"data"`                                                                    // The category totals
}

// WeekStats are the expense totals of the Monday-to-Sunday week around a
// reference time.
type WeekStats struct {
	From       time.Time                 `json:"from" example:"2026-08-31T00:00:00Z"`          // Monday 00:00:00.000 of the week
	Until      time.Time                 `json:"until" example:"2026-09-06T23:59:59.999Z"`     // Sunday 23:59:59.999 of the week
	Categories []aggregate.CategoryTotal `json:"categories"`                                   // Expense totals per category, largest first
	Total      decimal.Decimal           `json:"total" example:"320000"`                       // Sum of all expenses in the week
}

type WeekStatsResponse struct {
	Error *string    `json:"error" example:"the time query parameter must be an RFC3339 timestamp or a YYYY-MM-DD date"` // The error, if any occurred
	Data  *WeekStats `json:"data"`                                                                                       // The weekly totals
}

// MonthSummary wraps the summary of one month together with its derived
// net balance.
type MonthSummary struct {
	aggregate.MonthlySummary
	Net decimal.Decimal `json:"net" example:"300000"` // Income minus expenses
}

type MonthSummaryListResponse struct {
	Error *string        `json:"error" example:"the window size must be at least one month"` // The error, if any occurred
	Data  []MonthSummary `json:"data"`                                                       // One summary per month, ascending
}
