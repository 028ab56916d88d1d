// Package aggregate turns record lists into day, category and month
// summaries.
//
// All functions are pure: they never mutate their inputs, perform no I/O
// (the rolling summary fetches through the Source interface, but owns no
// state) and return newly built aggregates. Calling any of them twice with
// the same input yields identical output.
//
// Degradation is per record, not per call: a negative amount contributes
// zero, a blank category lands in the fallback bucket and a record without
// a usable date is left out of day and week bucketing. None of these abort
// an aggregation.
package aggregate

import (
	"sort"
	"strings"

	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/types"
	"github.com/shopspring/decimal"
)

// Partition splits a mixed record list into incomes and expenses,
// preserving the relative order within each part.
func Partition(records []models.Record) (incomes, expenses []models.Record) {
	incomes = make([]models.Record, 0, len(records))
	expenses = make([]models.Record, 0, len(records))

	for _, record := range records {
		if record.Kind == models.KindIncome {
			incomes = append(incomes, record)
		} else {
			expenses = append(expenses, record)
		}
	}

	return
}

// DayTotal is the summed amount for one day of a month.
type DayTotal struct {
	Day   int             `json:"day" example:"14"`
	Total decimal.Decimal `json:"total" example:"30000"`
}

// Days buckets records by their literal day-of-month and sums the
// amounts per bucket. The result is ordered ascending by day.
//
// Records are expected to be pre-filtered to a single month by the fetch
// boundary; this function does not re-validate month membership. Records
// with a zero date cannot be assigned a bucket and are skipped.
func Days(records []models.Record) []DayTotal {
	buckets := make(map[int]decimal.Decimal)

	for _, record := range records {
		if record.Date.IsZero() {
			continue
		}

		day := record.Date.Day()
		buckets[day] = buckets[day].Add(amount(record))
	}

	totals := make([]DayTotal, 0, len(buckets))
	for day, total := range buckets {
		totals = append(totals, DayTotal{Day: day, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day < totals[j].Day
	})

	return totals
}

// Categories groups records by category and sums the amounts per group.
//
// Blank categories are coalesced into models.FallbackCategory, never
// dropped. The map carries no ordering, use TopCategories for ranked
// output.
func Categories(records []models.Record) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)

	for _, record := range records {
		totals[category(record)] = totals[category(record)].Add(amount(record))
	}

	return totals
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"40000"`
}

// TopCategories returns the n largest categories by total, descending.
// Ties keep the order in which the categories were first encountered.
// For n < 1 or n larger than the number of categories, all are returned.
func TopCategories(records []models.Record, n int) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, record := range records {
		c := category(record)
		if _, seen := totals[c]; !seen {
			order = append(order, c)
		}
		totals[c] = totals[c].Add(amount(record))
	}

	ranked := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		ranked = append(ranked, CategoryTotal{Category: c, Total: totals[c]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if n >= 1 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// WeekCategories runs category aggregation restricted to records whose
// date falls within the week, ranked largest first. Records with a zero
// date are skipped.
func WeekCategories(week types.Week, records []models.Record) []CategoryTotal {
	inWindow := make([]models.Record, 0, len(records))

	for _, record := range records {
		if record.Date.IsZero() || !week.Contains(record.Date) {
			continue
		}
		inWindow = append(inWindow, record)
	}

	return TopCategories(inWindow, 0)
}

// Sum adds up the amounts of all records.
func Sum(records []models.Record) decimal.Decimal {
	total := decimal.Zero

	for _, record := range records {
		total = total.Add(amount(record))
	}

	return total
}

// amount returns the record amount, degrading malformed values to zero
// so that a single bad record never aborts an aggregation.
func amount(record models.Record) decimal.Decimal {
	if record.Amount.IsNegative() {
		return decimal.Zero
	}

	return record.Amount
}

// category returns the record category with fallback substitution.
// Persistence already normalizes this, but records do not have to come
// from the database.
func category(record models.Record) string {
	c := strings.TrimSpace(record.Category)
	if c == "" {
		return models.FallbackCategory
	}

	return c
}
