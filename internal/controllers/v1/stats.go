package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/scastellanosl/coinary-backend/internal/aggregate"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/days", OptionsStats)
	r.GET("/days", GetDayStats)

	r.OPTIONS("/categories", OptionsStats)
	r.GET("/categories", GetCategoryStats)

	r.OPTIONS("/week", OptionsStats)
	r.GET("/week", GetWeekStats)

	r.OPTIONS("/months", OptionsStats)
	r.GET("/months", GetMonthSummaries)
}

// OptionsStats returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Stats
//	@Success		204
//	@Router			/v1/stats/days [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// parseKind validates the kind query parameter. An unset kind defaults
// to expenses since most statistics are about spending.
func parseKind(kind models.RecordKind) (models.RecordKind, error) {
	switch kind {
	case "":
		return models.KindExpense, nil
	case models.KindIncome, models.KindExpense:
		return kind, nil
	default:
		return "", errKindInvalid
	}
}

// parseReferenceTime parses the time parameter of the weekly stats. An
// unset value defaults to now.
func parseReferenceTime(value string) (time.Time, error) {
	if value == "" {
		return time.Now().In(time.UTC), nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	return time.Time{}, errTimeInvalid
}

// GetDayStats returns the day totals for one month
//
//	@Summary		Day totals
//	@Description	Returns the sum of records per day of the month. Days without records are omitted.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	DayStatsResponse
//	@Failure		400	{object}	DayStatsResponse
//	@Failure		500	{object}	DayStatsResponse
//	@Param			month	query	string	true	"The month in YYYY-MM format"
//	@Param			kind	query	string	false	"INCOME or EXPENSE. Defaults to EXPENSE."
//	@Param			ledger	query	string	false	"Filter by ledger ID"
//	@Router			/v1/stats/days [get]
func GetDayStats(c *gin.Context) {
	defer observeStats("days", time.Now())

	var filter StatsFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, DayStatsResponse{
			Error: &s,
		})
		return
	}

	if filter.Month == "" {
		s := errMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, DayStatsResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(filter.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DayStatsResponse{
			Error: &s,
		})
		return
	}

	kind, err := parseKind(filter.Kind)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DayStatsResponse{
			Error: &s,
		})
		return
	}

	records, err := models.RecordsForMonth(models.DB, kind, filter.LedgerID.UUID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DayStatsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DayStatsResponse{
		Data: &DayStats{
			Month: month,
			Days:  aggregate.Days(records),
			Total: aggregate.Sum(records),
		},
	})
}

// GetCategoryStats returns the category totals for one month
//
//	@Summary		Category totals
//	@Description	Returns the sum of records per category for the month, largest first. Records without a category are reported under the fallback category.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	CategoryStatsResponse
//	@Failure		400	{object}	CategoryStatsResponse
//	@Failure		500	{object}	CategoryStatsResponse
//	@Param			month		query	string	true	"The month in YYYY-MM format"
//	@Param			kind		query	string	false	"INCOME or EXPENSE. Defaults to EXPENSE."
//	@Param			ledger		query	string	false	"Filter by ledger ID"
//	@Param			top			query	int		false	"Return only the n largest categories"
//	@Param			category	query	string	false	"Glob pattern matching category names, e.g. Food*"
//	@Router			/v1/stats/categories [get]
func GetCategoryStats(c *gin.Context) {
	defer observeStats("categories", time.Now())

	var filter StatsFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, CategoryStatsResponse{
			Error: &s,
		})
		return
	}

	if filter.Month == "" {
		s := errMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, CategoryStatsResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(filter.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryStatsResponse{
			Error: &s,
		})
		return
	}

	kind, err := parseKind(filter.Kind)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryStatsResponse{
			Error: &s,
		})
		return
	}

	records, err := models.RecordsForMonth(models.DB, kind, filter.LedgerID.UUID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryStatsResponse{
			Error: &s,
		})
		return
	}

	categories := aggregate.TopCategories(records, filter.Top)

	// The glob filter works on the aggregated labels, so a pattern like
	// "Food*" matches the normalized category names, not raw user input
	if filter.Category != "" {
		matched := make([]aggregate.CategoryTotal, 0, len(categories))
		for _, category := range categories {
			if glob.Glob(filter.Category, category.Category) {
				matched = append(matched, category)
			}
		}
		categories = matched
	}

	total := decimalSum(categories)

	c.JSON(http.StatusOK, CategoryStatsResponse{
		Data: &CategoryStats{
			Month:      month,
			Categories: categories,
			Total:      total,
		},
	})
}

// GetWeekStats returns the weekly expense totals
//
//	@Summary		Weekly totals
//	@Description	Returns the expense totals by category for the Monday-to-Sunday week containing the reference time.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	WeekStatsResponse
//	@Failure		400	{object}	WeekStatsResponse
//	@Failure		500	{object}	WeekStatsResponse
//	@Param			time	query	string	false	"Reference time as RFC3339 timestamp or YYYY-MM-DD date. Defaults to now."
//	@Param			ledger	query	string	false	"Filter by ledger ID"
//	@Router			/v1/stats/week [get]
func GetWeekStats(c *gin.Context) {
	defer observeStats("week", time.Now())

	var filter StatsFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, WeekStatsResponse{
			Error: &s,
		})
		return
	}

	reference, err := parseReferenceTime(filter.Time)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WeekStatsResponse{
			Error: &s,
		})
		return
	}

	week := types.WeekOf(reference)

	records, err := models.RecordsInRange(models.DB, models.KindExpense, filter.LedgerID.UUID, week.Start, week.End)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeekStatsResponse{
			Error: &s,
		})
		return
	}

	categories := aggregate.WeekCategories(week, records)

	c.JSON(http.StatusOK, WeekStatsResponse{
		Data: &WeekStats{
			From:       week.Start,
			Until:      week.End,
			Categories: categories,
			Total:      decimalSum(categories),
		},
	})
}

// GetMonthSummaries returns the rolling monthly summaries
//
//	@Summary		Monthly summaries
//	@Description	Returns income, expense and net totals for the window of months ending at the given month, ascending. Months whose data cannot be read report zero totals.
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	MonthSummaryListResponse
//	@Failure		400	{object}	MonthSummaryListResponse
//	@Failure		500	{object}	MonthSummaryListResponse
//	@Param			month	query	string	true	"The last month of the window in YYYY-MM format"
//	@Param			window	query	int		false	"Number of months in the window. Defaults to 3."
//	@Param			ledger	query	string	false	"Filter by ledger ID"
//	@Router			/v1/stats/months [get]
func GetMonthSummaries(c *gin.Context) {
	defer observeStats("months", time.Now())

	var filter StatsFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, MonthSummaryListResponse{
			Error: &s,
		})
		return
	}

	if filter.Month == "" {
		s := errMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, MonthSummaryListResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(filter.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthSummaryListResponse{
			Error: &s,
		})
		return
	}

	window := 3
	if filter.Window != "" {
		window, err = strconv.Atoi(filter.Window)
		if err != nil {
			s := errWindowNotANumber.Error()
			c.JSON(http.StatusBadRequest, MonthSummaryListResponse{
				Error: &s,
			})
			return
		}
	}

	source := models.Store{LedgerID: filter.LedgerID.UUID}

	summaries, err := aggregate.RollingSummary(c.Request.Context(), source, month, window)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthSummaryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]MonthSummary, 0, len(summaries))
	for _, summary := range summaries {
		data = append(data, MonthSummary{
			MonthlySummary: summary,
			Net:            summary.Net(),
		})
	}

	c.JSON(http.StatusOK, MonthSummaryListResponse{Data: data})
}

// decimalSum adds up category totals.
func decimalSum(categories []aggregate.CategoryTotal) decimal.Decimal {
	total := decimal.Zero

	for _, category := range categories {
		total = total.Add(category.Total)
	}

	return total
}
