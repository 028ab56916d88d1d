package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/scastellanosl/coinary-backend/internal/controllers/v1"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestStatsDays() {
	ledger := suite.createTestLedger(models.Ledger{})

	// Two records on the first, one on the fifteenth
	suite.expense(ledger, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), 10000, "Food")
	suite.expense(ledger, time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC), 5000, "Transport")
	suite.expense(ledger, time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC), 20000, "Food")

	// Outside the month
	suite.expense(ledger, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), 99999, "Food")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/days?month=2026-09", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.DayStatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data.Days, 2) {
		return
	}

	// Ascending by day, same-day records merged
	assert.Equal(suite.T(), 1, response.Data.Days[0].Day)
	assert.True(suite.T(), response.Data.Days[0].Total.Equal(decimal.NewFromInt(15000)))
	assert.Equal(suite.T(), 15, response.Data.Days[1].Day)
	assert.True(suite.T(), response.Data.Days[1].Total.Equal(decimal.NewFromInt(20000)))

	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(35000)))
}

func (suite *TestSuiteStandard) TestStatsDaysMonthRequired() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/days", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestStatsDaysKindInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/days?month=2026-09&kind=TRANSFER", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestStatsCategories() {
	ledger := suite.createTestLedger(models.Ledger{})
	date := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	suite.expense(ledger, date, 30000, "Food")
	suite.expense(ledger, date, 10000, "Food")
	suite.expense(ledger, date, 25000, "Transport")
	suite.expense(ledger, date, 5000, "")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/categories?month=2026-09", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryStatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data.Categories, 3) {
		return
	}

	// Largest first
	assert.Equal(suite.T(), "Food", response.Data.Categories[0].Category)
	assert.True(suite.T(), response.Data.Categories[0].Total.Equal(decimal.NewFromInt(40000)))
	assert.Equal(suite.T(), "Transport", response.Data.Categories[1].Category)
	assert.Equal(suite.T(), models.FallbackCategory, response.Data.Categories[2].Category)

	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(70000)))
}

func (suite *TestSuiteStandard) TestStatsCategoriesTop() {
	ledger := suite.createTestLedger(models.Ledger{})
	date := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	suite.expense(ledger, date, 30000, "Food")
	suite.expense(ledger, date, 25000, "Transport")
	suite.expense(ledger, date, 5000, "Pets")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/categories?month=2026-09&top=2", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryStatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data.Categories, 2) {
		return
	}
	assert.Equal(suite.T(), "Food", response.Data.Categories[0].Category)
	assert.Equal(suite.T(), "Transport", response.Data.Categories[1].Category)

	// Total only covers the returned categories
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(55000)))
}

func (suite *TestSuiteStandard) TestStatsCategoriesGlob() {
	ledger := suite.createTestLedger(models.Ledger{})
	date := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	suite.expense(ledger, date, 30000, "Food out")
	suite.expense(ledger, date, 20000, "Food in")
	suite.expense(ledger, date, 25000, "Transport")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/categories?month=2026-09&category=Food*", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategoryStatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data.Categories, 2)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(50000)))
}

func (suite *TestSuiteStandard) TestStatsWeek() {
	ledger := suite.createTestLedger(models.Ledger{})

	// 2026-09-02 is a Wednesday, so the week runs Monday 2026-08-31
	// through Sunday 2026-09-06
	suite.expense(ledger, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), 30000, "Food")
	suite.expense(ledger, time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), 20000, "Transport")
	suite.expense(ledger, time.Date(2026, 9, 6, 23, 59, 59, 0, time.UTC), 10000, "Food")

	// The Sunday before the window
	suite.expense(ledger, time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC), 99999, "Food")

	// Incomes never show up in the weekly stats
	suite.income(ledger, time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), 1500000, "Salary")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/week?time=2026-09-02", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.WeekStatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), response.Data.From)

	if !assert.Len(suite.T(), response.Data.Categories, 2) {
		return
	}
	assert.Equal(suite.T(), "Food", response.Data.Categories[0].Category)
	assert.True(suite.T(), response.Data.Categories[0].Total.Equal(decimal.NewFromInt(40000)))
	assert.Equal(suite.T(), "Transport", response.Data.Categories[1].Category)

	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(60000)))
}

func (suite *TestSuiteStandard) TestStatsWeekTimeInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/week?time=yesterday", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestStatsMonths() {
	ledger := suite.createTestLedger(models.Ledger{})

	suite.income(ledger, time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC), 1000000, "Salary")
	suite.expense(ledger, time.Date(2026, 7, 20, 12, 0, 0, 0, time.UTC), 400000, "Rent")

	suite.income(ledger, time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC), 1100000, "Salary")
	suite.expense(ledger, time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC), 500000, "Rent")

	suite.income(ledger, time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC), 1200000, "Salary")
	suite.expense(ledger, time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC), 600000, "Rent")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/months?month=2026-09&window=3", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MonthSummaryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 3) {
		return
	}

	// Ascending, ending at the requested month
	assert.Equal(suite.T(), "2026-07", response.Data[0].Month.String())
	assert.Equal(suite.T(), "2026-08", response.Data[1].Month.String())
	assert.Equal(suite.T(), "2026-09", response.Data[2].Month.String())

	assert.True(suite.T(), response.Data[0].Income.Equal(decimal.NewFromInt(1000000)))
	assert.True(suite.T(), response.Data[0].Expense.Equal(decimal.NewFromInt(400000)))
	assert.True(suite.T(), response.Data[0].Net.Equal(decimal.NewFromInt(600000)))

	assert.True(suite.T(), response.Data[2].Net.Equal(decimal.NewFromInt(600000)))
}

func (suite *TestSuiteStandard) TestStatsMonthsEmptyMonth() {
	ledger := suite.createTestLedger(models.Ledger{})
	suite.income(ledger, time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC), 1000000, "Salary")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/months?month=2026-09&window=2", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MonthSummaryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 2) {
		return
	}

	// Months without records report zero totals
	assert.True(suite.T(), response.Data[0].Income.IsZero())
	assert.True(suite.T(), response.Data[0].Expense.IsZero())
	assert.True(suite.T(), response.Data[1].Income.Equal(decimal.NewFromInt(1000000)))
}

func (suite *TestSuiteStandard) TestStatsMonthsDefaultWindow() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/months?month=2026-09", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.MonthSummaryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 3)
}

func (suite *TestSuiteStandard) TestStatsMonthsWindowInvalid() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/months?month=2026-09&window=0", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/stats/months?month=2026-09&window=three", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestStatsMonthsMonthRequired() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/stats/months", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
