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

func (suite *TestSuiteStandard) TestExport() {
	ledger := suite.createTestLedger(models.Ledger{})

	suite.income(ledger, time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC), 1000000, "Salary")
	suite.expense(ledger, time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC), 400000, "Rent")
	suite.expense(ledger, time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC), 600000, "Rent")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.False(suite.T(), response.Data.GeneratedAt.IsZero())
	assert.Len(suite.T(), response.Data.Incomes, 1)
	assert.Len(suite.T(), response.Data.Expenses, 2)

	if !assert.Len(suite.T(), response.Data.ExpenseCategories, 1) {
		return
	}
	assert.Equal(suite.T(), "Rent", response.Data.ExpenseCategories[0].Category)
	assert.True(suite.T(), response.Data.ExpenseCategories[0].Total.Equal(decimal.NewFromInt(1000000)))
}

func (suite *TestSuiteStandard) TestExportLedgerFilter() {
	first := suite.createTestLedger(models.Ledger{Name: "First"})
	second := suite.createTestLedger(models.Ledger{Name: "Second"})

	suite.expense(first, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), 1000, "Food")
	suite.expense(second, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), 2000, "Food")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/export?ledger="+first.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.Expenses, 1)
}
