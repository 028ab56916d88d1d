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

func (suite *TestSuiteStandard) TestRecordsCreate() {
	ledger := suite.createTestLedger(models.Ledger{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/records", []v1.RecordEditable{
		{
			Kind:     models.KindExpense,
			Amount:   decimal.NewFromInt(30000),
			Category: "Food",
			LedgerID: ledger.ID,
			Date:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.RecordCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Food", response.Data[0].Data.Category)
	assert.True(suite.T(), response.Data[0].Data.Amount.Equal(decimal.NewFromInt(30000)))
}

func (suite *TestSuiteStandard) TestRecordsCreateCategoryFallback() {
	ledger := suite.createTestLedger(models.Ledger{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/records", []v1.RecordEditable{
		{
			Kind:     models.KindExpense,
			Amount:   decimal.NewFromInt(1000),
			LedgerID: ledger.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.RecordCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), models.FallbackCategory, response.Data[0].Data.Category)
}

func (suite *TestSuiteStandard) TestRecordsCreateKindInvalid() {
	ledger := suite.createTestLedger(models.Ledger{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/records", []v1.RecordEditable{
		{
			Kind:     "TRANSFER",
			Amount:   decimal.NewFromInt(1000),
			LedgerID: ledger.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestRecordsGetFilterKind() {
	ledger := suite.createTestLedger(models.Ledger{})
	date := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	suite.expense(ledger, date, 30000, "Food")
	suite.expense(ledger, date, 12000, "Transport")
	suite.income(ledger, date, 1500000, "Salary")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/records?kind=EXPENSE", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.RecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records?kind=INCOME", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records?kind=TRANSFER", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestRecordsGetFilterDate() {
	ledger := suite.createTestLedger(models.Ledger{})

	suite.expense(ledger, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), 1000, "")
	suite.expense(ledger, time.Date(2026, 9, 1, 22, 0, 0, 0, time.UTC), 2000, "")
	suite.expense(ledger, time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC), 3000, "")

	var response v1.RecordListResponse

	// The date filter matches the whole day
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/records?date=2026-09-01T15:00:00Z", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records?fromDate=2026-09-02T00:00:00Z", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records?untilDate=2026-09-01T00:00:00Z", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestRecordsGetFilterAmount() {
	ledger := suite.createTestLedger(models.Ledger{})
	date := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	suite.expense(ledger, date, 1000, "")
	suite.expense(ledger, date, 2000, "")
	suite.expense(ledger, date, 3000, "")

	var response v1.RecordListResponse

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/records?amount=2000", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records?amountLessOrEqual=2000", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records?amountMoreOrEqual=2000", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestRecordUpdate() {
	ledger := suite.createTestLedger(models.Ledger{})
	record := suite.expense(ledger, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), 1000, "Food")

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/records/"+record.ID.String(), map[string]any{
		"category": "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var reloaded models.Record
	assert.Nil(suite.T(), models.DB.First(&reloaded, "id = ?", record.ID).Error)
	assert.Equal(suite.T(), "Groceries", reloaded.Category)
}

func (suite *TestSuiteStandard) TestRecordDelete() {
	ledger := suite.createTestLedger(models.Ledger{})
	record := suite.expense(ledger, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), 1000, "Food")

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/records/"+record.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/records/"+record.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
