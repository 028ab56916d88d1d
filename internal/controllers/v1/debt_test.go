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

func (suite *TestSuiteStandard) createTestDebt(debt models.Debt) models.Debt {
	if debt.Name == "" {
		debt.Name = "Test debt"
	}

	if debt.Amount.IsZero() {
		debt.Amount = decimal.NewFromInt(150000)
	}

	err := models.DB.Create(&debt).Error
	if err != nil {
		suite.Assert().FailNow("Debt could not be saved", "Error: %s, Debt: %#v", err, debt)
	}

	return debt
}

func (suite *TestSuiteStandard) TestDebtsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/debts", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDebtsCreate() {
	ledger := suite.createTestLedger(models.Ledger{})
	due := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/debts", []v1.DebtEditable{
		{
			Name:         "Loan from Ana",
			Counterparty: " Ana ",
			Amount:       decimal.NewFromInt(150000),
			DueDate:      &due,
			LedgerID:     ledger.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response v1.DebtCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}
	assert.Equal(suite.T(), "Ana", response.Data[0].Data.Counterparty)
}

func (suite *TestSuiteStandard) TestDebtsCreateInvalid() {
	ledger := suite.createTestLedger(models.Ledger{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/debts", []v1.DebtEditable{
		{Name: "No amount", LedgerID: ledger.ID},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestDebtsGetFilter() {
	ledger := suite.createTestLedger(models.Ledger{})
	early := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestDebt(models.Debt{Name: "Lunch money", Counterparty: "Ana", DueDate: &early, LedgerID: ledger.ID})
	suite.createTestDebt(models.Debt{Name: "Concert tickets", Counterparty: "Luis", DueDate: &late, LedgerID: ledger.ID, Settled: true})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/debts", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	if assert.Len(suite.T(), response.Data, 2) {
		// Ascending by due date
		assert.Equal(suite.T(), "Lunch money", response.Data[0].Name)
	}

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/debts?counterparty=Ana", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/debts?settled=true", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/debts?dueBefore=2026-10-01T00:00:00Z", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), "Lunch money", response.Data[0].Name)
	}
}

func (suite *TestSuiteStandard) TestDebtGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/debts/4e743e94-6a4b-44d6-aba5-d77c87103ff7", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestDebtUpdate() {
	ledger := suite.createTestLedger(models.Ledger{})
	debt := suite.createTestDebt(models.Debt{LedgerID: ledger.ID})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/debts/"+debt.ID.String(), map[string]any{
		"settled": true,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var reloaded models.Debt
	suite.Require().Nil(models.DB.First(&reloaded, debt.ID).Error)
	assert.True(suite.T(), reloaded.Settled)
}

func (suite *TestSuiteStandard) TestDebtDelete() {
	ledger := suite.createTestLedger(models.Ledger{})
	debt := suite.createTestDebt(models.Debt{LedgerID: ledger.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/debts/"+debt.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/debts/"+debt.ID.String(), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
