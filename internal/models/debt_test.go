package models_test

import (
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDebtTrimWhitespace() {
	ledger := suite.createTestLedger(models.Ledger{})

	debt := suite.createTestDebt(models.Debt{
		LedgerID:     ledger.ID,
		Name:         " Lunch money ",
		Note:         " Will pay back on Friday ",
		Counterparty: " Ana ",
		Amount:       decimal.NewFromInt(25000),
	})

	assert.Equal(suite.T(), "Lunch money", debt.Name)
	assert.Equal(suite.T(), "Will pay back on Friday", debt.Note)
	assert.Equal(suite.T(), "Ana", debt.Counterparty)
}

func (suite *TestSuiteStandard) TestDebtAmountNotPositive() {
	ledger := suite.createTestLedger(models.Ledger{})

	err := models.DB.Create(&models.Debt{
		LedgerID: ledger.ID,
		Name:     "Zero debt",
		Amount:   decimal.Zero,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrDebtAmountNotPositive)
}

func (suite *TestSuiteStandard) TestDebtLedgerMustExist() {
	err := models.DB.Create(&models.Debt{
		Name:   "Orphan debt",
		Amount: decimal.NewFromInt(1000),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
