package models_test

import (
	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var ledger models.Ledger
	err := models.DB.First(&ledger, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no ledger matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var ledger models.Ledger
	err := models.DB.First(&ledger, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/does/not/exist/database.db")
	assert.NotNil(suite.T(), err)

	// Reconnect so that TearDownTest has a database to close
	suite.SetupTest()
}
