package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scastellanosl/coinary-backend/internal/aggregate"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	ez_uuid "github.com/scastellanosl/coinary-backend/internal/uuid"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

type ExportQueryFilter struct {
	LedgerID ez_uuid.UUID `form:"ledger"` // ID of the ledger. Unset exports all ledgers.
}

// Export is a full snapshot of the record history, meant for backup and
// for feeding external tools.
type Export struct {
	GeneratedAt       time.Time                 `json:"generatedAt" example:"2026-09-01T12:00:00Z"` // When the export was generated
	Incomes           []Record                  `json:"incomes"`                                    // All income records, ascending by date
	Expenses          []Record                  `json:"expenses"`                                   // All expense records, ascending by date
	IncomeCategories  []aggregate.CategoryTotal `json:"incomeCategories"`                           // All-time income totals per category
	ExpenseCategories []aggregate.CategoryTotal `json:"expenseCategories"`                          // All-time expense totals per category
}

type ExportResponse struct {
	Error *string `json:"error" example:"there is no ledger matching your query"` // The error, if any occurred
	Data  *Export `json:"data"`                                                   // The exported data
}

// OptionsExport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Export
//	@Success		204
//	@Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetExport returns the full record history
//
//	@Summary		Export records
//	@Description	Returns all records with their all-time category totals
//	@Tags			Export
//	@Produce		json
//	@Success		200	{object}	ExportResponse
//	@Failure		400	{object}	ExportResponse
//	@Failure		500	{object}	ExportResponse
//	@Param			ledger	query	string	false	"Filter by ledger ID"
//	@Router			/v1/export [get]
func GetExport(c *gin.Context) {
	var filter ExportQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, ExportResponse{
			Error: &s,
		})
		return
	}

	incomes, err := models.AllRecords(models.DB, models.KindIncome, filter.LedgerID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &s,
		})
		return
	}

	expenses, err := models.AllRecords(models.DB, models.KindExpense, filter.LedgerID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &s,
		})
		return
	}

	export := Export{
		GeneratedAt:       time.Now().In(time.UTC),
		Incomes:           make([]Record, 0, len(incomes)),
		Expenses:          make([]Record, 0, len(expenses)),
		IncomeCategories:  aggregate.TopCategories(incomes, 0),
		ExpenseCategories: aggregate.TopCategories(expenses, 0),
	}

	for _, record := range incomes {
		export.Incomes = append(export.Incomes, newRecord(record))
	}

	for _, record := range expenses {
		export.Expenses = append(export.Expenses, newRecord(record))
	}

	c.JSON(http.StatusOK, ExportResponse{Data: &export})
}
