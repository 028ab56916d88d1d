package v1

import (
	"github.com/scastellanosl/coinary-backend/internal/models"
)

type LedgerEditable struct {
	Name     string `json:"name" example:"Personal" default:""`           // Name of the ledger
	Note     string `json:"note" example:"My day-to-day money" default:""` // A longer description
	Currency string `json:"currency" example:"COP" default:"COP"`          // ISO 4217 currency code
	Archived bool   `json:"archived" example:"true" default:"false"`       // Is the ledger archived?
}

// model returns the database resource for the API representation of the
// editable fields
func (editable LedgerEditable) model() models.Ledger {
	return models.Ledger{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Archived: editable.Archived,
	}
}

// Ledger is the API representation of a Ledger.
type Ledger struct {
	models.DefaultModel
	LedgerEditable
}

func newLedger(model models.Ledger) Ledger {
	return Ledger{
		DefaultModel: model.DefaultModel,
		LedgerEditable: LedgerEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Archived: model.Archived,
		},
	}
}

type LedgerResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Ledger `json:"data"`                                                          // The Ledger data
}

type LedgerListResponse struct {
	Data       []Ledger    `json:"data"`                                                          // List of ledgers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type LedgerCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []LedgerResponse `json:"data"`                                                          // List of created Ledgers
}

func (l *LedgerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	l.Data = append(l.Data, LedgerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type LedgerQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Filter by name
	Note     string `form:"note" filterField:"false"`   // Filter by note
	Currency string `form:"currency"`                   // Filter by currency code
	Archived bool   `form:"archived"`                   // Is the ledger archived?
	Search   string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Ledger returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Ledgers to return. Defaults to 50.
}

func (f LedgerQueryFilter) model() models.Ledger {
	return models.Ledger{
		Currency: f.Currency,
		Archived: f.Archived,
	}
}
