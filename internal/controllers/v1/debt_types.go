package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/models"
	ez_uuid "github.com/scastellanosl/coinary-backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type DebtEditable struct {
	Name         string          `json:"name" example:"Loan from Ana" default:""`                 // Name of the debt
	Note         string          `json:"note" example:"Pay back after the holidays" default:""`   // A note
	Counterparty string          `json:"counterparty" example:"Ana" default:""`                   // Who owes or is owed
	Amount       decimal.Decimal `json:"amount" example:"150000" minimum:"0.00000001"`            // The outstanding amount
	DueDate      *time.Time      `json:"dueDate" example:"2026-10-15T00:00:00Z"`                  // When the debt is due
	LedgerID     uuid.UUID       `json:"ledgerId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the ledger
	Settled      bool            `json:"settled" example:"false" default:"false"`                 // Is the debt settled?
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:         editable.Name,
		Note:         editable.Note,
		Counterparty: editable.Counterparty,
		Amount:       editable.Amount,
		DueDate:      editable.DueDate,
		LedgerID:     editable.LedgerID,
		Settled:      editable.Settled,
	}
}

// Debt is the API representation of a Debt.
type Debt struct {
	models.DefaultModel
	DebtEditable
}

func newDebt(model models.Debt) Debt {
	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Name:         model.Name,
			Note:         model.Note,
			Counterparty: model.Counterparty,
			Amount:       model.Amount,
			DueDate:      model.DueDate,
			LedgerID:     model.LedgerID,
			Settled:      model.Settled,
		},
	}
}

type DebtResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this debt
	Data  *Debt   `json:"data"`                                                          // The Debt data, if creation was successful
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DebtResponse `json:"data"`                                                          // List of created Debts
}

func (t *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, DebtResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtQueryFilter struct {
	Name         string       `form:"name" filterField:"false"`    // By name
	Note         string       `form:"note" filterField:"false"`    // By note
	Search       string       `form:"search" filterField:"false"`  // By string in name or note
	Counterparty string       `form:"counterparty"`                // By who owes or is owed
	LedgerID     ez_uuid.UUID `form:"ledger"`                      // By ledger ID
	DueBefore    time.Time    `form:"dueBefore" filterField:"false"` // Debts due before this date
	Settled      bool         `form:"settled"`                     // Is the debt settled?
	Offset       uint         `form:"offset" filterField:"false"`  // The offset of the first Debt returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`   // Maximum number of Debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		Counterparty: f.Counterparty,
		LedgerID:     f.LedgerID.UUID,
		Settled:      f.Settled,
	}
}
