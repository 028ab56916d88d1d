package v1

import (
	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/types"
	ez_uuid "github.com/scastellanosl/coinary-backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name     string          `json:"name" example:"Emergency fund" default:""`                // Name of the goal
	Note     string          `json:"note" example:"Three months of expenses" default:""`      // A note
	Amount   decimal.Decimal `json:"amount" example:"5000000" minimum:"0.00000001"`           // The target amount
	Month    types.Month     `json:"month" example:"2026-12-01T00:00:00Z"`                    // The month the goal should be reached in
	LedgerID uuid.UUID       `json:"ledgerId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the ledger
	Archived bool            `json:"archived" example:"false" default:"false"`                // Is the goal archived?
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:     editable.Name,
		Note:     editable.Note,
		Amount:   editable.Amount,
		Month:    editable.Month,
		LedgerID: editable.LedgerID,
		Archived: editable.Archived,
	}
}

// Goal is the API representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
}

func newGoal(model models.Goal) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:     model.Name,
			Note:     model.Note,
			Amount:   model.Amount,
			Month:    model.Month,
			LedgerID: model.LedgerID,
			Archived: model.Archived,
		},
	}
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The Goal data, if creation was successful
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created Goals
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalQueryFilter struct {
	Name     string       `form:"name" filterField:"false"`   // By name
	Note     string       `form:"note" filterField:"false"`   // By note
	Search   string       `form:"search" filterField:"false"` // By string in name or note
	LedgerID ez_uuid.UUID `form:"ledger"`                     // By ledger ID
	Month    string       `form:"month" filterField:"false"`  // By month
	Archived bool         `form:"archived"`                   // Is the goal archived?
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first Goal returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		LedgerID: f.LedgerID.UUID,
		Archived: f.Archived,
	}
}
