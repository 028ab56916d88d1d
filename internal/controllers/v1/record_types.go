package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/models"
	ez_uuid "github.com/scastellanosl/coinary-backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type RecordEditable struct {
	Date time.Time `json:"date" example:"2026-09-01T00:00:00Z"` // The economic date of the record. Defaults to the creation time.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"30000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount in the smallest unit of the ledger currency

	Kind     models.RecordKind `json:"kind" example:"EXPENSE"`                                     // INCOME or EXPENSE
	Category string            `json:"category" example:"Food" default:""`                         // Category label. Blank is stored as the fallback category.
	Note     string            `json:"note" example:"Lunch at the corner place" default:""`        // A note
	LedgerID uuid.UUID         `json:"ledgerId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`    // ID of the ledger
}

// model returns the database resource for the API representation of the
// editable fields
func (editable RecordEditable) model() models.Record {
	return models.Record{
		Date:     editable.Date,
		Amount:   editable.Amount,
		Kind:     editable.Kind,
		Category: editable.Category,
		Note:     editable.Note,
		LedgerID: editable.LedgerID,
	}
}

// Record is the API representation of a Record.
type Record struct {
	models.DefaultModel
	RecordEditable
}

func newRecord(model models.Record) Record {
	return Record{
		DefaultModel: model.DefaultModel,
		RecordEditable: RecordEditable{
			Date:     model.Date,
			Amount:   model.Amount,
			Kind:     model.Kind,
			Category: model.Category,
			Note:     model.Note,
			LedgerID: model.LedgerID,
		},
	}
}

type RecordResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this record
	Data  *Record `json:"data"`                                                          // The Record data, if creation was successful
}

type RecordListResponse struct {
	Data       []Record    `json:"data"`                                                          // List of records
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RecordCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecordResponse `json:"data"`                                                          // List of created Records
}

func (t *RecordCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, RecordResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecordQueryFilter struct {
	Kind              models.RecordKind `form:"kind"`                                  // INCOME or EXPENSE
	LedgerID          ez_uuid.UUID      `form:"ledger"`                                // ID of the ledger
	Category          string            `form:"category"`                              // Exact category label
	Note              string            `form:"note" filterField:"false"`              // Note contains this string
	Date              time.Time         `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time         `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time         `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount            decimal.Decimal   `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal   `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal   `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint              `form:"offset" filterField:"false"`            // The offset of the first Record returned. Defaults to 0.
	Limit             int               `form:"limit" filterField:"false"`             // Maximum number of Records to return. Defaults to 50.
}

func (f RecordQueryFilter) model() models.Record {
	return models.Record{
		Kind:     f.Kind,
		LedgerID: f.LedgerID.UUID,
		Category: f.Category,
		Amount:   f.Amount,
	}
}
