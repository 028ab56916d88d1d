package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors for individual models
var (
	ErrLedgerCurrencyInvalid   = errors.New("the currency must be a valid ISO 4217 code")
	ErrLedgerNameEmpty         = errors.New("the ledger name must be set")
	ErrRecordKindInvalid       = errors.New("the record kind must be INCOME or EXPENSE")
	ErrRecordAmountNegative    = errors.New("record amounts must not be negative")
	ErrGoalAmountNotPositive   = errors.New("goal amounts must be larger than zero")
	ErrDebtAmountNotPositive   = errors.New("debt amounts must be larger than zero")
	ErrReminderScheduleInvalid = errors.New("the reminder schedule must be a valid cron expression")
)
