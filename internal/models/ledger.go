package models

import (
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Ledger is the highest level of organization in Coinary, all other
// resources reference it directly.
//
// Amounts within a ledger are denominated in the smallest unit of its
// currency, there is no conversion between ledgers.
type Ledger struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 code
	Archived bool
}

// BeforeSave trims whitespace and normalizes the currency code.
//
// The default currency is COP since that is what the mobile app ships with.
func (l *Ledger) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)
	l.Note = strings.TrimSpace(l.Note)
	l.Currency = strings.ToUpper(strings.TrimSpace(l.Currency))

	if l.Name == "" {
		return ErrLedgerNameEmpty
	}

	if l.Currency == "" {
		l.Currency = "COP"
	}

	if _, err := currency.ParseISO(l.Currency); err != nil {
		return ErrLedgerCurrencyInvalid
	}

	return nil
}
