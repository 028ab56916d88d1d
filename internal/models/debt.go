package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is money owed to or by the user, tracked within a ledger.
type Debt struct {
	DefaultModel
	Ledger       Ledger          `json:"-"`
	LedgerID     uuid.UUID       `gorm:"index"`
	Name         string
	Note         string
	Counterparty string          // Who owes or is owed
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate      *time.Time
	Settled      bool
}

func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Debt)
	return d.checkIntegrity(tx, *toSave)
}

func (d *Debt) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Debt)
	if tx.Statement.Changed("LedgerID") {
		return d.checkIntegrity(tx, toSave)
	}

	return nil
}

func (d *Debt) checkIntegrity(tx *gorm.DB, toSave Debt) error {
	return tx.First(&Ledger{}, toSave.LedgerID).Error
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Note = strings.TrimSpace(d.Note)
	d.Counterparty = strings.TrimSpace(d.Counterparty)

	return nil
}

func (d *Debt) AfterSave(_ *gorm.DB) error {
	if !d.Amount.IsPositive() {
		return ErrDebtAmountNotPositive
	}

	return nil
}
