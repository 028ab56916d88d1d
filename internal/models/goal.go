package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a saving target within a ledger.
type Goal struct {
	DefaultModel
	Ledger   Ledger          `json:"-"`
	LedgerID uuid.UUID       `gorm:"uniqueIndex:goal_name_ledger"`
	Name     string          `gorm:"uniqueIndex:goal_name_ledger"`
	Note     string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	Month    types.Month     // The month the goal should be reached
	Archived bool
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Goal)
	if tx.Statement.Changed("LedgerID") {
		return g.checkIntegrity(tx, toSave)
	}

	return nil
}

func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	return tx.First(&Ledger{}, toSave.LedgerID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}
