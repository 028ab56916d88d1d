package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordKind discriminates incomes from expenses.
//
// The kind is decided once when the record is created, everything
// downstream only partitions on it and never inspects anything else.
//
// swagger:enum RecordKind
type RecordKind string

const (
	KindIncome  RecordKind = "INCOME"
	KindExpense RecordKind = "EXPENSE"
)

// Record is a single income or expense entry in a ledger.
type Record struct {
	DefaultModel
	Ledger   Ledger          `json:"-"`
	LedgerID uuid.UUID       `gorm:"index"`
	Kind     RecordKind      `gorm:"index"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category string
	Note     string
	Date     time.Time // The economic date of the record, not the creation timestamp
}

// FallbackCategory is the bucket for records without a category.
const FallbackCategory = "Uncategorized"

// BeforeSave normalizes the record.
//
// The category falls back to FallbackCategory when blank so that
// aggregation never has to deal with empty labels, and the date is
// normalized to UTC, defaulting to now.
func (r *Record) BeforeSave(_ *gorm.DB) error {
	if r.Kind != KindIncome && r.Kind != KindExpense {
		return ErrRecordKindInvalid
	}

	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		r.Category = FallbackCategory
	}

	r.Note = strings.TrimSpace(r.Note)

	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	return nil
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Record)
	return r.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the record before
// committing an update to the database.
func (r *Record) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Record)
	if tx.Statement.Changed("LedgerID") {
		return r.checkIntegrity(tx, toSave)
	}

	return nil
}

func (r *Record) AfterSave(_ *gorm.DB) error {
	if r.Amount.IsNegative() {
		return ErrRecordAmountNegative
	}

	return nil
}

// checkIntegrity verifies that the referenced ledger exists
func (r *Record) checkIntegrity(tx *gorm.DB, toSave Record) error {
	return tx.First(&Ledger{}, toSave.LedgerID).Error
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (r *Record) AfterFind(tx *gorm.DB) error {
	_ = r.DefaultModel.AfterFind(tx)

	r.Date = r.Date.In(time.UTC)
	return nil
}

// RecordsForMonth returns all records of a kind whose date falls into the
// month, ordered by date.
//
// This is the fetch boundary for day bucketing: consumers that bucket by
// day-of-month rely on the result being restricted to exactly this month.
//
// A Nil ledgerID matches records of all ledgers.
func RecordsForMonth(db *gorm.DB, kind RecordKind, ledgerID uuid.UUID, month types.Month) ([]Record, error) {
	var records []Record

	err := db.
		Where(&Record{Kind: kind, LedgerID: ledgerID}).
		Where("datetime(records.date) >= datetime(?) AND datetime(records.date) < datetime(?)", time.Time(month), time.Time(month.AddDate(0, 1))).
		Order("datetime(records.date) ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// RecordsInRange returns all records of a kind with from <= date <= to,
// ordered by date. Both boundaries are inclusive.
func RecordsInRange(db *gorm.DB, kind RecordKind, ledgerID uuid.UUID, from, to time.Time) ([]Record, error) {
	var records []Record

	err := db.
		Where(&Record{Kind: kind, LedgerID: ledgerID}).
		Where("datetime(records.date) >= datetime(?) AND datetime(records.date) <= datetime(?)", from, to).
		Order("datetime(records.date) ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// AllRecords returns the full history of records of a kind, ordered by date.
// Used for building full-history reports.
func AllRecords(db *gorm.DB, kind RecordKind, ledgerID uuid.UUID) ([]Record, error) {
	var records []Record

	err := db.
		Where(&Record{Kind: kind, LedgerID: ledgerID}).
		Order("datetime(records.date) ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
