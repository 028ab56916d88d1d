package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/scastellanosl/coinary-backend/internal/types"
)

// DefaultFetchTimeout bounds a single month fetch so that a slow store
// cannot hang an aggregation indefinitely.
const DefaultFetchTimeout = 15 * time.Second

// Store adapts the database to the aggregate.Source interface.
//
// A Nil LedgerID matches records of all ledgers. A zero Timeout falls
// back to DefaultFetchTimeout.
type Store struct {
	LedgerID uuid.UUID
	Timeout  time.Duration
}

// Records returns all records of the kind within the month.
func (s Store) Records(ctx context.Context, kind RecordKind, month types.Month) ([]Record, error) {
	timeout := s.Timeout
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return RecordsForMonth(DB.WithContext(ctx), kind, s.LedgerID, month)
}
