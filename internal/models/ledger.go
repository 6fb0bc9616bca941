package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Ledger entry directions
const (
	DirDebit  = "debit"
	DirCredit = "credit"
)

// Ledger event types
const (
	EventRecharge   = "recharge"
	EventWithdrawal = "withdrawal"
	EventTopup      = "topup"
	EventAdjustment = "adjustment"
)

// LedgerEntryDB is an immutable journal row. Entries are appended in the
// same transaction as the wallet mutation they describe and are never
// updated or deleted.
type LedgerEntryDB struct {
	EntryID     uuid.UUID       `json:"entry_id" db:"entry_id"`
	WalletID    uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	Direction   string          `json:"direction" db:"direction"`
	AmountMinor int64           `json:"amount_minor" db:"amount_minor"`
	EventType   string          `json:"event_type" db:"event_type"`
	EventID     uuid.UUID       `json:"event_id" db:"event_id"`
	Meta        json.RawMessage `json:"meta" db:"meta"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
