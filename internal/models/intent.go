package models

import (
	"time"

	"github.com/google/uuid"
)

// Recharge intent statuses
const (
	RechargeProcessing = "processing"
	RechargeCompleted  = "completed"
	RechargeFailed     = "failed"
)

// Withdrawal intent statuses
const (
	WithdrawalProcessing = "processing"
	WithdrawalSuccessful = "successful"
	WithdrawalCancelled  = "cancelled"
	WithdrawalFailed     = "failed"
)

// RechargeIntentDB is one in-flight or terminal recharge operation:
// agent cash down, player coins up.
type RechargeIntentDB struct {
	IntentID       uuid.UUID `json:"intent_id" db:"intent_id"`
	AgentID        uuid.UUID `json:"agent_id" db:"agent_id"`
	RemoteUserID   string    `json:"remote_user_id" db:"remote_user_id"`
	CoinsAmount    int64     `json:"coins_amount" db:"coins_amount"`
	CostMinor      int64     `json:"cost_minor" db:"cost_minor"`
	Currency       string    `json:"currency" db:"currency"`
	Method         string    `json:"method" db:"method"`
	Reference      *string   `json:"reference,omitempty" db:"reference"`
	Status         string    `json:"status" db:"status"`
	IdempotencyKey uuid.UUID `json:"idempotency_key" db:"idempotency_key"`
	FailureReason  *string   `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// WithdrawalIntentDB is one in-flight or terminal withdrawal operation:
// player diamonds down, agent payout out.
type WithdrawalIntentDB struct {
	IntentID       uuid.UUID  `json:"intent_id" db:"intent_id"`
	AgentID        uuid.UUID  `json:"agent_id" db:"agent_id"`
	WalletID       uuid.UUID  `json:"wallet_id" db:"wallet_id"`
	RemoteUserID   string     `json:"remote_user_id" db:"remote_user_id"`
	DiamondsAmount int64      `json:"diamonds_amount" db:"diamonds_amount"`
	PayoutMinor    int64      `json:"payout_minor" db:"payout_minor"`
	Currency       string     `json:"currency" db:"currency"`
	Status         string     `json:"status" db:"status"`
	IdempotencyKey uuid.UUID  `json:"idempotency_key" db:"idempotency_key"`
	RemoteTxnRef   *string    `json:"remote_txn_ref,omitempty" db:"remote_txn_ref"`
	ErrorPayload   *string    `json:"error_payload,omitempty" db:"error_payload"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty" db:"processed_at"`
}
