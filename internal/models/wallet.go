package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet owner types
const (
	OwnerAgent = "agent"
	OwnerPool  = "pool"
)

// Asset codes held in wallets. Cash is denominated in PHP centavos,
// diamonds are their own minor unit.
const (
	AssetCash     = "PHP_CENTS"
	AssetDiamonds = "DIAMONDS"
)

// WalletDB represents a wallet row in the database.
// available/reserved are minor units and never go negative.
type WalletDB struct {
	WalletID       uuid.UUID `json:"wallet_id" db:"wallet_id"`
	OwnerType      string    `json:"owner_type" db:"owner_type"`
	OwnerID        uuid.UUID `json:"owner_id" db:"owner_id"`
	Asset          string    `json:"asset" db:"asset"`
	AvailableMinor int64     `json:"available_minor" db:"available_minor"`
	ReservedMinor  int64     `json:"reserved_minor" db:"reserved_minor"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
