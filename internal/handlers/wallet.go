package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avelora/gw-agent-economy/internal/jwt"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
	"github.com/avelora/gw-agent-economy/internal/services"
)

// WalletTokener defines only the methods needed by the wallet handlers.
type WalletTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletOperator defines the interface that the wallet service must implement.
type WalletOperator interface {
	Ensure(ctx context.Context, ownerType string, ownerID uuid.UUID, asset string) (*models.WalletDB, error)
	Summary(ctx context.Context, ownerType string, ownerID uuid.UUID) ([]models.WalletDB, error)
	Ledger(ctx context.Context, agentID, walletID uuid.UUID, limit int) ([]models.LedgerEntryDB, error)
	Topup(ctx context.Context, actorID, agentID uuid.UUID, amountMinor int64, reference string) (*models.WalletDB, error)
}

// EnsureWalletRequest represents the JSON body for wallet creation
// swagger:model EnsureWalletRequest
type EnsureWalletRequest struct {
	// Asset code of the wallet
	// required: true
	// default: PHP_CENTS
	Asset string `json:"asset"`
}

// TopupRequest represents the JSON body for funding the agent cash wallet
// swagger:model TopupRequest
type TopupRequest struct {
	// Amount in minor units
	// required: true
	// default: 560000
	AmountMinor int64 `json:"amount_minor"`

	// External payment reference
	Reference string `json:"reference"`
}

// WalletResponse represents a single wallet
// swagger:model WalletResponse
type WalletResponse struct {
	Message string          `json:"message,omitempty"`
	Wallet  models.WalletDB `json:"wallet"`
}

// WalletSummaryResponse represents all wallets of the agent
// swagger:model WalletSummaryResponse
type WalletSummaryResponse struct {
	Wallets []models.WalletDB `json:"wallets"`
}

// LedgerResponse represents a page of journal entries
// swagger:model LedgerResponse
type LedgerResponse struct {
	Entries []models.LedgerEntryDB `json:"entries"`
}

// WalletErrorResponse represents an error response for wallet operations
// swagger:model WalletErrorResponse
type WalletErrorResponse struct {
	// Error message
	// default: Wallet not found
	Error string `json:"error"`
}

// NewEnsureWalletHandler returns an HTTP handler that idempotently creates a wallet.
// @Summary Ensure wallet
// @Description Create the agent's wallet for an asset if it does not exist yet. Safe to call repeatedly.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.EnsureWalletRequest true "Ensure Wallet Request"
// @Success 200 {object} handlers.WalletResponse
// @Failure 400 {object} handlers.WalletErrorResponse "Invalid asset"
// @Failure 401 {object} handlers.WalletErrorResponse "Unauthorized"
// @Router /wallet/ensure [post]
// @Security BearerAuth
func NewEnsureWalletHandler(
	svc WalletOperator,
	tokenGetter WalletTokener,
) http.HandlerFunc {
	validAssets := map[string]struct{}{
		models.AssetCash:     {},
		models.AssetDiamonds: {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req EnsureWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode ensure wallet request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if _, ok := validAssets[req.Asset]; !ok {
			logger.Log.Warnw("invalid wallet asset", "asset", req.Asset)
			writeError(w, http.StatusBadRequest, "Invalid asset")
			return
		}

		wallet, err := svc.Ensure(ctx, models.OwnerAgent, claims.UserID, req.Asset)
		if err != nil {
			logger.Log.Errorw("failed to ensure wallet", "agent_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletResponse{Wallet: *wallet})
	}
}

// NewWalletSummaryHandler returns an HTTP handler for the agent's balances.
// @Summary Wallet summary
// @Description Return all wallets of the authenticated agent with available and reserved balances.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletSummaryResponse
// @Failure 401 {object} handlers.WalletErrorResponse "Unauthorized"
// @Router /wallet [get]
// @Security BearerAuth
func NewWalletSummaryHandler(
	svc WalletOperator,
	tokenGetter WalletTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		wallets, err := svc.Summary(ctx, models.OwnerAgent, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet summary", "agent_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletSummaryResponse{Wallets: wallets})
	}
}

// NewWalletLedgerHandler returns an HTTP handler for a wallet's journal.
// @Summary Wallet ledger
// @Description Return the most recent journal entries of a wallet, newest first.
// @Tags wallet
// @Produce json
// @Param id path string true "Wallet ID"
// @Param limit query int false "Page size, default 50"
// @Success 200 {object} handlers.LedgerResponse
// @Failure 401 {object} handlers.WalletErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WalletErrorResponse "Wallet not found"
// @Router /wallet/{id}/ledger [get]
// @Security BearerAuth
func NewWalletLedgerHandler(
	svc WalletOperator,
	tokenGetter WalletTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		walletID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid wallet id")
			return
		}

		limit := parseLimit(r.URL.Query().Get("limit"))

		entries, err := svc.Ledger(ctx, claims.UserID, walletID, limit)
		if err != nil {
			logger.Log.Errorw("failed to get wallet ledger",
				"agent_id", claims.UserID, "wallet_id", walletID, "error", err)
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "Wallet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LedgerResponse{Entries: entries})
	}
}

// NewTopupHandler returns an HTTP handler that funds the agent cash wallet.
// @Summary Top up cash wallet
// @Description Credit the agent cash wallet with captured funds and record a topup journal entry.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TopupRequest true "Topup Request"
// @Success 200 {object} handlers.WalletResponse "Wallet topped up"
// @Failure 400 {object} handlers.WalletErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.WalletErrorResponse "Unauthorized"
// @Router /wallet/topup [post]
// @Security BearerAuth
func NewTopupHandler(
	svc WalletOperator,
	tokenGetter WalletTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req TopupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode topup request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		wallet, err := svc.Topup(ctx, claims.UserID, claims.UserID, req.AmountMinor, req.Reference)
		if err != nil {
			logger.Log.Errorw("failed to top up wallet",
				"agent_id", claims.UserID, "amount_minor", req.AmountMinor, "error", err)
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, "Invalid amount")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletResponse{Message: "Account topped up successfully", Wallet: *wallet})
	}
}
