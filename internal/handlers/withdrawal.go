package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/jwt"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
	"github.com/avelora/gw-agent-economy/internal/services"
)

// WithdrawalTokener defines only the methods needed by the withdrawal handlers.
type WithdrawalTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WithdrawalExecutor defines the interface that the withdrawal service must implement.
type WithdrawalExecutor interface {
	Execute(ctx context.Context, p services.WithdrawalParams) (*models.WithdrawalIntentDB, error)
	Cancel(ctx context.Context, actorID, agentID, intentID uuid.UUID) (*models.WithdrawalIntentDB, error)
	List(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.WithdrawalIntentDB, error)
}

// WithdrawalRequest represents the JSON body for creating a withdrawal
// swagger:model WithdrawalRequest
type WithdrawalRequest struct {
	// Player account id in the game economy
	// required: true
	RemoteUserID string `json:"remote_user_id"`

	// Diamonds to debit from the player
	// required: true
	// default: 112000
	DiamondsAmount int64 `json:"diamonds_amount"`

	// Idempotency key; reusing a key replays the stored outcome.
	// Generated server side when omitted.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// WithdrawalResponse represents a withdrawal outcome
// swagger:model WithdrawalResponse
type WithdrawalResponse struct {
	Message string                    `json:"message"`
	Intent  models.WithdrawalIntentDB `json:"intent"`
}

// WithdrawalListResponse represents a page of withdrawal intents
// swagger:model WithdrawalListResponse
type WithdrawalListResponse struct {
	Withdrawals []models.WithdrawalIntentDB `json:"withdrawals"`
}

// WithdrawalErrorResponse represents an error response for withdrawal operations
// swagger:model WithdrawalErrorResponse
type WithdrawalErrorResponse struct {
	// Error message
	// default: Below minimum withdrawal amount
	Error string `json:"error"`
}

// NewCreateWithdrawalHandler returns an HTTP handler that cashes out player diamonds.
// @Summary Create withdrawal
// @Description Debit diamonds from the player account and pay out cash from the agent wallet. Idempotent by idempotency_key.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawalRequest true "Withdrawal Request"
// @Success 200 {object} handlers.WithdrawalResponse "Withdrawal successful"
// @Failure 400 {object} handlers.WithdrawalErrorResponse "Invalid request"
// @Failure 401 {object} handlers.WithdrawalErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WithdrawalErrorResponse "Player not found"
// @Failure 409 {object} handlers.WithdrawalErrorResponse "Operation in flight"
// @Failure 422 {object} handlers.WithdrawalErrorResponse "Business rule failed"
// @Router /withdrawals [post]
// @Security BearerAuth
func NewCreateWithdrawalHandler(
	svc WithdrawalExecutor,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdrawal request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		key := uuid.New()
		if req.IdempotencyKey != "" {
			var err error
			if key, err = uuid.Parse(req.IdempotencyKey); err != nil {
				logger.Log.Warnw("invalid idempotency key", "key", req.IdempotencyKey)
				writeError(w, http.StatusBadRequest, "Invalid idempotency key")
				return
			}
		}

		intent, err := svc.Execute(ctx, services.WithdrawalParams{
			ActorID:        claims.UserID,
			AgentID:        claims.UserID,
			RemoteUserID:   req.RemoteUserID,
			DiamondsAmount: req.DiamondsAmount,
			IdempotencyKey: key,
		})
		if err != nil {
			logger.Log.Errorw("withdrawal failed",
				"agent_id", claims.UserID, "remote_user_id", req.RemoteUserID, "error", err)
			status, msg := withdrawalErrorStatus(err)
			if intent != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(WithdrawalResponse{Message: msg, Intent: *intent})
				return
			}
			writeError(w, status, msg)
			return
		}

		message := "Withdrawal successful"
		if intent.Status != models.WithdrawalSuccessful {
			message = "Withdrawal " + intent.Status
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawalResponse{Message: message, Intent: *intent})
	}
}

// NewCancelWithdrawalHandler returns an HTTP handler that cancels a processing withdrawal.
// @Summary Cancel withdrawal
// @Description Cancel a withdrawal that has not applied remotely yet and release the reserved payout.
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal intent ID"
// @Success 200 {object} handlers.WithdrawalResponse "Withdrawal cancelled"
// @Failure 401 {object} handlers.WithdrawalErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.WithdrawalErrorResponse "Withdrawal not found"
// @Failure 409 {object} handlers.WithdrawalErrorResponse "Not cancellable"
// @Router /withdrawals/{id} [delete]
// @Security BearerAuth
func NewCancelWithdrawalHandler(
	svc WithdrawalExecutor,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		intentID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid withdrawal id")
			return
		}

		intent, err := svc.Cancel(ctx, claims.UserID, claims.UserID, intentID)
		if err != nil {
			logger.Log.Errorw("withdrawal cancellation failed",
				"agent_id", claims.UserID, "intent_id", intentID, "error", err)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				writeError(w, http.StatusNotFound, "Withdrawal not found")
			case errors.Is(err, services.ErrNotCancellable):
				writeError(w, http.StatusConflict, "Withdrawal is not cancellable")
			default:
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawalResponse{Message: "Withdrawal cancelled", Intent: *intent})
	}
}

// NewListWithdrawalsHandler returns an HTTP handler that lists the agent's withdrawals.
// @Summary List withdrawals
// @Description List withdrawal intents of the authenticated agent, newest first.
// @Tags withdrawals
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size, default 50"
// @Success 200 {object} handlers.WithdrawalListResponse
// @Failure 401 {object} handlers.WithdrawalErrorResponse "Unauthorized"
// @Router /withdrawals [get]
// @Security BearerAuth
func NewListWithdrawalsHandler(
	svc WithdrawalExecutor,
	tokenGetter WithdrawalTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		status := r.URL.Query().Get("status")
		limit := parseLimit(r.URL.Query().Get("limit"))

		withdrawals, err := svc.List(ctx, claims.UserID, status, limit)
		if err != nil {
			logger.Log.Errorw("failed to list withdrawals", "agent_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawalListResponse{Withdrawals: withdrawals})
	}
}

func withdrawalErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity, "Invalid amount or player id"
	case errors.Is(err, facades.ErrInvalidRemoteUserID):
		return http.StatusBadRequest, "Invalid player id"
	case errors.Is(err, services.ErrPolicyViolation):
		return http.StatusUnprocessableEntity, "Withdrawal policy violated"
	case errors.Is(err, services.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "Insufficient funds"
	case errors.Is(err, facades.ErrInsufficientRemoteBalance):
		return http.StatusUnprocessableEntity, "Insufficient player balance"
	case errors.Is(err, facades.ErrRemoteUserNotFound):
		return http.StatusNotFound, "Player not found"
	case errors.Is(err, facades.ErrRemotePending):
		return http.StatusConflict, "Operation already in flight"
	case errors.Is(err, services.ErrRemoteFailed):
		return http.StatusUnprocessableEntity, "Withdrawal failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
