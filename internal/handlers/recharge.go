package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/jwt"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/models"
	"github.com/avelora/gw-agent-economy/internal/services"
)

// RechargeTokener defines only the methods needed by the recharge handlers.
type RechargeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RechargeExecutor defines the interface that the recharge service must implement.
type RechargeExecutor interface {
	Execute(ctx context.Context, p services.RechargeParams) (*models.RechargeIntentDB, error)
	List(ctx context.Context, agentID uuid.UUID, status string, limit int) ([]models.RechargeIntentDB, error)
}

// RechargeRequest represents the JSON body for creating a recharge
// swagger:model RechargeRequest
type RechargeRequest struct {
	// Player account id in the game economy
	// required: true
	RemoteUserID string `json:"remote_user_id"`

	// Coins to credit to the player
	// required: true
	// default: 14000
	CoinsAmount int64 `json:"coins_amount"`

	// Client-computed cost in minor units, cross-checked server side
	CostMinor *int64 `json:"cost_minor,omitempty"`

	// Payment method label
	// default: wallet
	Method string `json:"method"`

	// Free-form external reference
	Reference *string `json:"reference,omitempty"`

	// Idempotency key; reusing a key replays the stored outcome.
	// Generated server side when omitted.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// RechargeResponse represents a recharge outcome
// swagger:model RechargeResponse
type RechargeResponse struct {
	Message string                  `json:"message"`
	Intent  models.RechargeIntentDB `json:"intent"`
}

// RechargeListResponse represents a page of recharge intents
// swagger:model RechargeListResponse
type RechargeListResponse struct {
	Recharges []models.RechargeIntentDB `json:"recharges"`
}

// RechargeErrorResponse represents an error response for recharge operations
// swagger:model RechargeErrorResponse
type RechargeErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// NewCreateRechargeHandler returns an HTTP handler that buys coins for a player.
// @Summary Create recharge
// @Description Debit the agent cash wallet and credit coins to the player account. Idempotent by idempotency_key.
// @Tags recharges
// @Accept json
// @Produce json
// @Param request body handlers.RechargeRequest true "Recharge Request"
// @Success 200 {object} handlers.RechargeResponse "Recharge completed"
// @Failure 400 {object} handlers.RechargeErrorResponse "Invalid request"
// @Failure 401 {object} handlers.RechargeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RechargeErrorResponse "Player not found"
// @Failure 409 {object} handlers.RechargeErrorResponse "Operation in flight"
// @Failure 422 {object} handlers.RechargeErrorResponse "Business rule failed"
// @Router /recharges [post]
// @Security BearerAuth
func NewCreateRechargeHandler(
	svc RechargeExecutor,
	tokenGetter RechargeTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req RechargeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode recharge request", "error", err)
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

		intent, err := svc.Execute(ctx, services.RechargeParams{
			ActorID:         claims.UserID,
			AgentID:         claims.UserID,
			RemoteUserID:    req.RemoteUserID,
			CoinsAmount:     req.CoinsAmount,
			ClientCostMinor: req.CostMinor,
			Method:          req.Method,
			Reference:       req.Reference,
			IdempotencyKey:  key,
		})
		if err != nil {
			logger.Log.Errorw("recharge failed",
				"agent_id", claims.UserID, "remote_user_id", req.RemoteUserID, "error", err)
			status, msg := rechargeErrorStatus(err)
			if intent != nil {
				// Terminal failure with a recorded intent: return the intent so
				// the caller can see the compensated state.
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(RechargeResponse{Message: msg, Intent: *intent})
				return
			}
			writeError(w, status, msg)
			return
		}

		message := "Recharge completed successfully"
		if intent.Status == models.RechargeFailed {
			message = "Recharge failed"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RechargeResponse{Message: message, Intent: *intent})
	}
}

// NewListRechargesHandler returns an HTTP handler that lists the agent's recharges.
// @Summary List recharges
// @Description List recharge intents of the authenticated agent, newest first.
// @Tags recharges
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size, default 50"
// @Success 200 {object} handlers.RechargeListResponse
// @Failure 401 {object} handlers.RechargeErrorResponse "Unauthorized"
// @Router /recharges [get]
// @Security BearerAuth
func NewListRechargesHandler(
	svc RechargeExecutor,
	tokenGetter RechargeTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		status := r.URL.Query().Get("status")
		limit := parseLimit(r.URL.Query().Get("limit"))

		recharges, err := svc.List(ctx, claims.UserID, status, limit)
		if err != nil {
			logger.Log.Errorw("failed to list recharges", "agent_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RechargeListResponse{Recharges: recharges})
	}
}

func rechargeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity, "Invalid amount or player id"
	case errors.Is(err, facades.ErrInvalidRemoteUserID):
		return http.StatusBadRequest, "Invalid player id"
	case errors.Is(err, services.ErrConversionMismatch):
		return http.StatusUnprocessableEntity, "Conversion mismatch"
	case errors.Is(err, services.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "Insufficient funds"
	case errors.Is(err, facades.ErrRemoteUserNotFound):
		return http.StatusNotFound, "Player not found"
	case errors.Is(err, facades.ErrRemotePending):
		return http.StatusConflict, "Operation already in flight"
	case errors.Is(err, services.ErrRemoteFailed):
		return http.StatusUnprocessableEntity, "Recharge failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

type tokenClaimsGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

func authorize(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter tokenClaimsGetter) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return claims, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 50
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 500 {
		return 50
	}
	return limit
}
