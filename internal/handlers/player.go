package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/jwt"
	"github.com/avelora/gw-agent-economy/internal/logger"
)

// PlayerTokener defines only the methods needed by the player handler.
type PlayerTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PlayerLookuper defines the interface that the economy facade must implement.
type PlayerLookuper interface {
	GetUserBasic(ctx context.Context, remoteUserID string) (*facades.RemoteUserBasic, error)
}

// PlayerResponse represents a player lookup result
// swagger:model PlayerResponse
type PlayerResponse struct {
	RemoteUserID string `json:"remote_user_id"`
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
}

// PlayerErrorResponse represents an error response for player lookup
// swagger:model PlayerErrorResponse
type PlayerErrorResponse struct {
	// Error message
	// default: Player not found
	Error string `json:"error"`
}

// NewPlayerLookupHandler returns an HTTP handler that resolves a player account.
// Agents use this to confirm the target identity before moving money.
// @Summary Look up player
// @Description Return the display name of a player account in the game economy.
// @Tags players
// @Produce json
// @Param remoteUserId path string true "Player account id"
// @Success 200 {object} handlers.PlayerResponse
// @Failure 400 {object} handlers.PlayerErrorResponse "Invalid player id"
// @Failure 401 {object} handlers.PlayerErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.PlayerErrorResponse "Player not found"
// @Router /players/{remoteUserId} [get]
// @Security BearerAuth
func NewPlayerLookupHandler(
	bridge PlayerLookuper,
	tokenGetter PlayerTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := authorize(ctx, w, r, tokenGetter); !ok {
			return
		}

		remoteUserID := chi.URLParam(r, "remoteUserId")

		user, err := bridge.GetUserBasic(ctx, remoteUserID)
		if err != nil {
			logger.Log.Errorw("player lookup failed", "remote_user_id", remoteUserID, "error", err)
			switch {
			case errors.Is(err, facades.ErrInvalidRemoteUserID):
				writeError(w, http.StatusBadRequest, "Invalid player id")
			case errors.Is(err, facades.ErrRemoteUserNotFound):
				writeError(w, http.StatusNotFound, "Player not found")
			default:
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlayerResponse{
			RemoteUserID: remoteUserID,
			FullName:     user.FullName,
			Username:     user.Username,
		})
	}
}
