package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a session token to its user, failing for invalid,
// expired, or deactivated identities.
type Authenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// AuthMiddleware validates the session credential and stores the resolved
// user ID in the request context for downstream handlers.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUserIDToContext(ctx, user.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDKey is an unexported type for the user ID context key.
type userIDKey struct{}

// SetUserIDToContext stores the authenticated user ID in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the context.
// Returns uuid.Nil if the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) uuid.UUID {
	userID, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID
}
