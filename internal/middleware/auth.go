// Package middleware holds the Connect interceptors and net/http wrappers
// shared by every billing service.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"

	callerKey contextKey = "caller"
)

// caller is filled in by the auth interceptor so that interceptors running
// before it can still report who made the call.
type caller struct {
	userID string
	email  string
}

func withCaller(ctx context.Context) context.Context {
	return context.WithValue(ctx, callerKey, &caller{})
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	if c, ok := ctx.Value(callerKey).(*caller); ok {
		return c.userID
	}
	return ""
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	if c, ok := ctx.Value(callerKey).(*caller); ok {
		return c.email
	}
	return ""
}

// UserLookup finds the account behind a token.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

var errUnknownUser = errors.New("account no longer exists")

// bearerToken returns the token from an "Authorization: Bearer <token>"
// header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	if c, ok := ctx.Value(callerKey).(*caller); ok {
		c.userID, c.email = claims.UserID, claims.Email
	}
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	return context.WithValue(ctx, EmailKey, claims.Email)
}

// authenticate validates the bearer token and, when users is set, that the
// account still exists and is active. Tokens outlive deactivation, so the
// account is checked on every call.
func authenticate(ctx context.Context, jwtManager *auth.JWTManager, users UserLookup, header string) (*auth.Claims, *connect.Error) {
	tokenString, err := bearerToken(header)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	claims, err := jwtManager.Validate(tokenString)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	if users == nil {
		return claims, nil
	}
	user, err := users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, errUnknownUser)
	}
	if !user.Active {
		return nil, connect.NewError(connect.CodePermissionDenied, auth.ErrInactiveUser)
	}
	return claims, nil
}

// RequireAuth returns an interceptor that rejects calls without a valid JWT
// for an active account. Procedures listed in public skip the check. A nil
// users skips the account lookup.
func RequireAuth(jwtManager *auth.JWTManager, users UserLookup, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if open[req.Spec().Procedure] {
				return next(ctx, req)
			}

			claims, cerr := authenticate(ctx, jwtManager, users, req.Header().Get("Authorization"))
			if cerr != nil {
				return nil, cerr
			}

			return next(withClaims(ctx, claims), req)
		}
	}
}

// RequireAuthHTTP is RequireAuth for plain net/http routes.
func RequireAuthHTTP(jwtManager *auth.JWTManager, users UserLookup, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, cerr := authenticate(r.Context(), jwtManager, users, r.Header.Get("Authorization"))
		if cerr != nil {
			status := http.StatusUnauthorized
			switch cerr.Code() {
			case connect.CodePermissionDenied:
				status = http.StatusForbidden
			case connect.CodeInternal:
				status = http.StatusInternalServerError
			}
			http.Error(w, cerr.Message(), status)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}
