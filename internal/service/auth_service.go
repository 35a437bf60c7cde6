package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/mailer"
	"github.com/elsafrica/billing/internal/middleware"
	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

var _ billingv1connect.AuthServiceHandler = (*AuthService)(nil)

// DefaultResetTTL is how long a password reset link stays valid unless
// WithPasswordReset says otherwise.
const DefaultResetTTL = time.Hour

// AuthStore is the storage the auth service needs.
type AuthStore interface {
	storage.UserStore
	storage.PasswordResetStore
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         AuthStore
	logger        *slog.Logger

	mailer   mailer.Mailer
	resetURL string
	resetTTL time.Duration
	now      func() time.Time
}

// NewAuthService creates a new authentication service. Reset links go to
// the log until WithPasswordReset configures a mailer.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store AuthStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
		logger:        logger,
		mailer:        mailer.NewLog(logger),
		resetTTL:      DefaultResetTTL,
		now:           time.Now,
	}
}

// WithPasswordReset sets the mailer for reset links, the base URL the token
// is appended to and how long links stay valid.
func (s *AuthService) WithPasswordReset(m mailer.Mailer, baseURL string, ttl time.Duration) *AuthService {
	s.mailer = m
	s.resetURL = baseURL
	if ttl > 0 {
		s.resetTTL = ttl
	}
	return s
}

// WithClock replaces the time source used for reset expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// issue signs a token for user and reports when it expires.
func (s *AuthService) issue(user *models.User) (token, expiresAt string, err error) {
	token, err = s.jwtManager.Generate(user)
	if err != nil {
		return "", "", err
	}
	expires := time.Now().Add(s.jwtManager.TokenDuration()).UTC().Truncate(time.Second)
	return token, expires.Format(time.RFC3339), nil
}

// Register creates a new operator account. Only an account that is active
// straight away, the first one, is signed in.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[billingv1.RegisterRequest]) (*connect.Response[billingv1.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &billingv1.RegisterResponse{User: userToWire(user)}
	if !user.Active {
		s.logger.Info("User registered, awaiting activation", "user_id", user.ID, "email", user.Email)
		return connect.NewResponse(resp), nil
	}

	resp.Token, resp.ExpiresAt, err = s.issue(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "email", user.Email, "admin", user.IsAdmin)
	return connect.NewResponse(resp), nil
}

// Login authenticates an operator and returns a JWT. Accounts still waiting
// for activation get PermissionDenied.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[billingv1.LoginRequest]) (*connect.Response[billingv1.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if errors.Is(err, auth.ErrInactiveUser) {
		s.logger.Warn("Login refused, account inactive", "email", req.Msg.Email)
		return nil, connect.NewError(connect.CodePermissionDenied, err)
	}
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.issue(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&billingv1.LoginResponse{User: userToWire(user), Token: token, ExpiresAt: expiresAt}), nil
}

// Me returns the operator behind the request's token.
func (s *AuthService) Me(ctx context.Context, req *connect.Request[billingv1.MeRequest]) (*connect.Response[billingv1.MeResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}

	return connect.NewResponse(&billingv1.MeResponse{User: userToWire(user)}), nil
}

// RequestPasswordReset mails a one-time reset link. Unknown emails get the
// same empty response.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req *connect.Request[billingv1.RequestPasswordResetRequest]) (*connect.Response[billingv1.RequestPasswordResetResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Msg.Email))
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to look up user", "email", email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		s.logger.Info("Password reset for unknown email", "email", email)
		return connect.NewResponse(&billingv1.RequestPasswordResetResponse{}), nil
	}

	token, hash := auth.NewResetToken()
	reset := &models.PasswordReset{
		TokenHash: hash,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.resetTTL),
	}
	if err := s.store.CreatePasswordReset(ctx, reset); err != nil {
		s.logger.Error("Failed to store password reset", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.DisplayName, s.resetURL+token); err != nil {
		s.logger.Error("Failed to send password reset", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, errors.New("could not send the reset email, try again later"))
	}

	s.logger.Info("Password reset sent", "user_id", user.ID, "expires_at", reset.ExpiresAt.Format(time.RFC3339))
	return connect.NewResponse(&billingv1.RequestPasswordResetResponse{}), nil
}

// ConfirmPasswordReset sets a new password from a reset token. A token works
// once; every pending reset of the operator is dropped afterwards.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req *connect.Request[billingv1.ConfirmPasswordResetRequest]) (*connect.Response[billingv1.ConfirmPasswordResetResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	reset, err := s.store.GetPasswordReset(ctx, auth.HashResetToken(req.Msg.Token))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidResetToken)
	}
	if err != nil {
		s.logger.Error("Failed to load password reset", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if reset.Expired(s.now()) {
		if err := s.store.DeletePasswordResets(ctx, reset.UserID); err != nil {
			s.logger.Warn("Failed to drop expired resets", "user_id", reset.UserID, "error", err)
		}
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidResetToken)
	}

	hashed, err := s.authenticator.HashCredential(req.Msg.Password)
	if errors.Is(err, auth.ErrWeakPassword) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	user, err := s.store.GetUserByID(ctx, reset.UserID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidResetToken)
	}

	user.PasswordHash = hashed
	if err := s.store.UpdateUser(ctx, user); err != nil {
		s.logger.Error("Failed to store new password", "user_id", user.ID, "error", err)
		return nil, toConnectError(err)
	}
	if err := s.store.DeletePasswordResets(ctx, user.ID); err != nil {
		s.logger.Error("Failed to drop used resets", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Password reset completed", "user_id", user.ID)
	return connect.NewResponse(&billingv1.ConfirmPasswordResetResponse{}), nil
}
