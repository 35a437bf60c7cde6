package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/middleware"
	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

var _ billingv1connect.UserServiceHandler = (*UserService)(nil)

var (
	errAdminOnly = errors.New("only administrators manage operator accounts")
	errSelf      = errors.New("administrators cannot deactivate or delete their own account")
)

// UserService lets administrators activate, deactivate and remove operators.
type UserService struct {
	users storage.UserStore
}

func NewUserService(users storage.UserStore) *UserService {
	return &UserService{users: users}
}

// requireAdmin loads the caller and checks they are an active admin.
func (s *UserService) requireAdmin(ctx context.Context) (*models.User, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}
	if !user.Active || !user.IsAdmin {
		return nil, connect.NewError(connect.CodePermissionDenied, errAdminOnly)
	}
	return user, nil
}

// ListUsers returns operators in registration order.
func (s *UserService) ListUsers(ctx context.Context, req *connect.Request[billingv1.ListUsersRequest]) (*connect.Response[billingv1.ListUsersResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]billingv1.User, len(users))
	for i, u := range users {
		out[i] = userToWire(u)
	}
	return connect.NewResponse(&billingv1.ListUsersResponse{
		Users:      paginate(out, req.Msg.Page),
		DataLength: len(out),
	}), nil
}

// SetUserActive activates or deactivates another operator.
func (s *UserService) SetUserActive(ctx context.Context, req *connect.Request[billingv1.SetUserActiveRequest]) (*connect.Response[billingv1.SetUserActiveResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == admin.ID {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errSelf)
	}

	user, err := s.users.GetUserByID(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("user %s: %w", req.Msg.ID, storage.ErrNotFound))
	}

	user.Active = req.Msg.Active
	if err := s.users.UpdateUser(ctx, user); err != nil {
		slog.Error("SetUserActive failed", "user_id", user.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Operator activation changed", "user_id", user.ID, "active", user.Active, "by", admin.ID)
	return connect.NewResponse(&billingv1.SetUserActiveResponse{User: userToWire(user)}), nil
}

// DeleteUser removes another operator.
func (s *UserService) DeleteUser(ctx context.Context, req *connect.Request[billingv1.DeleteUserRequest]) (*connect.Response[billingv1.DeleteUserResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == admin.ID {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errSelf)
	}

	if err := s.users.DeleteUser(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeleteUser failed", "user_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Operator deleted", "user_id", req.Msg.ID, "by", admin.ID)
	return connect.NewResponse(&billingv1.DeleteUserResponse{}), nil
}
