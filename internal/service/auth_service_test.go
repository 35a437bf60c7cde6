package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/models"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
)

func TestAuthService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	reg, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email:       "ops@elsafrica.net",
		DisplayName: "Ops",
		Password:    "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Msg.Token == "" || reg.Msg.User.ID == "" {
		t.Fatalf("Register returned %+v", reg.Msg)
	}
	if !reg.Msg.User.Active || !reg.Msg.User.IsAdmin {
		t.Errorf("first operator = %+v, want an active admin", reg.Msg.User)
	}
	expires, err := time.Parse(time.RFC3339, reg.Msg.ExpiresAt)
	if err != nil {
		t.Fatalf("ExpiresAt %q: %v", reg.Msg.ExpiresAt, err)
	}
	if d := time.Until(expires); d < 55*time.Minute || d > time.Hour+time.Minute {
		t.Errorf("token expires in %v, want about an hour", d)
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
			Email: "ops@elsafrica.net", DisplayName: "Again", Password: "correct-horse",
		}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("weak password and bad email", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
			Email: "new@elsafrica.net", DisplayName: "New", Password: "short",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
			Email: "not-an-email", DisplayName: "New", Password: "long-enough",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := c.auth.Login(ctx, connect.NewRequest(&billingv1.LoginRequest{
			Email: "ops@elsafrica.net", Password: "correct-horse",
		}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Msg.User.ID != reg.Msg.User.ID {
			t.Errorf("logged in as %s, want %s", resp.Msg.User.ID, reg.Msg.User.ID)
		}
		if _, err := time.Parse(time.RFC3339, resp.Msg.ExpiresAt); err != nil {
			t.Errorf("ExpiresAt %q: %v", resp.Msg.ExpiresAt, err)
		}

		_, err = c.auth.Login(ctx, connect.NewRequest(&billingv1.LoginRequest{
			Email: "ops@elsafrica.net", Password: "wrong-horse",
		}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("Me with unknown user", func(t *testing.T) {
		// The test interceptor starts out as operator-1, which is not stored.
		_, err := c.auth.Me(ctx, connect.NewRequest(&billingv1.MeRequest{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("Me", func(t *testing.T) {
		c.actAs(reg.Msg.User.ID)
		defer c.actAs("operator-1")

		resp, err := c.auth.Me(ctx, connect.NewRequest(&billingv1.MeRequest{}))
		if err != nil {
			t.Fatalf("Me failed: %v", err)
		}
		if resp.Msg.User.Email != "ops@elsafrica.net" {
			t.Errorf("Me = %+v", resp.Msg.User)
		}
	})
}

func TestAuthService_Activation(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	admin, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email: "admin@elsafrica.net", DisplayName: "Admin", Password: "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register admin failed: %v", err)
	}

	second, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email: "clerk@elsafrica.net", DisplayName: "Clerk", Password: "battery-staple",
	}))
	if err != nil {
		t.Fatalf("Register clerk failed: %v", err)
	}
	if second.Msg.Token != "" || second.Msg.ExpiresAt != "" {
		t.Errorf("inactive registration got a token: %+v", second.Msg)
	}
	if second.Msg.User.Active || second.Msg.User.IsAdmin {
		t.Errorf("second operator = %+v, want inactive and not admin", second.Msg.User)
	}

	login := func() error {
		_, err := c.auth.Login(ctx, connect.NewRequest(&billingv1.LoginRequest{
			Email: "clerk@elsafrica.net", Password: "battery-staple",
		}))
		return err
	}

	t.Run("inactive login is refused", func(t *testing.T) {
		assertCode(t, login(), connect.CodePermissionDenied)
	})

	t.Run("non-admin cannot activate", func(t *testing.T) {
		c.actAs(second.Msg.User.ID)
		defer c.actAs("operator-1")

		_, err := c.users.SetUserActive(ctx, connect.NewRequest(&billingv1.SetUserActiveRequest{
			ID: second.Msg.User.ID, Active: true,
		}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("admin activates", func(t *testing.T) {
		c.actAs(admin.Msg.User.ID)
		defer c.actAs("operator-1")

		resp, err := c.users.SetUserActive(ctx, connect.NewRequest(&billingv1.SetUserActiveRequest{
			ID: second.Msg.User.ID, Active: true,
		}))
		if err != nil {
			t.Fatalf("SetUserActive failed: %v", err)
		}
		if !resp.Msg.User.Active {
			t.Error("user still inactive")
		}
		if err := login(); err != nil {
			t.Errorf("Login after activation failed: %v", err)
		}
	})

	t.Run("admin deactivates again", func(t *testing.T) {
		c.actAs(admin.Msg.User.ID)
		defer c.actAs("operator-1")

		if _, err := c.users.SetUserActive(ctx, connect.NewRequest(&billingv1.SetUserActiveRequest{
			ID: second.Msg.User.ID, Active: false,
		})); err != nil {
			t.Fatalf("SetUserActive failed: %v", err)
		}
		assertCode(t, login(), connect.CodePermissionDenied)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	reg, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email: "ops@elsafrica.net", DisplayName: "Ops", Password: "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	requestReset := func(t *testing.T) string {
		t.Helper()
		if _, err := c.auth.RequestPasswordReset(ctx, connect.NewRequest(&billingv1.RequestPasswordResetRequest{
			Email: "OPS@elsafrica.net",
		})); err != nil {
			t.Fatalf("RequestPasswordReset failed: %v", err)
		}
		to, link := c.mail.last()
		if to != "ops@elsafrica.net" {
			t.Fatalf("reset sent to %q", to)
		}
		token, ok := strings.CutPrefix(link, "https://billing.example/auth/new_password/")
		if !ok || token == "" {
			t.Fatalf("link = %q", link)
		}
		return token
	}

	t.Run("unknown email looks the same", func(t *testing.T) {
		_, err := c.auth.RequestPasswordReset(ctx, connect.NewRequest(&billingv1.RequestPasswordResetRequest{
			Email: "nobody@elsafrica.net",
		}))
		if err != nil {
			t.Fatalf("RequestPasswordReset failed: %v", err)
		}
		if to, _ := c.mail.last(); to != "" {
			t.Errorf("mail sent to %q for an unknown email", to)
		}
	})

	t.Run("reset and log in with the new password", func(t *testing.T) {
		token := requestReset(t)

		_, err := c.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&billingv1.ConfirmPasswordResetRequest{
			Token: token, Password: "short",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)

		if _, err := c.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&billingv1.ConfirmPasswordResetRequest{
			Token: token, Password: "new-correct-horse",
		})); err != nil {
			t.Fatalf("ConfirmPasswordReset failed: %v", err)
		}

		_, err = c.auth.Login(ctx, connect.NewRequest(&billingv1.LoginRequest{
			Email: "ops@elsafrica.net", Password: "correct-horse",
		}))
		assertCode(t, err, connect.CodeUnauthenticated)

		if _, err := c.auth.Login(ctx, connect.NewRequest(&billingv1.LoginRequest{
			Email: "ops@elsafrica.net", Password: "new-correct-horse",
		})); err != nil {
			t.Errorf("Login with new password failed: %v", err)
		}

		_, err = c.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&billingv1.ConfirmPasswordResetRequest{
			Token: token, Password: "another-password",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := c.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&billingv1.ConfirmPasswordResetRequest{
			Token: "made-up", Password: "long-enough",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("expired token", func(t *testing.T) {
		token := "expired-token"
		if err := c.store.CreatePasswordReset(ctx, &models.PasswordReset{
			TokenHash: auth.HashResetToken(token),
			UserID:    reg.Msg.User.ID,
			ExpiresAt: fixedNow.Add(-time.Minute),
		}); err != nil {
			t.Fatalf("CreatePasswordReset failed: %v", err)
		}

		_, err := c.auth.ConfirmPasswordReset(ctx, connect.NewRequest(&billingv1.ConfirmPasswordResetRequest{
			Token: token, Password: "long-enough",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}
