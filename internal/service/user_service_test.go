package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
)

func TestUserService(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	register := func(email string) billingv1.User {
		t.Helper()
		resp, err := c.auth.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
			Email: email, DisplayName: email, Password: "correct-horse",
		}))
		if err != nil {
			t.Fatalf("Register(%s) failed: %v", email, err)
		}
		return resp.Msg.User
	}

	admin := register("admin@elsafrica.net")
	clerk := register("clerk@elsafrica.net")
	intern := register("intern@elsafrica.net")

	t.Run("unknown caller", func(t *testing.T) {
		_, err := c.users.ListUsers(ctx, connect.NewRequest(&billingv1.ListUsersRequest{}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("inactive caller", func(t *testing.T) {
		c.actAs(clerk.ID)
		defer c.actAs("operator-1")

		_, err := c.users.ListUsers(ctx, connect.NewRequest(&billingv1.ListUsersRequest{}))
		assertCode(t, err, connect.CodePermissionDenied)

		_, err = c.users.DeleteUser(ctx, connect.NewRequest(&billingv1.DeleteUserRequest{ID: intern.ID}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	c.actAs(admin.ID)
	defer c.actAs("operator-1")

	t.Run("list in registration order", func(t *testing.T) {
		resp, err := c.users.ListUsers(ctx, connect.NewRequest(&billingv1.ListUsersRequest{}))
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if resp.Msg.DataLength != 3 {
			t.Fatalf("DataLength = %d, want 3", resp.Msg.DataLength)
		}
		for i, want := range []string{admin.ID, clerk.ID, intern.ID} {
			if resp.Msg.Users[i].ID != want {
				t.Errorf("user %d = %s, want %s", i, resp.Msg.Users[i].ID, want)
			}
		}
		if !resp.Msg.Users[0].IsAdmin || resp.Msg.Users[1].Active {
			t.Errorf("flags = %+v", resp.Msg.Users)
		}

		page, err := c.users.ListUsers(ctx, connect.NewRequest(&billingv1.ListUsersRequest{
			Page: billingv1.Page{PageNum: 1, RowsPerPage: 2},
		}))
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(page.Msg.Users) != 1 || page.Msg.Users[0].ID != intern.ID {
			t.Errorf("page 1 = %+v", page.Msg.Users)
		}
	})

	t.Run("admin cannot lock themselves out", func(t *testing.T) {
		_, err := c.users.SetUserActive(ctx, connect.NewRequest(&billingv1.SetUserActiveRequest{ID: admin.ID, Active: false}))
		assertCode(t, err, connect.CodeFailedPrecondition)

		_, err = c.users.DeleteUser(ctx, connect.NewRequest(&billingv1.DeleteUserRequest{ID: admin.ID}))
		assertCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := c.users.DeleteUser(ctx, connect.NewRequest(&billingv1.DeleteUserRequest{ID: intern.ID})); err != nil {
			t.Fatalf("DeleteUser failed: %v", err)
		}
		_, err := c.users.DeleteUser(ctx, connect.NewRequest(&billingv1.DeleteUserRequest{ID: intern.ID}))
		assertCode(t, err, connect.CodeNotFound)

		_, err = c.users.SetUserActive(ctx, connect.NewRequest(&billingv1.SetUserActiveRequest{ID: intern.ID, Active: true}))
		assertCode(t, err, connect.CodeNotFound)
	})
}
