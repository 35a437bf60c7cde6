package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/elsafrica/billing/internal/auth"
	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/metrics"
	"github.com/elsafrica/billing/internal/render"
	"github.com/elsafrica/billing/internal/storage/sqlite"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "billing-server-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	handler := Handler(Options{
		Store:         store,
		JWT:           auth.NewJWTManager("test-secret", time.Hour),
		Metrics:       metrics.New(),
		Thresholds:    calculator.DefaultThresholds(),
		BatchWorkers:  2,
		PDF:           render.Options{CompanyName: "Elsafrica Networks", Currency: "Ksh"},
		Authenticator: auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost),
	})

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return server
}

func postJSON(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, out
}

func TestAliasRoutes(t *testing.T) {
	server := setupServer(t)

	t.Run("status classify", func(t *testing.T) {
		code, out := postJSON(t, server.URL+"/status/classify", `{"isDisconnected":true}`)
		if code != http.StatusOK {
			t.Fatalf("status = %d, body %v", code, out)
		}
		if out["status"] != "Suspended" {
			t.Errorf("status = %v, want Suspended", out["status"])
		}
	})

	t.Run("status classify invalid date", func(t *testing.T) {
		code, out := postJSON(t, server.URL+"/status/classify", `{"lastPaymentDate":"soon"}`)
		if code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", code)
		}
		if out["code"] != "invalid_argument" {
			t.Errorf("code = %v, want invalid_argument", out["code"])
		}
	})

	t.Run("invoice totals", func(t *testing.T) {
		body := `{"items":[{"quantity":2,"unitCost":100},{"quantity":1,"unitCost":50}],
			"taxPercent":10,"shippingAbsolute":20,"discountAbsolute":5}`
		code, out := postJSON(t, server.URL+"/invoice/totals", body)
		if code != http.StatusOK {
			t.Fatalf("status = %d, body %v", code, out)
		}
		if out["subtotal"] != 250.0 || out["taxAmount"] != 25.0 || out["grandTotal"] != 290.0 {
			t.Errorf("unexpected totals: %v", out)
		}
	})
}

func TestAuthRequired(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	accounts := billingv1connect.NewAccountServiceClient(http.DefaultClient, server.URL)
	_, err := accounts.ListAccounts(ctx, connect.NewRequest(&billingv1.ListAccountsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("ListAccounts without token: got %v, want unauthenticated", err)
	}

	authClient := billingv1connect.NewAuthServiceClient(http.DefaultClient, server.URL)
	reg, err := authClient.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email: "ops@elsafrica.net", DisplayName: "Ops", Password: "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	bearer := "Bearer " + reg.Msg.Token

	req := connect.NewRequest(&billingv1.ListAccountsRequest{})
	req.Header().Set("Authorization", bearer)
	resp, err := accounts.ListAccounts(ctx, req)
	if err != nil {
		t.Fatalf("ListAccounts with token failed: %v", err)
	}
	if len(resp.Msg.Counts) != 4 {
		t.Errorf("expected counts for 4 statuses, got %v", resp.Msg.Counts)
	}

	meReq := connect.NewRequest(&billingv1.MeRequest{})
	meReq.Header().Set("Authorization", bearer)
	me, err := authClient.Me(ctx, meReq)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.Msg.User.Email != "ops@elsafrica.net" {
		t.Errorf("Me = %+v", me.Msg.User)
	}

	t.Run("pdf route requires token", func(t *testing.T) {
		httpResp, err := http.Get(server.URL + "/invoices/anything/pdf")
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		httpResp.Body.Close()
		if httpResp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", httpResp.StatusCode)
		}

		authed, _ := http.NewRequest(http.MethodGet, server.URL+"/invoices/anything/pdf", nil)
		authed.Header.Set("Authorization", bearer)
		httpResp, err = http.DefaultClient.Do(authed)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		httpResp.Body.Close()
		if httpResp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", httpResp.StatusCode)
		}
	})
}

func TestHealthAndMetrics(t *testing.T) {
	server := setupServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/healthz status = %d", resp.StatusCode)
	}

	postJSON(t, server.URL+"/status/classify", `{"lastPaymentDate":"2020-01-01"}`)

	resp, err = http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{
		`billing_account_status_total{status="Overdue"} 1`,
		`billing_rpc_requests_total{code="ok",procedure="/billing.v1.AccountService/ClassifyStatus"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestOperatorActivation(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	authClient := billingv1connect.NewAuthServiceClient(http.DefaultClient, server.URL)
	users := billingv1connect.NewUserServiceClient(http.DefaultClient, server.URL)
	accounts := billingv1connect.NewAccountServiceClient(http.DefaultClient, server.URL)

	admin, err := authClient.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email: "admin@elsafrica.net", DisplayName: "Admin", Password: "correct-horse",
	}))
	if err != nil {
		t.Fatalf("Register admin failed: %v", err)
	}
	adminBearer := "Bearer " + admin.Msg.Token

	clerk, err := authClient.Register(ctx, connect.NewRequest(&billingv1.RegisterRequest{
		Email: "clerk@elsafrica.net", DisplayName: "Clerk", Password: "battery-staple",
	}))
	if err != nil {
		t.Fatalf("Register clerk failed: %v", err)
	}
	if clerk.Msg.Token != "" || clerk.Msg.User.Active {
		t.Fatalf("self-registered operator got access: %+v", clerk.Msg)
	}

	login := func() (*connect.Response[billingv1.LoginResponse], error) {
		return authClient.Login(ctx, connect.NewRequest(&billingv1.LoginRequest{
			Email: "clerk@elsafrica.net", Password: "battery-staple",
		}))
	}
	listAccounts := func(bearer string) error {
		req := connect.NewRequest(&billingv1.ListAccountsRequest{})
		req.Header().Set("Authorization", bearer)
		_, err := accounts.ListAccounts(ctx, req)
		return err
	}
	setActive := func(active bool) {
		t.Helper()
		req := connect.NewRequest(&billingv1.SetUserActiveRequest{ID: clerk.Msg.User.ID, Active: active})
		req.Header().Set("Authorization", adminBearer)
		if _, err := users.SetUserActive(ctx, req); err != nil {
			t.Fatalf("SetUserActive(%v) failed: %v", active, err)
		}
	}

	if _, err := login(); connect.CodeOf(err) != connect.CodePermissionDenied {
		t.Fatalf("login before activation: got %v, want permission_denied", err)
	}

	setActive(true)

	session, err := login()
	if err != nil {
		t.Fatalf("login after activation failed: %v", err)
	}
	clerkBearer := "Bearer " + session.Msg.Token
	if err := listAccounts(clerkBearer); err != nil {
		t.Fatalf("ListAccounts as activated operator failed: %v", err)
	}

	t.Run("clerk cannot manage operators", func(t *testing.T) {
		req := connect.NewRequest(&billingv1.ListUsersRequest{})
		req.Header().Set("Authorization", clerkBearer)
		if _, err := users.ListUsers(ctx, req); connect.CodeOf(err) != connect.CodePermissionDenied {
			t.Errorf("ListUsers as clerk: got %v, want permission_denied", err)
		}
	})

	t.Run("deactivation revokes live tokens", func(t *testing.T) {
		setActive(false)
		if err := listAccounts(clerkBearer); connect.CodeOf(err) != connect.CodePermissionDenied {
			t.Errorf("ListAccounts after deactivation: got %v, want permission_denied", err)
		}
	})
}
