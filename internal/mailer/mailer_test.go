package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendGrid_SendPasswordReset(t *testing.T) {
	var got struct {
		auth string
		path string
		body map[string]any
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.auth = r.Header.Get("Authorization")
		got.path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &got.body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m, err := NewSendGrid("sg-key", "Elsafrica Networks <billing@elsafrica.net>")
	if err != nil {
		t.Fatalf("NewSendGrid failed: %v", err)
	}
	m.WithBaseURL(srv.URL)

	link := "https://billing.example/auth/new_password/abc123"
	if err := m.SendPasswordReset(context.Background(), "wanjiru@example.com", "Wanjiru", link); err != nil {
		t.Fatalf("SendPasswordReset failed: %v", err)
	}

	if got.auth != "Bearer sg-key" {
		t.Errorf("Authorization = %q", got.auth)
	}
	if got.path != "/v3/mail/send" {
		t.Errorf("path = %q", got.path)
	}
	from, _ := got.body["from"].(map[string]any)
	if from["email"] != "billing@elsafrica.net" || from["name"] != "Elsafrica Networks" {
		t.Errorf("from = %v", from)
	}
	raw, _ := json.Marshal(got.body["content"])
	if !strings.Contains(string(raw), "abc123") {
		t.Errorf("content does not carry the link: %s", raw)
	}
}

func TestSendGrid_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	m, err := NewSendGrid("wrong", "billing@elsafrica.net")
	if err != nil {
		t.Fatalf("NewSendGrid failed: %v", err)
	}
	m.WithBaseURL(srv.URL)

	err = m.SendPasswordReset(context.Background(), "a@example.com", "", "https://x/1")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("err = %v, want status 401", err)
	}
}

func TestNewSendGrid_InvalidSender(t *testing.T) {
	if _, err := NewSendGrid("k", "not an address"); err == nil {
		t.Error("expected an error for an unparseable sender")
	}
}

func TestLog_SendPasswordReset(t *testing.T) {
	var buf bytes.Buffer
	m := NewLog(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := m.SendPasswordReset(context.Background(), "a@example.com", "A", "https://x/tok"); err != nil {
		t.Fatalf("SendPasswordReset failed: %v", err)
	}
	if !strings.Contains(buf.String(), "https://x/tok") {
		t.Errorf("log = %q, want the link", buf.String())
	}
}
