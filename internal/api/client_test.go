package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redadmin/internal/config"
)

func testClient(serverUrl string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return NewClient(&config.ApiConfig{BaseUrl: serverUrl, Timeout: 2 * time.Second}, token)
}

func TestClient_TokenReadAtCallTime(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	token := ""
	c := testClient(srv.URL, func() string { return token })

	if err := c.get(context.Background(), "/users", nil, &struct{}{}); err != nil {
		t.Fatal(err)
	}
	token = "abc"
	if err := c.get(context.Background(), "/users", nil, &struct{}{}); err != nil {
		t.Fatal(err)
	}

	if seen[0] != "" {
		t.Fatalf("expected no auth header before login, got %q", seen[0])
	}
	if seen[1] != "Bearer abc" {
		t.Fatalf("expected token set after login, got %q", seen[1])
	}
}

func TestClient_RequestIdHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id")
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	if err := c.get(context.Background(), "/users", nil, &struct{}{}); err != nil {
		t.Fatal(err)
	}
}

func TestClient_UnauthorizedFiresHookAndNeverRetries(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	hooks := 0
	c.SetOnUnauthorized(func() { hooks++ })

	err := c.get(context.Background(), "/users", nil, &struct{}{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if requests != 1 {
		t.Fatalf("401 must not be retried, got %d requests", requests)
	}
	if hooks != 1 {
		t.Fatalf("expected 1 hook call, got %d", hooks)
	}
}

func TestClient_GetRetriesOnceOnServerError(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	if err := c.get(context.Background(), "/users", nil, &struct{}{}); err != nil {
		t.Fatalf("retry should have succeeded: %v", err)
	}
	if requests != 2 {
		t.Fatalf("expected exactly one retry, got %d requests", requests)
	}
}

func TestClient_GetRetriesAtMostOnce(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	if err := c.get(context.Background(), "/users", nil, &struct{}{}); err == nil {
		t.Fatal("expected error")
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests total, got %d", requests)
	}
}

func TestClient_MutationNeverRetries(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	if err := c.mutate(context.Background(), "/users/1/ban", map[string]string{}); err == nil {
		t.Fatal("expected error")
	}
	if requests != 1 {
		t.Fatalf("mutations must not be retried, got %d requests", requests)
	}
}

func TestClient_MutateUnwrapsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"claimed packets cannot be refunded"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	err := c.mutate(context.Background(), "/red-packets/x/refund", nil)
	msg, ok := ServerMessage(err)
	if !ok {
		t.Fatalf("expected a server message, got %v", err)
	}
	if msg != "claimed packets cannot be refunded" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestParseError_ClientMessageShownServerMessageHidden(t *testing.T) {
	err := parseError(http.StatusBadRequest, []byte(`{"message":"hours must be positive"}`))
	if msg, ok := ServerMessage(err); !ok || msg != "hours must be positive" {
		t.Fatalf("4xx message must be passed through, got %v", err)
	}

	err = parseError(http.StatusBadGateway, []byte(`{"message":"pq: relation missing"}`))
	if _, ok := ServerMessage(err); ok {
		t.Fatal("5xx internals must not surface to the operator")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected generic 5xx text, got %v", err)
	}
}

func TestShouldRetry(t *testing.T) {
	if shouldRetry(nil) {
		t.Fatal("nil error must not retry")
	}
	if shouldRetry(ErrUnauthorized) {
		t.Fatal("401 must not retry")
	}
	if shouldRetry(&Error{Status: http.StatusBadRequest}) {
		t.Fatal("4xx must not retry")
	}
	if !shouldRetry(&Error{Status: http.StatusInternalServerError}) {
		t.Fatal("5xx must retry")
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(&config.ApiConfig{BaseUrl: srv.URL, Timeout: 50 * time.Millisecond}, func() string { return "" })
	err := c.do(context.Background(), http.MethodGet, "/users", nil, nil, &struct{}{})
	if err == nil {
		t.Fatal("expected timeout")
	}
	if !IsTimeout(err) {
		t.Fatalf("expected a timeout error, got %v", err)
	}
}

func TestClient_GetBinaryFilename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="report-7.csv"`)
		w.Write([]byte("id,amount\n"))
	}))
	defer srv.Close()

	c := testClient(srv.URL, nil)
	data, name, err := c.getBinary(context.Background(), "/reports/7/download")
	if err != nil {
		t.Fatal(err)
	}
	if name != "report-7.csv" {
		t.Fatalf("unexpected filename: %q", name)
	}
	if len(data) == 0 {
		t.Fatal("expected file payload")
	}
}
