package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redadmin/internal/cache"
	"redadmin/internal/models"
)

func TestTemplateVariables(t *testing.T) {
	vars := TemplateVariables("Привет {username}! Баланс: {balance} {currency}. Еще раз: {username}")
	if len(vars) != 3 {
		t.Fatalf("expected 3 unique variables, got %v", vars)
	}
	if vars[0] != "username" || vars[1] != "balance" || vars[2] != "currency" {
		t.Fatalf("unexpected order: %v", vars)
	}

	if vars := TemplateVariables("без переменных"); len(vars) != 0 {
		t.Fatalf("expected no variables, got %v", vars)
	}
}

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("Привет {username}, код {code}", map[string]string{"username": "ivan"})
	if out != "Привет ivan, код {code}" {
		t.Fatalf("unexpected render: %q", out)
	}
}

func TestSend_RejectsEmptyMessage(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewTelegramService(apiClient(srv.URL), cache.New(time.Minute))

	err := s.Send(context.Background(), models.SendMessageRequest{ChatId: 1, Text: "   "})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("empty send must not hit the server, got %d requests", requests)
	}

	if err := s.Send(context.Background(), models.SendMessageRequest{ChatId: 1, TemplateId: 3}); err != nil {
		t.Fatal(err)
	}
	if err := s.Send(context.Background(), models.SendMessageRequest{ChatId: 1, Text: "привет"}); err != nil {
		t.Fatal(err)
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests, got %d", requests)
	}
}
