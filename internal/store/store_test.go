package store

import (
	"testing"

	"redadmin/internal/models"
)

func TestAuthStore_SurvivesRestart(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	s := NewAuthStore(backend)
	if s.IsAuthenticated() {
		t.Fatal("fresh store must not be authenticated")
	}
	s.SetAuth("token-123", models.Admin{Id: 1, Username: "root", Role: "admin"})

	restarted := NewAuthStore(backend)
	if !restarted.IsAuthenticated() {
		t.Fatal("session must survive a restart")
	}
	if restarted.Token() != "token-123" {
		t.Fatalf("unexpected token: %q", restarted.Token())
	}
	if restarted.Admin().Username != "root" {
		t.Fatalf("unexpected admin: %+v", restarted.Admin())
	}
}

func TestAuthStore_ClearAuth(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	s := NewAuthStore(backend)
	s.SetAuth("token", models.Admin{Id: 1})
	s.ClearAuth()

	if s.IsAuthenticated() || s.Token() != "" {
		t.Fatal("clear must drop the session")
	}
	if NewAuthStore(backend).IsAuthenticated() {
		t.Fatal("cleared session must not come back after restart")
	}
}

func TestAuthStore_ClearIfAuthenticatedFiresOnce(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	s := NewAuthStore(backend)
	if s.ClearIfAuthenticated() {
		t.Fatal("nothing to clear on a fresh store")
	}

	s.SetAuth("token", models.Admin{Id: 1})
	cleared := 0
	for i := 0; i < 5; i++ {
		if s.ClearIfAuthenticated() {
			cleared++
		}
	}
	if cleared != 1 {
		t.Fatalf("expected exactly one clear, got %d", cleared)
	}
}

func TestThemeStore(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	s := NewThemeStore(backend)
	if s.Theme() != ThemeLight {
		t.Fatalf("default theme must be light, got %q", s.Theme())
	}

	s.Set(ThemeDark)
	if s.Theme() != ThemeDark {
		t.Fatalf("expected dark, got %q", s.Theme())
	}

	s.Set("neon")
	if s.Theme() != ThemeDark {
		t.Fatalf("unknown theme must be ignored, got %q", s.Theme())
	}

	if NewThemeStore(backend).Theme() != ThemeDark {
		t.Fatal("theme must survive a restart")
	}
}

func TestFileBackend_MissingKey(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	data, err := backend.Load("nope")
	if err != nil || data != nil {
		t.Fatalf("missing key must load as nil, got %v %v", data, err)
	}
	if err := backend.Delete("nope"); err != nil {
		t.Fatalf("deleting a missing key must be a no-op, got %v", err)
	}
}
