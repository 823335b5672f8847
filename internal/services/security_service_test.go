package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"redadmin/internal/cache"
	"redadmin/internal/models"
)

func TestAdjustLiquidity_RequiresReason(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewSecurityService(apiClient(srv.URL), cache.New(time.Minute))

	for _, reason := range []string{"", "   ", "\n\t"} {
		err := s.AdjustLiquidity(context.Background(), 1, "withdrawable", reason)
		if !errors.Is(err, ErrEmptyReason) {
			t.Fatalf("reason %q: expected ErrEmptyReason, got %v", reason, err)
		}
	}
	if requests != 0 {
		t.Fatalf("empty reason must be rejected before the request, got %d requests", requests)
	}

	if err := s.AdjustLiquidity(context.Background(), 1, "withdrawable", "manual unlock after support ticket"); err != nil {
		t.Fatal(err)
	}
	if requests != 1 {
		t.Fatalf("expected 1 request, got %d", requests)
	}
}

func TestAdjustLiquidity_InvalidatesEntriesAndStats(t *testing.T) {
	entriesCalls := 0
	statsCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"success":true}`))
		case strings.Contains(r.URL.Path, "stats"):
			statsCalls++
			w.Write([]byte(`{}`))
		default:
			entriesCalls++
			w.Write([]byte(`{"items":[],"total":0,"page":1,"page_size":10}`))
		}
	}))
	defer srv.Close()

	s := NewSecurityService(apiClient(srv.URL), cache.New(time.Minute))
	f := models.LiquidityFilter{PageFilter: models.PageFilter{Page: 1, PageSize: 10}}

	s.LiquidityEntries(context.Background(), f, false)
	s.LiquidityStats(context.Background(), false)
	s.LiquidityEntries(context.Background(), f, false)
	s.LiquidityStats(context.Background(), false)
	if entriesCalls != 1 || statsCalls != 1 {
		t.Fatalf("expected cached reads, got entries=%d stats=%d", entriesCalls, statsCalls)
	}

	if err := s.AdjustLiquidity(context.Background(), 7, "cooldown", "fraud review"); err != nil {
		t.Fatal(err)
	}

	s.LiquidityEntries(context.Background(), f, false)
	s.LiquidityStats(context.Background(), false)
	if entriesCalls != 2 {
		t.Fatalf("adjust must invalidate entries, got %d calls", entriesCalls)
	}
	if statsCalls != 2 {
		t.Fatalf("adjust must invalidate stats, got %d calls", statsCalls)
	}
}

func TestCanEscalate(t *testing.T) {
	s := NewSecurityService(nil, cache.New(time.Minute))

	if !s.CanEscalate(&models.Alert{RiskLevel: models.RiskHigh}) {
		t.Fatal("unresolved non-critical alert must be escalatable")
	}
	if s.CanEscalate(&models.Alert{RiskLevel: models.RiskCritical}) {
		t.Fatal("critical alert has nowhere to escalate")
	}
	if s.CanEscalate(&models.Alert{RiskLevel: models.RiskLow, IsResolved: true}) {
		t.Fatal("resolved alert must not be escalatable")
	}
}
