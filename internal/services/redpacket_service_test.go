package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/config"
	"redadmin/internal/models"
)

func apiClient(serverUrl string) *api.Client {
	cfg := &config.ApiConfig{BaseUrl: serverUrl, Timeout: 2 * time.Second}
	return api.NewClient(cfg, func() string { return "token" })
}

func TestCanRefund(t *testing.T) {
	s := NewRedPacketService(nil, cache.New(time.Minute))

	cases := []struct {
		status  string
		claimed int
		want    bool
	}{
		{models.PacketStatusActive, 0, true},
		{models.PacketStatusExpired, 0, true},
		{models.PacketStatusActive, 1, false},
		{models.PacketStatusRefunded, 0, false},
		{models.PacketStatusCompleted, 3, false},
	}
	for _, c := range cases {
		p := &models.RedPacket{Status: c.status, ClaimedCount: c.claimed}
		if got := s.CanRefund(p); got != c.want {
			t.Fatalf("CanRefund(%v, claimed=%v) = %v, want %v", c.status, c.claimed, got, c.want)
		}
	}
}

func TestCanExtendAndComplete(t *testing.T) {
	s := NewRedPacketService(nil, cache.New(time.Minute))

	active := &models.RedPacket{Status: models.PacketStatusActive}
	if !s.CanExtend(active) || !s.CanComplete(active) {
		t.Fatal("active packets must be extendable and completable")
	}

	for _, status := range []string{models.PacketStatusCompleted, models.PacketStatusExpired, models.PacketStatusRefunded} {
		p := &models.RedPacket{Status: status}
		if s.CanExtend(p) {
			t.Fatalf("%v packet must not be extendable", status)
		}
		if s.CanComplete(p) {
			t.Fatalf("%v packet must not be completable", status)
		}
	}
}

func TestExtend_RejectsBadHoursWithoutRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewRedPacketService(apiClient(srv.URL), cache.New(time.Minute))

	for _, hours := range []int{0, -5} {
		if err := s.Extend(context.Background(), "abc", hours); !errors.Is(err, ErrBadExtendHours) {
			t.Fatalf("hours=%v: expected ErrBadExtendHours, got %v", hours, err)
		}
	}
	if requests != 0 {
		t.Fatalf("invalid hours must be rejected before the request, got %d requests", requests)
	}

	if err := s.Extend(context.Background(), "abc", 24); err != nil {
		t.Fatal(err)
	}
	if requests != 1 {
		t.Fatalf("expected 1 request, got %d", requests)
	}
}

func TestRefund_InvalidatesListCache(t *testing.T) {
	listCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			listCalls++
			w.Write([]byte(`{"items":[],"total":0,"page":1,"page_size":10}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewRedPacketService(apiClient(srv.URL), cache.New(time.Minute))
	f := models.RedPacketFilter{PageFilter: models.PageFilter{Page: 1, PageSize: 10}}

	s.List(context.Background(), f, false)
	s.List(context.Background(), f, false)
	if listCalls != 1 {
		t.Fatalf("second list should be served from cache, got %d calls", listCalls)
	}

	if err := s.Refund(context.Background(), "abc"); err != nil {
		t.Fatal(err)
	}

	s.List(context.Background(), f, false)
	if listCalls != 2 {
		t.Fatalf("refund must invalidate the packet list, got %d calls", listCalls)
	}
}
