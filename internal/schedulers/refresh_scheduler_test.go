package schedulers

import (
	"testing"
	"time"
)

func TestRefreshScheduler_EnableFires(t *testing.T) {
	s := NewRefreshScheduler()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	err := s.Enable(1, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Enabled(1) {
		t.Fatal("expected chat 1 enabled")
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("job never fired")
	}
}

func TestRefreshScheduler_EnableReplacesPreviousJob(t *testing.T) {
	s := NewRefreshScheduler()
	defer s.Stop()

	old := make(chan struct{}, 1)
	if err := s.Enable(1, 50*time.Millisecond, func() {
		select {
		case old <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.Enable(1, time.Hour, func() {}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-old:
		t.Fatal("replaced job must stop firing")
	case <-time.After(300 * time.Millisecond):
	}
	if !s.Enabled(1) {
		t.Fatal("chat 1 must still be enabled after replacement")
	}
}

func TestRefreshScheduler_Disable(t *testing.T) {
	s := NewRefreshScheduler()
	defer s.Stop()

	fired := make(chan struct{}, 1)
	if err := s.Enable(1, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatal(err)
	}
	s.Disable(1)

	if s.Enabled(1) {
		t.Fatal("expected chat 1 disabled")
	}
	select {
	case <-fired:
		t.Fatal("disabled job must stop firing")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRefreshScheduler_DisableUnknownChat(t *testing.T) {
	s := NewRefreshScheduler()
	defer s.Stop()

	s.Disable(42)
	if s.Enabled(42) {
		t.Fatal("unknown chat must stay disabled")
	}
}

func TestRefreshScheduler_Stop(t *testing.T) {
	s := NewRefreshScheduler()

	if err := s.Enable(1, 50*time.Millisecond, func() {}); err != nil {
		t.Fatal(err)
	}
	if err := s.Enable(2, 50*time.Millisecond, func() {}); err != nil {
		t.Fatal(err)
	}
	s.Stop()

	if s.Enabled(1) || s.Enabled(2) {
		t.Fatal("stop must drop every job")
	}
}
