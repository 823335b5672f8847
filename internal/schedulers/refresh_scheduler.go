package schedulers

import (
	"fmt"
	"sync"
	"time"

	"redadmin/internal/config"

	"github.com/robfig/cron/v3"
)

var log = config.InitLogger()

// RefreshScheduler re-runs a screen's read on a fixed interval while the
// operator keeps auto-refresh on. One job per chat: enabling again replaces
// the old job, disabling removes it, so nothing keeps ticking for a closed
// screen.
type RefreshScheduler struct {
	cron *cron.Cron
	mu   sync.Mutex
	jobs map[int64]cron.EntryID
}

func NewRefreshScheduler() *RefreshScheduler {
	c := cron.New()
	c.Start()
	return &RefreshScheduler{
		cron: c,
		jobs: make(map[int64]cron.EntryID),
	}
}

func (s *RefreshScheduler) Enable(chatId int64, interval time.Duration, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.jobs[chatId]; ok {
		s.cron.Remove(id)
		delete(s.jobs, chatId)
	}

	id, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), job)
	if err != nil {
		log.Error("Failed to schedule refresh: ", err)
		return err
	}
	s.jobs[chatId] = id
	return nil
}

func (s *RefreshScheduler) Disable(chatId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.jobs[chatId]; ok {
		s.cron.Remove(id)
		delete(s.jobs, chatId)
	}
}

func (s *RefreshScheduler) Enabled(chatId int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[chatId]
	return ok
}

// Stop tears down every job. Running jobs finish, nothing new fires.
func (s *RefreshScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for chatId, id := range s.jobs {
		s.cron.Remove(id)
		delete(s.jobs, chatId)
	}
	s.cron.Stop()
}
