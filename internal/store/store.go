package store

import (
	"encoding/json"
	"redadmin/internal/config"
	"redadmin/internal/models"
	"sync"
)

var log = config.InitLogger()

const (
	authKey  = "auth"
	themeKey = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Backend is durable key-value storage for the two persisted stores. Nothing
// else in the process keeps local state.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

type AuthState struct {
	Token           string       `json:"token"`
	Admin           models.Admin `json:"admin"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

// AuthStore holds the operator session. No expiry is tracked here: an expired
// token is discovered by the next API call coming back 401.
type AuthStore struct {
	mu      sync.RWMutex
	state   AuthState
	backend Backend
}

func NewAuthStore(backend Backend) *AuthStore {
	s := &AuthStore{backend: backend}

	data, err := backend.Load(authKey)
	if err == nil && data != nil {
		if err := json.Unmarshal(data, &s.state); err != nil {
			log.Error("Failed to load auth state: ", err)
		}
	}

	return s
}

func (s *AuthStore) SetAuth(token string, admin models.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = AuthState{
		Token:           token,
		Admin:           admin,
		IsAuthenticated: true,
	}
	s.persist()
}

func (s *AuthStore) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = AuthState{}
	s.persist()
}

// ClearIfAuthenticated clears the session and reports whether this call did
// the clearing. Concurrent 401 responses race here and exactly one caller
// wins, so the operator is told to log in again exactly once.
func (s *AuthStore) ClearIfAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsAuthenticated {
		return false
	}
	s.state = AuthState{}
	s.persist()
	return true
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *AuthStore) Admin() models.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Admin
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

func (s *AuthStore) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Error("Failed to marshal auth state: ", err)
		return
	}
	if err := s.backend.Save(authKey, data); err != nil {
		log.Error("Failed to persist auth state: ", err)
	}
}

// ThemeStore is the persisted display preference. It only picks the icon set
// used when rendering, business logic never reads it.
type ThemeStore struct {
	mu      sync.RWMutex
	theme   string
	backend Backend
}

func NewThemeStore(backend Backend) *ThemeStore {
	s := &ThemeStore{
		theme:   ThemeLight,
		backend: backend,
	}

	data, err := backend.Load(themeKey)
	if err == nil && len(data) > 0 {
		theme := string(data)
		if theme == ThemeLight || theme == ThemeDark {
			s.theme = theme
		}
	}

	return s
}

func (s *ThemeStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *ThemeStore) Set(theme string) {
	if theme != ThemeLight && theme != ThemeDark {
		log.Error("Unknown theme: ", theme)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	if err := s.backend.Save(themeKey, []byte(theme)); err != nil {
		log.Error("Failed to persist theme: ", err)
	}
}
