package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/models"
)

var ErrEmptyMessage = errors.New("message text or template is required")

var templateVarPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

type TelegramService struct {
	api   *api.Client
	cache *cache.QueryCache
}

func NewTelegramService(client *api.Client, qc *cache.QueryCache) *TelegramService {
	return &TelegramService{
		api:   client,
		cache: qc,
	}
}

func (s *TelegramService) Groups(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.TelegramGroup]] {
	return cache.Fetch(ctx, s.cache, cache.TagTelegramGroups, f.Params(), force, func(ctx context.Context) (*models.Page[models.TelegramGroup], error) {
		return s.api.ListGroups(ctx, f)
	})
}

func (s *TelegramService) SetGroupEnabled(ctx context.Context, id uint64, enabled bool) error {
	if err := s.api.SetGroupEnabled(ctx, id, enabled); err != nil {
		return err
	}
	s.cache.InvalidateMutation("telegram.group")
	return nil
}

func (s *TelegramService) Messages(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.TelegramMessage]] {
	return cache.Fetch(ctx, s.cache, cache.TagTelegramMessages, f.Params(), force, func(ctx context.Context) (*models.Page[models.TelegramMessage], error) {
		return s.api.ListMessages(ctx, f)
	})
}

func (s *TelegramService) Templates(ctx context.Context, f models.PageFilter, force bool) cache.Result[*models.Page[models.MessageTemplate]] {
	return cache.Fetch(ctx, s.cache, cache.TagTemplates, f.Params(), force, func(ctx context.Context) (*models.Page[models.MessageTemplate], error) {
		return s.api.ListTemplates(ctx, f)
	})
}

func (s *TelegramService) CreateTemplate(ctx context.Context, req models.TemplateRequest) error {
	if err := s.api.CreateTemplate(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("telegram.template")
	return nil
}

func (s *TelegramService) UpdateTemplate(ctx context.Context, id uint64, req models.TemplateRequest) error {
	if err := s.api.UpdateTemplate(ctx, id, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("telegram.template")
	return nil
}

func (s *TelegramService) ToggleTemplate(ctx context.Context, id uint64) error {
	if err := s.api.ToggleTemplate(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateMutation("telegram.template")
	return nil
}

func (s *TelegramService) Send(ctx context.Context, req models.SendMessageRequest) error {
	if strings.TrimSpace(req.Text) == "" && req.TemplateId == 0 {
		return ErrEmptyMessage
	}
	if err := s.api.SendMessage(ctx, req); err != nil {
		return err
	}
	s.cache.InvalidateMutation("telegram.send")
	return nil
}

func (s *TelegramService) ResolveId(ctx context.Context, username string) (int64, error) {
	res, err := s.api.ResolveId(ctx, strings.TrimPrefix(username, "@"))
	if err != nil {
		return 0, err
	}
	return res.ChatId, nil
}

// TemplateVariables lists the {placeholder} names of a template content.
func TemplateVariables(content string) []string {
	matches := templateVarPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool)
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}
	return vars
}

// RenderTemplate substitutes {placeholder} values for a preview. Unknown
// placeholders stay as-is, the server does the real substitution on send.
func RenderTemplate(content string, vars map[string]string) string {
	return templateVarPattern.ReplaceAllStringFunc(content, func(m string) string {
		name := strings.Trim(m, "{}")
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}
