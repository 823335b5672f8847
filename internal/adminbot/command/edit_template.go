package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/userstate"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type tplDraft struct {
	templateId uint64
	name       string
	isActive   bool
}

var pendingTpl = make(map[int64]*tplDraft)

type EditTemplateCommand struct {
	bt *bot.Bot
	tg *services.TelegramService
}

func NewEditTemplateCommand(bt *bot.Bot, tg *services.TelegramService) *EditTemplateCommand {
	return &EditTemplateCommand{
		bt: bt,
		tg: tg,
	}
}

func (c *EditTemplateCommand) StartCreate(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	pendingTpl[chatId] = &tplDraft{}
	userstate.CurrentState[chatId] = userstate.EnterTplName
	util.SendTextMessage(c.bt, uint64(chatId), "Введите название шаблона:")
}

// StartEdit keeps the existing name and asks only for new content.
func (c *EditTemplateCommand) StartEdit(ctx context.Context, callback *models.CallbackQuery, tpl *appModels.MessageTemplate) {
	chatId := callback.From.ID
	pendingTpl[chatId] = &tplDraft{
		templateId: tpl.Id,
		name:       tpl.Name,
		isActive:   tpl.IsActive,
	}
	userstate.CurrentState[chatId] = userstate.EnterTplContent
	util.SendTextMessage(c.bt, uint64(chatId),
		fmt.Sprintf("Введите новый текст шаблона <b>%v</b>.\nПеременные в фигурных скобках: {username}, {amount} и т.д.", tpl.Name))
}

func (c *EditTemplateCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	draft, ok := pendingTpl[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	switch userstate.CurrentState[chatId] {
	case userstate.EnterTplName:
		name := strings.TrimSpace(msg.Text)
		if name == "" {
			util.SendTextMessage(c.bt, uint64(chatId), "Название не может быть пустым. Введите название шаблона:")
			return
		}
		draft.name = name
		userstate.CurrentState[chatId] = userstate.EnterTplContent
		util.SendTextMessage(c.bt, uint64(chatId),
			"Введите текст шаблона.\nПеременные в фигурных скобках: {username}, {amount} и т.д.")

	case userstate.EnterTplContent:
		content := strings.TrimSpace(msg.Text)
		if content == "" {
			util.SendTextMessage(c.bt, uint64(chatId), "Текст не может быть пустым. Введите текст шаблона:")
			return
		}

		req := appModels.TemplateRequest{
			Name:     draft.name,
			Content:  content,
			IsActive: draft.isActive,
		}

		var err error
		if draft.templateId > 0 {
			err = c.tg.UpdateTemplate(ctx, draft.templateId, req)
		} else {
			err = c.tg.CreateTemplate(ctx, req)
		}

		delete(pendingTpl, chatId)
		userstate.ResetState(chatId)

		if err != nil {
			notifyError(c.bt, chatId, err)
			return
		}
		util.SendTextMessage(c.bt, uint64(chatId),
			fmt.Sprintf("✅ Шаблон <b>%v</b> сохранен\n\nПредпросмотр:\n%v", draft.name, templatePreview(content)))
	}
}

// templatePreview substitutes every placeholder with a sample value so the
// operator sees the message shape before anything is sent.
func templatePreview(content string) string {
	vars := services.TemplateVariables(content)
	sample := make(map[string]string, len(vars))
	for _, v := range vars {
		sample[v] = "«" + v + "»"
	}
	return services.RenderTemplate(content, sample)
}
