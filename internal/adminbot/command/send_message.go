package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var pendingSend = make(map[int64]*appModels.SendMessageRequest)

type SendMessageCommand struct {
	bt *bot.Bot
	tg *services.TelegramService
}

func NewSendMessageCommand(bt *bot.Bot, tg *services.TelegramService) *SendMessageCommand {
	return &SendMessageCommand{
		bt: bt,
		tg: tg,
	}
}

func (c *SendMessageCommand) Start(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	pendingSend[chatId] = &appModels.SendMessageRequest{}
	userstate.CurrentState[chatId] = userstate.EnterSendTarget
	util.SendTextMessage(c.bt, uint64(chatId), "Кому отправить? Введите chat id или @username:")
}

func (c *SendMessageCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	req, ok := pendingSend[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	switch userstate.CurrentState[chatId] {
	case userstate.EnterSendTarget:
		target := strings.TrimSpace(msg.Text)
		if strings.HasPrefix(target, "@") {
			resolved, err := c.tg.ResolveId(ctx, target)
			if err != nil {
				notifyError(c.bt, chatId, err)
				return
			}
			req.ChatId = resolved
		} else {
			id, err := strconv.ParseInt(target, 10, 64)
			if err != nil {
				util.SendTextMessage(c.bt, uint64(chatId), "❌ Введите числовой chat id или @username:")
				return
			}
			req.ChatId = id
		}
		userstate.CurrentState[chatId] = userstate.EnterSendText
		util.SendTextMessage(c.bt, uint64(chatId), "Введите текст сообщения:")
	case userstate.EnterSendText:
		req.Text = strings.TrimSpace(msg.Text)
		if req.Text == "" {
			util.SendTextMessage(c.bt, uint64(chatId), "❌ Текст не может быть пустым. Введите текст:")
			return
		}
		userstate.ResetState(chatId)

		markup := util.CreateInlineMarup(
			2,
			util.CreateDefaultButton(buttons.SendConfirmId, "✅ Отправить"),
			util.CreateDefaultButton(buttons.SendCancelId, "❌ Отмена"),
		)
		util.SendTextMessageMarkup(c.bt, uint64(chatId), fmt.Sprintf(
			"Отправить в чат <code>%d</code>:\n\n%v",
			req.ChatId,
			req.Text,
		), markup)
	}
}

func (c *SendMessageCommand) Confirm(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	req, ok := pendingSend[chatId]
	if !ok {
		return
	}
	delete(pendingSend, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)

	if err := c.tg.Send(ctx, *req); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Сообщение отправлено")
}

func (c *SendMessageCommand) Cancel(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(pendingSend, chatId)
	userstate.ResetState(chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}
