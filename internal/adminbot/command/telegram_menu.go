package command

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/util"
)

type TelegramMenuCommand struct {
	bt *bot.Bot
}

func NewTelegramMenuCommand(bt *bot.Bot) *TelegramMenuCommand {
	return &TelegramMenuCommand{bt: bt}
}

func (c *TelegramMenuCommand) Execute(ctx context.Context, msg *models.Message) {
	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.TgGroupsId, "👥 Группы"),
		util.CreateDefaultButton(buttons.TgTemplatesId, "📝 Шаблоны"),
		util.CreateDefaultButton(buttons.TgMessagesId, "📨 История сообщений"),
		util.CreateDefaultButton(buttons.TgSendId, "✉️ Отправить сообщение"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(msg.Chat.ID), "✈️ <b>Telegram</b>\nВыберите раздел:", markup)
}
