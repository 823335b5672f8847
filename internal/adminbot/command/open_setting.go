package command

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/store"
	"redadmin/internal/util"
)

type OpenSettingCommand struct {
	bt    *bot.Bot
	theme *store.ThemeStore
}

func NewOpenSettingCommand(bt *bot.Bot, theme *store.ThemeStore) *OpenSettingCommand {
	return &OpenSettingCommand{
		bt:    bt,
		theme: theme,
	}
}

func (c *OpenSettingCommand) Execute(ctx context.Context, msg *models.Message) {
	c.show(ctx, msg.Chat.ID, 0)
}

func (c *OpenSettingCommand) SetLight(ctx context.Context, callback *models.CallbackQuery) {
	c.setTheme(ctx, callback, store.ThemeLight)
}

func (c *OpenSettingCommand) SetDark(ctx context.Context, callback *models.CallbackQuery) {
	c.setTheme(ctx, callback, store.ThemeDark)
}

func (c *OpenSettingCommand) setTheme(ctx context.Context, callback *models.CallbackQuery, theme string) {
	chatId := callback.From.ID
	c.theme.Set(theme)
	c.show(ctx, chatId, callback.Message.Message.ID)
}

func (c *OpenSettingCommand) show(ctx context.Context, chatId int64, messageId int) {
	current := "☀️ светлая"
	if c.theme.Theme() == store.ThemeDark {
		current = "🌙 темная"
	}
	text := fmt.Sprintf("⚙️ <b>Настройки</b>\n\nТема оформления: %v\nТемная тема заменяет цветные статусы текстовыми", current)

	markup := util.CreateInlineMarup(
		2,
		util.CreateDefaultButton(buttons.ThemeLightId, "☀️ Светлая"),
		util.CreateDefaultButton(buttons.ThemeDarkId, "🌙 Темная"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, text, markup)
}
