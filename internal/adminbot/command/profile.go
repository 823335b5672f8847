package command

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type ProfileCommand struct {
	bt   *bot.Bot
	auth *services.AuthService
}

func NewProfileCommand(bt *bot.Bot, auth *services.AuthService) *ProfileCommand {
	return &ProfileCommand{
		bt:   bt,
		auth: auth,
	}
}

func (c *ProfileCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	admin, err := c.auth.Me(ctx)
	if err != nil {
		notifyError(c.bt, chatId, err)
		return
	}

	text := fmt.Sprintf(
		"🧑‍💻 <b>Профиль оператора</b>\n\nЛогин: <b>%s</b>\nРоль: %s\nID: <code>%d</code>",
		admin.Username,
		admin.Role,
		admin.Id,
	)
	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.LogoutId, "🚪 Выйти"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
}

func (c *ProfileCommand) Logout(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	c.auth.Logout()
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Вы вышли из панели. Для входа выполните /login")
}
