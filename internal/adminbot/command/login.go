package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var pendingLogin = make(map[int64]string)

type LoginCommand struct {
	bt   *bot.Bot
	auth *services.AuthService
}

func NewLoginCommand(bt *bot.Bot, auth *services.AuthService) *LoginCommand {
	return &LoginCommand{
		bt:   bt,
		auth: auth,
	}
}

func (c *LoginCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	state, ok := userstate.CurrentState[chatId]
	if !ok {
		userstate.CurrentState[chatId] = userstate.EnterLogin
		util.SendTextMessage(c.bt, uint64(chatId), "Введите логин оператора:")
		return
	}

	switch state {
	case userstate.EnterLogin:
		login := strings.TrimSpace(msg.Text)
		if login == "" {
			util.SendTextMessage(c.bt, uint64(chatId), "❌ Логин не может быть пустым. Введите логин:")
			return
		}
		pendingLogin[chatId] = login
		userstate.CurrentState[chatId] = userstate.EnterPassword
		util.SendTextMessage(c.bt, uint64(chatId), "Введите пароль:")
	case userstate.EnterPassword:
		login := pendingLogin[chatId]
		delete(pendingLogin, chatId)
		userstate.ResetState(chatId)
		admin, err := c.auth.Login(ctx, login, msg.Text)
		if err != nil {
			notifyError(c.bt, chatId, err)
			return
		}
		util.SendTextMessage(
			c.bt,
			uint64(chatId),
			fmt.Sprintf("✅ Вы вошли как <b>%s</b> (%s)", admin.Username, admin.Role),
		)
	}
}
