package command

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var pendingBan = make(map[int64]uint64)

type BanUserCommand struct {
	bt *bot.Bot
	us *services.UserService
}

func NewBanUserCommand(bt *bot.Bot, us *services.UserService) *BanUserCommand {
	return &BanUserCommand{
		bt: bt,
		us: us,
	}
}

func (c *BanUserCommand) AskReason(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad ban callback data: ", callback.Data)
		return
	}
	pendingBan[chatId] = userId
	userstate.CurrentState[chatId] = userstate.EnterBanReason
	util.SendTextMessage(c.bt, uint64(chatId), "Укажите причину бана:")
}

func (c *BanUserCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	userId := pendingBan[chatId]
	delete(pendingBan, chatId)
	userstate.ResetState(chatId)

	reason := strings.TrimSpace(msg.Text)
	if reason == "" {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Причина не может быть пустой. Бан отменен")
		return
	}

	if err := c.us.SetBanned(ctx, userId, true, reason); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Пользователь забанен")
}

func (c *BanUserCommand) Unban(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad unban callback data: ", callback.Data)
		return
	}

	if err := c.us.SetBanned(ctx, userId, false, ""); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Пользователь разбанен")
}
