package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type OpenUserInfoCommand struct {
	bt *bot.Bot
	us *services.UserService
}

func NewOpenUserInfoCommand(bt *bot.Bot, us *services.UserService) *OpenUserInfoCommand {
	return &OpenUserInfoCommand{
		bt: bt,
		us: us,
	}
}

func (c *OpenUserInfoCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad user callback data: ", callback.Data)
		return
	}

	res := c.us.Get(ctx, userId, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}
	user := res.Data

	banBtn := util.CreateDefaultButton(suffixed(buttons.UserBanId, userId), "⛔ Забанить")
	if user.IsBanned {
		banBtn = util.CreateDefaultButton(suffixed(buttons.UserUnbanId, userId), "♻️ Разбанить")
	}

	markup := util.CreateInlineMarup(
		2,
		banBtn,
		util.CreateDefaultButton(suffixed(buttons.UserAdjustId, userId), "💰 Баланс"),
		util.CreateDefaultButton(suffixed(buttons.UserTxId, userId), "📒 Операции"),
		util.CreateDefaultButton(suffixed(buttons.UserInviteTreeId, userId), "🌳 Рефералы"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)

	text := util.UserInfo(user)
	if res.Stale {
		text += staleWarning
	}
	util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
}

// callbackId extracts the numeric tail of callback data like "USER_DATA:42".
func callbackId(data string) (uint64, error) {
	idx := strings.LastIndex(data, ":")
	return strconv.ParseUint(data[idx+1:], 10, 64)
}

func suffixed(buttonId string, id uint64) string {
	return buttonId + ":" + strconv.FormatUint(id, 10)
}
