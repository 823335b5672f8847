package command

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/services"
	"redadmin/internal/store"
	"redadmin/internal/util"
)

type OpenRedPacketInfoCommand struct {
	bt    *bot.Bot
	rs    *services.RedPacketService
	theme *store.ThemeStore
}

func NewOpenRedPacketInfoCommand(bt *bot.Bot, rs *services.RedPacketService, theme *store.ThemeStore) *OpenRedPacketInfoCommand {
	return &OpenRedPacketInfoCommand{
		bt:    bt,
		rs:    rs,
		theme: theme,
	}
}

func (c *OpenRedPacketInfoCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	uuid := callbackTail(callback.Data)

	res := c.rs.Get(ctx, uuid, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}
	packet := res.Data

	// Only actions the packet state allows get a button at all.
	actions := make([]models.InlineKeyboardButton, 0, 5)
	if c.rs.CanRefund(packet) {
		actions = append(actions, util.CreateDefaultButton(buttons.RpRefundId+":"+uuid, "↩️ Возврат"))
	}
	if c.rs.CanExtend(packet) {
		actions = append(actions, util.CreateDefaultButton(buttons.RpExtendId+":"+uuid, "⏱ Продлить"))
	}
	if c.rs.CanComplete(packet) {
		actions = append(actions, util.CreateDefaultButton(buttons.RpCompleteId+":"+uuid, "🏁 Завершить"))
	}
	actions = append(actions,
		util.CreateDefaultButton(buttons.RpDeleteId+":"+uuid, "🗑 Удалить"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)

	text := util.RedPacketInfo(packet, c.theme.Theme())
	if res.Stale {
		text += staleWarning
	}
	util.SendTextMessageMarkup(c.bt, uint64(chatId), text, util.CreateInlineMarup(2, actions...))
}

func callbackTail(data string) string {
	return data[strings.LastIndex(data, ":")+1:]
}
