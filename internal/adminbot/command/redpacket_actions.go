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
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var pendingExtend = make(map[int64]string)

type RedPacketActionsCommand struct {
	bt *bot.Bot
	rs *services.RedPacketService
}

func NewRedPacketActionsCommand(bt *bot.Bot, rs *services.RedPacketService) *RedPacketActionsCommand {
	return &RedPacketActionsCommand{
		bt: bt,
		rs: rs,
	}
}

func (c *RedPacketActionsCommand) Refund(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	uuid := callbackTail(callback.Data)
	if err := c.rs.Refund(ctx, uuid); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Средства возвращены отправителю")
}

func (c *RedPacketActionsCommand) AskExtendHours(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	pendingExtend[chatId] = callbackTail(callback.Data)
	userstate.CurrentState[chatId] = userstate.EnterExtendHours
	util.SendTextMessage(c.bt, uint64(chatId), "На сколько часов продлить конверт?")
}

func (c *RedPacketActionsCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	uuid, ok := pendingExtend[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	hours, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil || hours <= 0 {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Введите целое число часов больше нуля:")
		return
	}
	delete(pendingExtend, chatId)
	userstate.ResetState(chatId)

	if err := c.rs.Extend(ctx, uuid, hours); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), fmt.Sprintf("✅ Конверт продлен на %d ч.", hours))
}

func (c *RedPacketActionsCommand) Complete(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	uuid := callbackTail(callback.Data)
	if err := c.rs.Complete(ctx, uuid); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Конверт завершен, остаток возвращен")
}

// AskDelete shows the confirm step, Delete runs after the confirm tap.
func (c *RedPacketActionsCommand) AskDelete(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	uuid := callbackTail(callback.Data)
	markup := util.CreateInlineMarup(
		2,
		util.CreateDefaultButton(buttons.RpDeleteOkId+":"+uuid, "🗑 Да, удалить"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Отмена"),
	)
	util.SendTextMessageMarkup(
		c.bt,
		uint64(chatId),
		fmt.Sprintf("Удалить конверт <code>%v</code> безвозвратно?", uuid),
		markup,
	)
}

func (c *RedPacketActionsCommand) Delete(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	uuid := callbackTail(callback.Data)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)

	if err := c.rs.Delete(ctx, uuid); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Конверт удален")
}
