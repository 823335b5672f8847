package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var pendingLiqAdjust = make(map[int64]*appModels.LiquidityAdjustRequest)

type AdjustLiquidityCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewAdjustLiquidityCommand(bt *bot.Bot, ss *services.SecurityService) *AdjustLiquidityCommand {
	return &AdjustLiquidityCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *AdjustLiquidityCommand) Start(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	entryId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad liquidity adjust callback data: ", callback.Data)
		return
	}
	pendingLiqAdjust[chatId] = &appModels.LiquidityAdjustRequest{EntryId: entryId}

	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.LiqStatusId+":"+appModels.LiquidityLocked, "🔒 Заблокировано"),
		util.CreateDefaultButton(buttons.LiqStatusId+":"+appModels.LiquidityCooldown, "⏳ Остывание"),
		util.CreateDefaultButton(buttons.LiqStatusId+":"+appModels.LiquidityWithdrawable, "✅ Доступно к выводу"),
		util.CreateDefaultButton(buttons.LiqCancelId, "❌ Отмена"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), "Выберите новый статус записи:", markup)
}

func (c *AdjustLiquidityCommand) SelectStatus(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	req, ok := pendingLiqAdjust[chatId]
	if !ok {
		return
	}

	req.NewStatus = callbackTail(callback.Data)
	userstate.CurrentState[chatId] = userstate.EnterLiquidityReason
	util.SendTextMessage(c.bt, uint64(chatId), "Укажите причину смены статуса (обязательно):")
}

func (c *AdjustLiquidityCommand) Cancel(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(pendingLiqAdjust, chatId)
	userstate.ResetState(chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *AdjustLiquidityCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	req, ok := pendingLiqAdjust[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	reason := strings.TrimSpace(msg.Text)
	if reason == "" {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Причина обязательна. Укажите причину:")
		return
	}
	delete(pendingLiqAdjust, chatId)
	userstate.ResetState(chatId)

	if err := c.ss.AdjustLiquidity(ctx, req.EntryId, req.NewStatus, reason); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), fmt.Sprintf(
		"✅ Статус записи #%d изменен: %v",
		req.EntryId,
		util.LiquidityStatusName(req.NewStatus),
	))
}
