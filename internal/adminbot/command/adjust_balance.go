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

var pendingAdjust = make(map[int64]*appModels.AdjustBalanceRequest)

type AdjustBalanceCommand struct {
	bt *bot.Bot
	us *services.UserService
}

func NewAdjustBalanceCommand(bt *bot.Bot, us *services.UserService) *AdjustBalanceCommand {
	return &AdjustBalanceCommand{
		bt: bt,
		us: us,
	}
}

func (c *AdjustBalanceCommand) Start(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad adjust callback data: ", callback.Data)
		return
	}
	pendingAdjust[chatId] = &appModels.AdjustBalanceRequest{UserId: userId}

	markup := util.CreateInlineMarup(
		2,
		util.CreateDefaultButton(buttons.AdjustCurrencyId+":"+appModels.CurrencyUsdt, "USDT"),
		util.CreateDefaultButton(buttons.AdjustCurrencyId+":"+appModels.CurrencyTon, "TON"),
		util.CreateDefaultButton(buttons.AdjustCurrencyId+":"+appModels.CurrencyStars, "⭐ Stars"),
		util.CreateDefaultButton(buttons.AdjustCurrencyId+":"+appModels.CurrencyPoints, "Баллы"),
		util.CreateDefaultButton(buttons.AdjustCancelId, "❌ Отмена"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), "Выберите валюту корректировки:", markup)
}

func (c *AdjustBalanceCommand) SelectCurrency(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	req, ok := pendingAdjust[chatId]
	if !ok {
		return
	}

	req.Currency = callback.Data[strings.LastIndex(callback.Data, ":")+1:]
	userstate.CurrentState[chatId] = userstate.EnterAdjustAmount
	util.SendTextMessage(c.bt, uint64(chatId), "Введите сумму (отрицательная спишет с баланса):")
}

func (c *AdjustBalanceCommand) Cancel(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(pendingAdjust, chatId)
	userstate.ResetState(chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *AdjustBalanceCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	req, ok := pendingAdjust[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	switch userstate.CurrentState[chatId] {
	case userstate.EnterAdjustAmount:
		amount, err := strconv.ParseFloat(strings.TrimSpace(msg.Text), 64)
		if err != nil || amount == 0 {
			util.SendTextMessage(c.bt, uint64(chatId), "❌ Некорректная сумма. Введите число, например 10.5 или -3:")
			return
		}
		req.Amount = amount
		userstate.CurrentState[chatId] = userstate.EnterAdjustReason
		util.SendTextMessage(c.bt, uint64(chatId), "Укажите причину корректировки:")
	case userstate.EnterAdjustReason:
		req.Reason = strings.TrimSpace(msg.Text)
		if req.Reason == "" {
			util.SendTextMessage(c.bt, uint64(chatId), "❌ Причина не может быть пустой. Укажите причину:")
			return
		}
		delete(pendingAdjust, chatId)
		userstate.ResetState(chatId)

		if err := c.us.AdjustBalance(ctx, *req); err != nil {
			notifyError(c.bt, chatId, err)
			return
		}
		util.SendTextMessage(c.bt, uint64(chatId), fmt.Sprintf(
			"✅ Баланс пользователя %d изменен на %v",
			req.UserId,
			util.FormatAmount(req.Amount, req.Currency),
		))
	}
}
