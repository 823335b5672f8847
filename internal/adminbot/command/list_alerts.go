package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/config"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var currentPageAlerts = make(map[int64]int)
var pendingAlertResolve = make(map[int64]uint64)

type ListAlertsCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewListAlertsCommand(bt *bot.Bot, ss *services.SecurityService) *ListAlertsCommand {
	return &ListAlertsCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *ListAlertsCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageAlerts[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListAlertsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageAlerts[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListAlertsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageAlerts[chatId] = util.BackPage(currentPageAlerts[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListAlertsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageAlerts, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

// AskResolveNote starts the resolve flow: the note is mandatory.
func (c *ListAlertsCommand) AskResolveNote(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	alertId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad alert callback data: ", callback.Data)
		return
	}
	pendingAlertResolve[chatId] = alertId
	userstate.CurrentState[chatId] = userstate.EnterAlertNote
	util.SendTextMessage(c.bt, uint64(chatId), "Опишите, как алерт был решен:")
}

func (c *ListAlertsCommand) ApplyResolveNote(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	alertId, ok := pendingAlertResolve[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	note := strings.TrimSpace(msg.Text)
	if note == "" {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Комментарий обязателен. Опишите решение:")
		return
	}
	delete(pendingAlertResolve, chatId)
	userstate.ResetState(chatId)

	if err := c.ss.AlertAction(ctx, alertId, services.AlertActionResolve, note); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Алерт закрыт")
}

func (c *ListAlertsCommand) Dismiss(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.AlertActionDismiss, "✅ Алерт отклонен")
}

func (c *ListAlertsCommand) Escalate(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.AlertActionEscalate, "✅ Алерт эскалирован")
}

func (c *ListAlertsCommand) runAction(ctx context.Context, callback *models.CallbackQuery, action, okText string) {
	chatId := callback.From.ID
	alertId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad alert callback data: ", callback.Data)
		return
	}

	if err := c.ss.AlertAction(ctx, alertId, action, ""); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), okText)
}

func (c *ListAlertsCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageAlerts[chatId]
	if page == 0 {
		page = 1
	}
	resolved := false
	filter := appModels.AlertFilter{Resolved: &resolved}
	filter.Page = page
	filter.PageSize = config.DEFAULT_PAGE_SIZE

	res := c.ss.Alerts(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageAlerts[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🚨 <b>Открытые алерты</b>\nНайдено: %d\n\n", res.Data.Total))

	rows := make([][]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for i := range res.Data.Items {
		a := &res.Data.Items[i]
		sb.WriteString(util.AlertInfo(a) + "\n\n")

		// escalation past critical is not a thing, the button disappears
		row := []models.InlineKeyboardButton{
			util.CreateDefaultButton(suffixed(buttons.AlertResolveId, a.Id), fmt.Sprintf("✅ #%d", a.Id)),
			util.CreateDefaultButton(suffixed(buttons.AlertDismissId, a.Id), fmt.Sprintf("🚫 #%d", a.Id)),
		}
		if c.ss.CanEscalate(a) {
			row = append(row, util.CreateDefaultButton(suffixed(buttons.AlertEscalateId, a.Id), fmt.Sprintf("⬆️ #%d", a.Id)))
		}
		rows = append(rows, row)
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageAlerts,
		buttons.BackPageAlerts,
		buttons.CloseListAlerts,
	)
	markup.InlineKeyboard = append(rows, markup.InlineKeyboard...)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}
