package command

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/config"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/store"
	"redadmin/internal/util"
)

var currentPageRp = make(map[int64]int)
var currentRpStatus = make(map[int64]string)

// rpStatusCycle is the order the status filter button walks through.
var rpStatusCycle = []string{
	"",
	appModels.PacketStatusActive,
	appModels.PacketStatusCompleted,
	appModels.PacketStatusExpired,
	appModels.PacketStatusRefunded,
}

type ListRedPacketsCommand struct {
	bt    *bot.Bot
	rs    *services.RedPacketService
	theme *store.ThemeStore
}

func NewListRedPacketsCommand(bt *bot.Bot, rs *services.RedPacketService, theme *store.ThemeStore) *ListRedPacketsCommand {
	return &ListRedPacketsCommand{
		bt:    bt,
		rs:    rs,
		theme: theme,
	}
}

func (c *ListRedPacketsCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	delete(currentPageRp, chatId)
	delete(currentRpStatus, chatId)
	c.render(ctx, chatId, 0)
}

func (c *ListRedPacketsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageRp[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListRedPacketsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageRp[chatId] = util.BackPage(currentPageRp[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListRedPacketsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageRp, chatId)
	delete(currentRpStatus, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

// CycleFilter advances the status filter to the next value in the cycle.
func (c *ListRedPacketsCommand) CycleFilter(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	current := currentRpStatus[chatId]
	next := rpStatusCycle[0]
	for i, status := range rpStatusCycle {
		if status == current && i+1 < len(rpStatusCycle) {
			next = rpStatusCycle[i+1]
			break
		}
	}
	currentRpStatus[chatId] = next
	currentPageRp[chatId] = 1
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListRedPacketsCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageRp[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.RedPacketFilter{Status: currentRpStatus[chatId]}
	filter.Page = page
	filter.PageSize = config.DEFAULT_PAGE_SIZE

	res := c.rs.List(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageRp[chatId] = page

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageRp,
		buttons.BackPageRp,
		buttons.CloseListRp,
		c.generatePacketButtons(res.Data.Items)...,
	)
	markup.InlineKeyboard = append(
		[][]models.InlineKeyboardButton{{
			util.CreateDefaultButton(buttons.RpFilterId, "🔃 "+rpStatusLabel(filter.Status)),
			util.CreateDefaultButton(buttons.RpStatsId, "📈 Статистика"),
		}},
		markup.InlineKeyboard...,
	)

	text := fmt.Sprintf("🧧 <b>Конверты</b>\nНайдено: %d | фильтр: %v", res.Data.Total, rpStatusLabel(filter.Status))
	if res.Stale {
		text += staleWarning
	}

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, text, markup)
}

func (c *ListRedPacketsCommand) generatePacketButtons(packets []appModels.RedPacket) []models.InlineKeyboardButton {
	theme := c.theme.Theme()
	result := make([]models.InlineKeyboardButton, 0, len(packets))
	for _, p := range packets {
		label := fmt.Sprintf("%v %v | %v | %d/%d",
			util.PacketStatusIcon(p.Status, theme),
			p.SenderUsername,
			util.FormatAmount(p.TotalAmount, p.Currency),
			p.ClaimedCount,
			p.TotalCount,
		)
		result = append(result, util.CreateDefaultButton(buttons.RpDataButton+":"+p.Uuid, label))
	}
	return result
}

func rpStatusLabel(status string) string {
	switch status {
	case appModels.PacketStatusActive:
		return "активные"
	case appModels.PacketStatusCompleted:
		return "завершенные"
	case appModels.PacketStatusExpired:
		return "истекшие"
	case appModels.PacketStatusRefunded:
		return "возвраты"
	default:
		return "все"
	}
}
