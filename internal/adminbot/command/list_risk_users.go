package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/config"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var currentPageRisk = make(map[int64]int)

type ListRiskUsersCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewListRiskUsersCommand(bt *bot.Bot, ss *services.SecurityService) *ListRiskUsersCommand {
	return &ListRiskUsersCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *ListRiskUsersCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageRisk[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListRiskUsersCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageRisk[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListRiskUsersCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageRisk[chatId] = util.BackPage(currentPageRisk[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListRiskUsersCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageRisk, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListRiskUsersCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageRisk[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.ss.RiskUsers(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageRisk[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠️ <b>Зона риска</b>\nНайдено: %d\n\n", res.Data.Total))

	items := make([]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for _, u := range res.Data.Items {
		sb.WriteString(fmt.Sprintf("%v %v (id %d) — риск %.1f\n",
			util.RiskLevelIcon(u.RiskLevel), u.Username, u.UserId, u.RiskScore))
		if len(u.Reasons) > 0 {
			sb.WriteString("Причины: " + strings.Join(u.Reasons, ", ") + "\n")
		}
		sb.WriteString("\n")

		items = append(items, util.CreateDefaultButton(
			suffixed(buttons.UserDataButton, u.UserId),
			fmt.Sprintf("%v %v", util.RiskLevelIcon(u.RiskLevel), u.Username),
		))
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageRisk,
		buttons.BackPageRisk,
		buttons.CloseListRisk,
		items...,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}
