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

var currentPageInvite = make(map[int64]int)

type ListInvitesCommand struct {
	bt *bot.Bot
	is *services.InviteService
}

func NewListInvitesCommand(bt *bot.Bot, is *services.InviteService) *ListInvitesCommand {
	return &ListInvitesCommand{
		bt: bt,
		is: is,
	}
}

func (c *ListInvitesCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageInvite[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListInvitesCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageInvite[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListInvitesCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageInvite[chatId] = util.BackPage(currentPageInvite[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListInvitesCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageInvite, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListInvitesCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageInvite[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.is.Records(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageInvite[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 <b>Приглашения</b>\nНайдено: %d\n\n", res.Data.Total))
	for _, r := range res.Data.Items {
		sb.WriteString(fmt.Sprintf("%v → %v, +%d баллов [%v]\n",
			r.InviterUsername, r.InviteeUsername, r.RewardPoints, util.FormatDate(r.CreatedAt)))
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageInvite,
		buttons.BackPageInvite,
		buttons.CloseListInvite,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}
