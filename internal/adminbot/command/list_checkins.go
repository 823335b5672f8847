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

var currentPageCheckin = make(map[int64]int)

type ListCheckinsCommand struct {
	bt *bot.Bot
	cs *services.CheckinService
}

func NewListCheckinsCommand(bt *bot.Bot, cs *services.CheckinService) *ListCheckinsCommand {
	return &ListCheckinsCommand{
		bt: bt,
		cs: cs,
	}
}

func (c *ListCheckinsCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageCheckin[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListCheckinsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageCheckin[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListCheckinsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageCheckin[chatId] = util.BackPage(currentPageCheckin[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListCheckinsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageCheckin, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListCheckinsCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageCheckin[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.cs.Records(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageCheckin[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 <b>Чекины</b>\nНайдено: %d\n\n", res.Data.Total))
	for _, r := range res.Data.Items {
		sb.WriteString(fmt.Sprintf("%v — день %d, +%d баллов [%v]\n",
			r.Username, r.Day, r.RewardPoints, util.FormatDate(r.CreatedAt)))
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageCheckin,
		buttons.BackPageCheckin,
		buttons.CloseListCheckin,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}
