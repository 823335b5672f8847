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
	"redadmin/internal/util"
)

var currentPageGroups = make(map[int64]int)

// groupEnabled remembers the displayed switch state so the toggle callback
// does not need a second fetch.
var groupEnabled = make(map[uint64]bool)

type ListGroupsCommand struct {
	bt *bot.Bot
	tg *services.TelegramService
}

func NewListGroupsCommand(bt *bot.Bot, tg *services.TelegramService) *ListGroupsCommand {
	return &ListGroupsCommand{
		bt: bt,
		tg: tg,
	}
}

func (c *ListGroupsCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageGroups[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListGroupsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageGroups[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListGroupsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageGroups[chatId] = util.BackPage(currentPageGroups[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListGroupsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageGroups, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListGroupsCommand) Toggle(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	groupId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad group callback data: ", callback.Data)
		return
	}

	if err := c.tg.SetGroupEnabled(ctx, groupId, !groupEnabled[groupId]); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListGroupsCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageGroups[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.tg.Groups(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageGroups[chatId] = page

	items := make([]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for _, g := range res.Data.Items {
		groupEnabled[g.Id] = g.IsEnabled
		state := "🔕"
		if g.IsEnabled {
			state = "🔔"
		}
		items = append(items, util.CreateDefaultButton(
			suffixed(buttons.GroupToggleId, g.Id),
			fmt.Sprintf("%v %v (%d)", state, g.Title, g.MemberCount),
		))
	}

	text := fmt.Sprintf("👥 <b>Группы</b>\nНайдено: %d\nНажмите на группу, чтобы включить или выключить конверты в ней", res.Data.Total)
	if res.Stale {
		text += staleWarning
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageGroups,
		buttons.BackPageGroups,
		buttons.CloseListGroups,
		items...,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, text, markup)
}
