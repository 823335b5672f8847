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

var currentPageTgMsg = make(map[int64]int)

type ListTgMessagesCommand struct {
	bt *bot.Bot
	tg *services.TelegramService
}

func NewListTgMessagesCommand(bt *bot.Bot, tg *services.TelegramService) *ListTgMessagesCommand {
	return &ListTgMessagesCommand{
		bt: bt,
		tg: tg,
	}
}

func (c *ListTgMessagesCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTgMsg[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListTgMessagesCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTgMsg[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTgMessagesCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTgMsg[chatId] = util.BackPage(currentPageTgMsg[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTgMessagesCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageTgMsg, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListTgMessagesCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageTgMsg[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.tg.Messages(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageTgMsg[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📨 <b>История сообщений</b>\nНайдено: %d\n\n", res.Data.Total))
	for _, m := range res.Data.Items {
		target := m.ChatTitle
		if target == "" {
			target = fmt.Sprint(m.ChatId)
		}
		text := m.Text
		if len([]rune(text)) > 60 {
			text = string([]rune(text)[:60]) + "…"
		}
		sb.WriteString(fmt.Sprintf("→ %v [%v]\n%v\n\n", target, util.FormatDate(m.CreatedAt), text))
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageTgMsg,
		buttons.BackPageTgMsg,
		buttons.CloseListTgMsg,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}
