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

var currentPageIps = make(map[int64]int)

type ListIpSessionsCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewListIpSessionsCommand(bt *bot.Bot, ss *services.SecurityService) *ListIpSessionsCommand {
	return &ListIpSessionsCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *ListIpSessionsCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageIps[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListIpSessionsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageIps[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListIpSessionsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageIps[chatId] = util.BackPage(currentPageIps[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListIpSessionsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageIps, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListIpSessionsCommand) Block(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.IpActionBlock, "✅ IP заблокирован")
}

func (c *ListIpSessionsCommand) Unblock(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.IpActionUnblock, "✅ IP разблокирован")
}

func (c *ListIpSessionsCommand) runAction(ctx context.Context, callback *models.CallbackQuery, action, okText string) {
	chatId := callback.From.ID
	ip := callbackTail(callback.Data)

	if err := c.ss.IpAction(ctx, ip, action); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), okText)
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListIpSessionsCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageIps[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.IpSessionFilter{}
	filter.Page = page
	filter.PageSize = config.DEFAULT_PAGE_SIZE

	res := c.ss.IpSessions(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageIps[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🌐 <b>IP-сессии</b>\nНайдено: %d\n", res.Data.Total))
	if statsRes := c.ss.IpStats(ctx, false); statsRes.Err == nil || statsRes.Stale {
		s := statsRes.Data
		sb.WriteString(fmt.Sprintf("Всего IP: %d | заблокировано: %d | мультиаккаунт: %d\n",
			s.TotalIps, s.BlockedIps, s.MultiAccountIps))
	}
	sb.WriteString("\n")

	rows := make([][]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for _, s := range res.Data.Items {
		badge := ""
		if s.IsBlocked {
			badge = " ⛔"
		}
		sb.WriteString(fmt.Sprintf("<code>%v</code> (%v)%v\nАккаунтов: %d | риск %.1f | активность %v\n\n",
			s.Ip, s.Country, badge, s.UserCount, s.RiskScore, util.FormatDate(s.LastSeenAt)))

		if s.IsBlocked {
			rows = append(rows, []models.InlineKeyboardButton{
				util.CreateDefaultButton(buttons.IpUnblockId+":"+s.Ip, "♻️ "+s.Ip),
			})
		} else {
			rows = append(rows, []models.InlineKeyboardButton{
				util.CreateDefaultButton(buttons.IpBlockId+":"+s.Ip, "⛔ "+s.Ip),
			})
		}
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageIps,
		buttons.BackPageIps,
		buttons.CloseListIps,
	)
	markup.InlineKeyboard = append(rows, markup.InlineKeyboard...)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}
