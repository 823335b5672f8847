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

var currentPageLiq = make(map[int64]int)
var currentLiqStatus = make(map[int64]string)

var liqStatusCycle = []string{
	"",
	appModels.LiquidityLocked,
	appModels.LiquidityCooldown,
	appModels.LiquidityWithdrawable,
}

type ListLiquidityCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewListLiquidityCommand(bt *bot.Bot, ss *services.SecurityService) *ListLiquidityCommand {
	return &ListLiquidityCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *ListLiquidityCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageLiq[chatId] = 1
	delete(currentLiqStatus, chatId)
	c.render(ctx, chatId, 0)
}

func (c *ListLiquidityCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageLiq[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListLiquidityCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageLiq[chatId] = util.BackPage(currentPageLiq[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListLiquidityCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageLiq, chatId)
	delete(currentLiqStatus, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListLiquidityCommand) CycleFilter(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	current := currentLiqStatus[chatId]
	next := liqStatusCycle[0]
	for i, status := range liqStatusCycle {
		if status == current && i+1 < len(liqStatusCycle) {
			next = liqStatusCycle[i+1]
			break
		}
	}
	currentLiqStatus[chatId] = next
	currentPageLiq[chatId] = 1
	c.render(ctx, chatId, callback.Message.Message.ID)
}

// OpenEntry shows one entry with the admin override button.
func (c *ListLiquidityCommand) OpenEntry(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	entryId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad liquidity callback data: ", callback.Data)
		return
	}

	entry := c.find(ctx, chatId, entryId)
	if entry == nil {
		return
	}

	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(suffixed(buttons.LiqAdjustId, entry.Id), "🛠 Сменить статус"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), util.LiquidityEntryInfo(entry), markup)
}

func (c *ListLiquidityCommand) find(ctx context.Context, chatId int64, entryId uint64) *appModels.LiquidityEntry {
	res := c.ss.LiquidityEntries(ctx, c.filter(chatId), false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return nil
	}
	for i := range res.Data.Items {
		if res.Data.Items[i].Id == entryId {
			return &res.Data.Items[i]
		}
	}
	log.Error("liquidity entry not on current page: ", entryId)
	return nil
}

func (c *ListLiquidityCommand) render(ctx context.Context, chatId int64, messageId int) {
	filter := c.filter(chatId)
	res := c.ss.LiquidityEntries(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page := util.ClampPage(filter.Page, res.Data.Total, filter.PageSize)
	currentPageLiq[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💧 <b>Ликвидность</b>\nНайдено: %d\n", res.Data.Total))
	if statsRes := c.ss.LiquidityStats(ctx, false); statsRes.Err == nil || statsRes.Stale {
		s := statsRes.Data
		sb.WriteString(fmt.Sprintf(
			"🔒 %d (%v) | ⏳ %d (%v) | ✅ %d (%v)\n",
			s.LockedCount, util.FormatAmount(s.LockedAmount, appModels.CurrencyUsdt),
			s.CooldownCount, util.FormatAmount(s.CooldownAmount, appModels.CurrencyUsdt),
			s.WithdrawableCount, util.FormatAmount(s.WithdrawableAmount, appModels.CurrencyUsdt),
		))
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	items := make([]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for _, e := range res.Data.Items {
		items = append(items, util.CreateDefaultButton(
			suffixed(buttons.LiqDataButton, e.Id),
			fmt.Sprintf("%v %v | %v", util.LiquidityStatusName(e.WithdrawableStatus), e.Username, util.FormatAmount(e.Amount, e.Currency)),
		))
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageLiq,
		buttons.BackPageLiq,
		buttons.CloseListLiq,
		items...,
	)
	markup.InlineKeyboard = append(
		[][]models.InlineKeyboardButton{{
			util.CreateDefaultButton(buttons.LiqFilterId, "🔃 "+liqStatusLabel(filter.Status)),
		}},
		markup.InlineKeyboard...,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}

func (c *ListLiquidityCommand) filter(chatId int64) appModels.LiquidityFilter {
	filter := appModels.LiquidityFilter{Status: currentLiqStatus[chatId]}
	filter.Page = currentPageLiq[chatId]
	if filter.Page == 0 {
		filter.Page = 1
	}
	filter.PageSize = config.DEFAULT_PAGE_SIZE
	return filter
}

func liqStatusLabel(status string) string {
	switch status {
	case appModels.LiquidityLocked:
		return "заблокировано"
	case appModels.LiquidityCooldown:
		return "остывание"
	case appModels.LiquidityWithdrawable:
		return "доступно"
	default:
		return "все"
	}
}
