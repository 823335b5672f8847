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

var currentPageTx = make(map[int64]int)
var currentTxFilter = make(map[int64]appModels.TransactionFilter)

var txCurrencyCycle = []string{
	"",
	appModels.CurrencyUsdt,
	appModels.CurrencyTon,
	appModels.CurrencyStars,
	appModels.CurrencyPoints,
}

type ListTransactionsCommand struct {
	bt *bot.Bot
	ts *services.TransactionService
}

func NewListTransactionsCommand(bt *bot.Bot, ts *services.TransactionService) *ListTransactionsCommand {
	return &ListTransactionsCommand{
		bt: bt,
		ts: ts,
	}
}

func (c *ListTransactionsCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	delete(currentPageTx, chatId)
	delete(currentTxFilter, chatId)
	c.render(ctx, chatId, 0)
}

// OpenForUser opens the ledger pre-filtered by the user from the card button.
func (c *ListTransactionsCommand) OpenForUser(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad user tx callback data: ", callback.Data)
		return
	}
	currentTxFilter[chatId] = appModels.TransactionFilter{UserId: userId}
	currentPageTx[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListTransactionsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTx[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTransactionsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTx[chatId] = util.BackPage(currentPageTx[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTransactionsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageTx, chatId)
	delete(currentTxFilter, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListTransactionsCommand) CycleCurrency(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	filter := currentTxFilter[chatId]
	next := txCurrencyCycle[0]
	for i, currency := range txCurrencyCycle {
		if currency == filter.Currency && i+1 < len(txCurrencyCycle) {
			next = txCurrencyCycle[i+1]
			break
		}
	}
	filter.Currency = next
	currentTxFilter[chatId] = filter
	currentPageTx[chatId] = 1
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTransactionsCommand) Stats(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	statsRes := c.ts.Stats(ctx, false)
	if statsRes.Err != nil && !statsRes.Stale {
		notifyError(c.bt, chatId, statsRes.Err)
		return
	}
	s := statsRes.Data

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 <b>Статистика операций</b>\n\nВсего: %d\n", s.TotalCount))
	sb.WriteString("\n<b>Приход</b>\n")
	for currency, amount := range s.TotalIn {
		sb.WriteString(fmt.Sprintf("%v\n", util.FormatAmount(amount, currency)))
	}
	sb.WriteString("\n<b>Расход</b>\n")
	for currency, amount := range s.TotalOut {
		sb.WriteString(fmt.Sprintf("%v\n", util.FormatAmount(amount, currency)))
	}

	trendRes := c.ts.Trend(ctx, appModels.TrendFilter{}, false)
	if trendRes.Err == nil || trendRes.Stale {
		sb.WriteString("\n" + util.RenderTrend("Оборот за неделю", trendRes.Data))
	}
	if statsRes.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.CreateInlineMarup(1, util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"))
	util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
}

func (c *ListTransactionsCommand) ExportCsv(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	res := c.ts.List(ctx, c.filter(chatId), false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	data, err := util.TransactionsCsv(res.Data.Items)
	if err != nil {
		log.Error("error build transactions csv: ", err)
		return
	}
	util.SendDocument(c.bt, uint64(chatId), "transactions.csv", data, "Экспорт текущей страницы")
}

func (c *ListTransactionsCommand) render(ctx context.Context, chatId int64, messageId int) {
	filter := c.filter(chatId)
	res := c.ts.List(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page := util.ClampPage(filter.Page, res.Data.Total, filter.PageSize)
	currentPageTx[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📒 <b>Операции</b>\nНайдено: %d", res.Data.Total))
	if filter.Currency != "" {
		sb.WriteString(" | валюта: " + util.CurrencySuffix(filter.Currency))
	}
	if filter.UserId > 0 {
		sb.WriteString(fmt.Sprintf(" | пользователь %d", filter.UserId))
	}
	sb.WriteString("\n\n")
	for _, t := range res.Data.Items {
		sb.WriteString(util.TransactionLine(&t) + "\n")
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageTx,
		buttons.BackPageTx,
		buttons.CloseListTx,
	)
	markup.InlineKeyboard = append(
		[][]models.InlineKeyboardButton{{
			util.CreateDefaultButton(buttons.TxFilterCurId, "💱 Валюта"),
			util.CreateDefaultButton(buttons.TxStatsId, "📈 Статистика"),
			util.CreateDefaultButton(buttons.TxExportCsvId, "📎 CSV"),
		}},
		markup.InlineKeyboard...,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}

func (c *ListTransactionsCommand) filter(chatId int64) appModels.TransactionFilter {
	filter := currentTxFilter[chatId]
	filter.Page = currentPageTx[chatId]
	if filter.Page == 0 {
		filter.Page = 1
	}
	filter.PageSize = config.DEFAULT_PAGE_SIZE
	return filter
}
