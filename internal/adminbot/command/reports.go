package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/config"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var currentPageReports = make(map[int64]int)
var pendingReportType = make(map[int64]string)

var reportTypes = map[string]string{
	"users":        "👥 Пользователи",
	"transactions": "📒 Операции",
	"redpackets":   "🧧 Конверты",
}

type ReportsCommand struct {
	bt *bot.Bot
	rs *services.ReportService
}

func NewReportsCommand(bt *bot.Bot, rs *services.ReportService) *ReportsCommand {
	return &ReportsCommand{
		bt: bt,
		rs: rs,
	}
}

func (c *ReportsCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	currentPageReports[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ReportsCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageReports[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ReportsCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageReports[chatId] = util.BackPage(currentPageReports[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ReportsCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageReports, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ReportsCommand) AskGenerate(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	reportType := callbackTail(callback.Data)
	if _, ok := reportTypes[reportType]; !ok {
		// first tap shows the type picker
		markup := util.CreateInlineMarup(
			1,
			util.CreateDefaultButton(buttons.ReportGenId+":users", reportTypes["users"]),
			util.CreateDefaultButton(buttons.ReportGenId+":transactions", reportTypes["transactions"]),
			util.CreateDefaultButton(buttons.ReportGenId+":redpackets", reportTypes["redpackets"]),
			util.CreateDefaultButton(buttons.DefCloseId, "❌ Отмена"),
		)
		util.SendTextMessageMarkup(c.bt, uint64(chatId), "Какой отчет сформировать?", markup)
		return
	}

	pendingReportType[chatId] = reportType
	userstate.CurrentState[chatId] = userstate.EnterReportPeriod
	util.SendTextMessage(
		c.bt,
		uint64(chatId),
		"За какой период? Введите даты в формате 2026-08-01 2026-08-31 или «месяц»:",
	)
}

func (c *ReportsCommand) ApplyPeriod(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	reportType, ok := pendingReportType[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	dateFrom, dateTo, err := parsePeriod(msg.Text)
	if err != nil {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Не удалось разобрать период. Введите две даты или «месяц»:")
		return
	}
	delete(pendingReportType, chatId)
	userstate.ResetState(chatId)

	if err := c.rs.Generate(ctx, reportType, dateFrom, dateTo); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Отчет поставлен в очередь. Обновите список, чтобы скачать")
}

func (c *ReportsCommand) Download(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	reportId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad report callback data: ", callback.Data)
		return
	}

	data, fileName, err := c.rs.Download(ctx, reportId)
	if err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	if fileName == "" {
		fileName = fmt.Sprintf("report-%d.csv", reportId)
	}
	util.SendDocument(c.bt, uint64(chatId), fileName, data, "")
}

func (c *ReportsCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageReports[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.rs.List(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageReports[chatId] = page

	items := make([]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for _, r := range res.Data.Items {
		label := fmt.Sprintf("📄 %v [%v] %v", reportTypeName(r.ReportType), r.Status, util.FormatDate(r.CreatedAt))
		items = append(items, util.CreateDefaultButton(suffixed(buttons.ReportDlButton, r.Id), label))
	}

	text := fmt.Sprintf("📑 <b>Отчеты</b>\nНайдено: %d\nНажмите на готовый отчет, чтобы скачать", res.Data.Total)
	if res.Stale {
		text += staleWarning
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageReports,
		buttons.BackPageReports,
		buttons.CloseListReports,
		items...,
	)
	markup.InlineKeyboard = append(
		[][]models.InlineKeyboardButton{{
			util.CreateDefaultButton(buttons.ReportGenId, "➕ Сформировать"),
		}},
		markup.InlineKeyboard...,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, text, markup)
}

func reportTypeName(reportType string) string {
	if name, ok := reportTypes[reportType]; ok {
		return name
	}
	return reportType
}

// parsePeriod accepts "YYYY-MM-DD YYYY-MM-DD" or the word «месяц» for the
// last 30 days.
func parsePeriod(text string) (string, string, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "месяц" {
		now := time.Now()
		return now.AddDate(0, 0, -30).Format("2006-01-02"), now.Format("2006-01-02"), nil
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected two dates")
	}
	for _, f := range fields {
		if _, err := time.Parse("2006-01-02", f); err != nil {
			return "", "", err
		}
	}
	return fields[0], fields[1], nil
}
