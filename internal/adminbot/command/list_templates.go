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

var currentPageTpl = make(map[int64]int)

type ListTemplatesCommand struct {
	bt *bot.Bot
	tg *services.TelegramService
}

func NewListTemplatesCommand(bt *bot.Bot, tg *services.TelegramService) *ListTemplatesCommand {
	return &ListTemplatesCommand{
		bt: bt,
		tg: tg,
	}
}

func (c *ListTemplatesCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTpl[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListTemplatesCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTpl[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTemplatesCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageTpl[chatId] = util.BackPage(currentPageTpl[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListTemplatesCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageTpl, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

// View shows the template source, its placeholder variables and usage count.
func (c *ListTemplatesCommand) View(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	templateId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad template callback data: ", callback.Data)
		return
	}

	tpl := c.find(ctx, chatId, templateId)
	if tpl == nil {
		return
	}

	state := "выключен"
	toggleLabel := "🔔 Включить"
	if tpl.IsActive {
		state = "активен"
		toggleLabel = "🔕 Выключить"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📝 <b>%v</b> (%v)\n\n<code>%v</code>\n", tpl.Name, state, tpl.Content))
	if vars := services.TemplateVariables(tpl.Content); len(vars) > 0 {
		sb.WriteString(fmt.Sprintf("\nПеременные: %v\n", strings.Join(vars, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Использован: %d раз", tpl.UsageCount))

	markup := util.CreateInlineMarup(
		2,
		util.CreateDefaultButton(suffixed(buttons.TplToggleId, tpl.Id), toggleLabel),
		util.CreateDefaultButton(suffixed(buttons.TplEditId, tpl.Id), "✏️ Изменить"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
}

func (c *ListTemplatesCommand) Edit(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	templateId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad template callback data: ", callback.Data)
		return
	}

	tpl := c.find(ctx, chatId, templateId)
	if tpl == nil {
		return
	}
	NewEditTemplateCommand(c.bt, c.tg).StartEdit(ctx, callback, tpl)
}

func (c *ListTemplatesCommand) Toggle(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	templateId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad template callback data: ", callback.Data)
		return
	}

	if err := c.tg.ToggleTemplate(ctx, templateId); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
	util.SendTextMessage(c.bt, uint64(chatId), "✅ Шаблон переключен")
}

func (c *ListTemplatesCommand) find(ctx context.Context, chatId int64, templateId uint64) *appModels.MessageTemplate {
	page := currentPageTpl[chatId]
	if page == 0 {
		page = 1
	}
	res := c.tg.Templates(ctx, appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return nil
	}

	for i := range res.Data.Items {
		if res.Data.Items[i].Id == templateId {
			return &res.Data.Items[i]
		}
	}
	log.Error("template not on current page: ", templateId)
	return nil
}

func (c *ListTemplatesCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageTpl[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.PageFilter{Page: page, PageSize: config.DEFAULT_PAGE_SIZE}

	res := c.tg.Templates(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageTpl[chatId] = page

	items := make([]models.InlineKeyboardButton, 0, len(res.Data.Items)+1)
	items = append(items, util.CreateDefaultButton(buttons.TplCreateId, "➕ Создать шаблон"))
	for _, t := range res.Data.Items {
		state := "🔕"
		if t.IsActive {
			state = "🔔"
		}
		items = append(items, util.CreateDefaultButton(
			suffixed(buttons.TplViewButton, t.Id),
			fmt.Sprintf("%v %v (%d)", state, t.Name, t.UsageCount),
		))
	}

	text := fmt.Sprintf("📝 <b>Шаблоны сообщений</b>\nНайдено: %d", res.Data.Total)
	if res.Stale {
		text += staleWarning
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageTpl,
		buttons.BackPageTpl,
		buttons.CloseListTpl,
		items...,
	)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, text, markup)
}
