package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/config"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var currentPageUsers = make(map[int64]int)
var currentUserFilter = make(map[int64]appModels.UserFilter)

type ListUsersCommand struct {
	bt *bot.Bot
	us *services.UserService
}

func NewListUsersCommand(bt *bot.Bot, us *services.UserService) *ListUsersCommand {
	return &ListUsersCommand{
		bt: bt,
		us: us,
	}
}

func (c *ListUsersCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	delete(currentPageUsers, chatId)
	delete(currentUserFilter, chatId)
	c.render(ctx, chatId, 0)
}

func (c *ListUsersCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageUsers[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListUsersCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageUsers[chatId] = util.BackPage(currentPageUsers[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListUsersCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageUsers, chatId)
	delete(currentUserFilter, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListUsersCommand) FilterAll(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentUserFilter[chatId] = appModels.UserFilter{}
	currentPageUsers[chatId] = 1
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListUsersCommand) FilterBanned(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	banned := true
	currentUserFilter[chatId] = appModels.UserFilter{IsBanned: &banned}
	currentPageUsers[chatId] = 1
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListUsersCommand) AskSearch(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userstate.CurrentState[chatId] = userstate.EnterUserSearch
	util.SendTextMessage(c.bt, uint64(chatId), "Введите имя или id пользователя:")
}

func (c *ListUsersCommand) ApplySearch(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	userstate.ResetState(chatId)
	currentUserFilter[chatId] = appModels.UserFilter{Search: strings.TrimSpace(msg.Text)}
	currentPageUsers[chatId] = 1
	c.render(ctx, chatId, 0)
}

// ExportCsv sends the currently displayed page as a csv document.
func (c *ListUsersCommand) ExportCsv(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	res := c.us.List(ctx, c.filter(chatId), false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	data, err := util.UsersCsv(res.Data.Items)
	if err != nil {
		log.Error("error build users csv: ", err)
		return
	}
	util.SendDocument(c.bt, uint64(chatId), "users.csv", data, "Экспорт текущей страницы")
}

// render draws the list. messageId == 0 sends a new message, otherwise the
// existing list message is edited in place.
func (c *ListUsersCommand) render(ctx context.Context, chatId int64, messageId int) {
	filter := c.filter(chatId)
	res := c.us.List(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page := util.ClampPage(filter.Page, res.Data.Total, filter.PageSize)
	currentPageUsers[chatId] = page

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageUsers,
		buttons.BackPageUsers,
		buttons.CloseListUsers,
		generateUserButtons(res.Data.Items)...,
	)
	markup.InlineKeyboard = append(
		[][]models.InlineKeyboardButton{{
			util.CreateDefaultButton(buttons.UsersFilterAllId, "Все"),
			util.CreateDefaultButton(buttons.UsersFilterBanId, "⛔ Бан"),
			util.CreateDefaultButton(buttons.UsersSearchId, "🔍"),
			util.CreateDefaultButton(buttons.UsersExportCsvId, "📎 CSV"),
			util.CreateDefaultButton(buttons.UsersBatchId, "🧰"),
		}},
		markup.InlineKeyboard...,
	)

	text := fmt.Sprintf("👥 <b>Пользователи</b>\nНайдено: %d%v", res.Data.Total, userFilterLabel(filter))
	if res.Stale {
		text += staleWarning
	}

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, text, markup)
}

func (c *ListUsersCommand) filter(chatId int64) appModels.UserFilter {
	filter := currentUserFilter[chatId]
	filter.Page = currentPageUsers[chatId]
	if filter.Page == 0 {
		filter.Page = 1
	}
	filter.PageSize = config.DEFAULT_PAGE_SIZE
	return filter
}

func generateUserButtons(users []appModels.User) []models.InlineKeyboardButton {
	result := make([]models.InlineKeyboardButton, 0, len(users))
	for _, u := range users {
		label := fmt.Sprintf("👤 %v | %v", u.Username, util.FormatAmount(u.UsdtBalance, appModels.CurrencyUsdt))
		if u.IsBanned {
			label += " ⛔"
		}
		result = append(result, util.CreateDefaultButton(
			fmt.Sprintf("%v:%d", buttons.UserDataButton, u.Id),
			label,
		))
	}
	return result
}

func userFilterLabel(f appModels.UserFilter) string {
	if f.IsBanned != nil && *f.IsBanned {
		return " | фильтр: забаненные"
	}
	if f.Search != "" {
		return fmt.Sprintf(" | поиск: %v", f.Search)
	}
	return ""
}
