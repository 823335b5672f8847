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

var currentPageDevices = make(map[int64]int)

type ListDevicesCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewListDevicesCommand(bt *bot.Bot, ss *services.SecurityService) *ListDevicesCommand {
	return &ListDevicesCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *ListDevicesCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageDevices[chatId] = 1
	c.render(ctx, chatId, 0)
}

func (c *ListDevicesCommand) NextPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageDevices[chatId]++
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListDevicesCommand) BackPage(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	currentPageDevices[chatId] = util.BackPage(currentPageDevices[chatId])
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListDevicesCommand) CloseList(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(currentPageDevices, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func (c *ListDevicesCommand) Block(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.DeviceActionBlock, "✅ Устройство заблокировано")
}

func (c *ListDevicesCommand) Unblock(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.DeviceActionUnblock, "✅ Устройство разблокировано")
}

func (c *ListDevicesCommand) Trust(ctx context.Context, callback *models.CallbackQuery) {
	c.runAction(ctx, callback, services.DeviceActionTrust, "✅ Устройство помечено доверенным")
}

func (c *ListDevicesCommand) runAction(ctx context.Context, callback *models.CallbackQuery, action, okText string) {
	chatId := callback.From.ID
	deviceId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad device callback data: ", callback.Data)
		return
	}

	if err := c.ss.DeviceAction(ctx, deviceId, action); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), okText)
	c.render(ctx, chatId, callback.Message.Message.ID)
}

func (c *ListDevicesCommand) render(ctx context.Context, chatId int64, messageId int) {
	page := currentPageDevices[chatId]
	if page == 0 {
		page = 1
	}
	filter := appModels.DeviceFilter{}
	filter.Page = page
	filter.PageSize = config.DEFAULT_PAGE_SIZE

	res := c.ss.Devices(ctx, filter, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	page = util.ClampPage(page, res.Data.Total, filter.PageSize)
	currentPageDevices[chatId] = page

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📱 <b>Устройства</b>\nНайдено: %d\n\n", res.Data.Total))

	rows := make([][]models.InlineKeyboardButton, 0, len(res.Data.Items))
	for _, d := range res.Data.Items {
		badges := ""
		if d.IsBlocked {
			badges += " ⛔"
		}
		if d.IsTrusted {
			badges += " ✳️"
		}
		sb.WriteString(fmt.Sprintf("#%d <code>%v</code> (%v)%v\nАккаунтов: %d | активность %v\n\n",
			d.Id, ShortHash(d.DeviceHash), d.Platform, badges, d.UserCount, util.FormatDate(d.LastSeenAt)))

		row := make([]models.InlineKeyboardButton, 0, 2)
		if d.IsBlocked {
			row = append(row, util.CreateDefaultButton(suffixed(buttons.DeviceUnblockId, d.Id), fmt.Sprintf("♻️ #%d", d.Id)))
		} else {
			row = append(row, util.CreateDefaultButton(suffixed(buttons.DeviceBlockId, d.Id), fmt.Sprintf("⛔ #%d", d.Id)))
		}
		if !d.IsTrusted {
			row = append(row, util.CreateDefaultButton(suffixed(buttons.DeviceTrustId, d.Id), fmt.Sprintf("✳️ #%d", d.Id)))
		}
		rows = append(rows, row)
	}
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.GenerateNextBackMenu(
		page,
		util.TotalPages(res.Data.Total, filter.PageSize),
		buttons.NextPageDevices,
		buttons.BackPageDevices,
		buttons.CloseListDevices,
	)
	markup.InlineKeyboard = append(rows, markup.InlineKeyboard...)

	if messageId == 0 {
		util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
		return
	}
	util.EditTextMessageMarkup(ctx, c.bt, uint64(chatId), messageId, sb.String(), markup)
}

func ShortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + "…"
}
