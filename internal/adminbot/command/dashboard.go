package command

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/cache"
	"redadmin/internal/config"
	appModels "redadmin/internal/models"
	"redadmin/internal/schedulers"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

// dashboardMsg is touched from handler goroutines and from the cron job, so
// unlike the page maps it needs a lock.
var (
	dashboardMsgMu sync.Mutex
	dashboardMsg   = make(map[int64]int)
)

func setDashboardMsg(chatId int64, messageId int) {
	dashboardMsgMu.Lock()
	defer dashboardMsgMu.Unlock()
	dashboardMsg[chatId] = messageId
}

func dashboardMsgId(chatId int64) (int, bool) {
	dashboardMsgMu.Lock()
	defer dashboardMsgMu.Unlock()
	id, ok := dashboardMsg[chatId]
	return id, ok
}

func clearDashboardMsg(chatId int64) (int, bool) {
	dashboardMsgMu.Lock()
	defer dashboardMsgMu.Unlock()
	id, ok := dashboardMsg[chatId]
	delete(dashboardMsg, chatId)
	return id, ok
}

type DashboardCommand struct {
	bt    *bot.Bot
	ds    *services.DashboardService
	sched *schedulers.RefreshScheduler
}

func NewDashboardCommand(bt *bot.Bot, ds *services.DashboardService, sched *schedulers.RefreshScheduler) *DashboardCommand {
	return &DashboardCommand{
		bt:    bt,
		ds:    ds,
		sched: sched,
	}
}

func (c *DashboardCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	res := c.ds.Stats(ctx, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	message, err := util.SendTextMessageMarkup(
		c.bt,
		uint64(chatId),
		renderDashboard(res),
		c.markup(chatId),
	)
	if err != nil {
		return
	}
	setDashboardMsg(chatId, message.ID)
}

// Refresh re-fetches the stats past the cache and edits the pinned dashboard
// message in place. Also runs as the auto-refresh job.
func (c *DashboardCommand) Refresh(ctx context.Context, chatId int64) {
	messageId, ok := dashboardMsgId(chatId)
	if !ok {
		c.sched.Disable(chatId)
		return
	}

	res := c.ds.Stats(ctx, true)
	if res.Err != nil && !res.Stale {
		log.Error("dashboard refresh failed: ", res.Err)
		return
	}

	if err := util.EditTextMessageMarkup(
		ctx,
		c.bt,
		uint64(chatId),
		messageId,
		renderDashboard(res),
		c.markup(chatId),
	); err != nil {
		log.Error("error update dashboard message: ", err)
	}
}

func (c *DashboardCommand) EnableAuto(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	c.sched.Enable(chatId, config.AUTO_REFRESH_INTERVAL, func() {
		c.Refresh(context.Background(), chatId)
	})
	c.Refresh(ctx, chatId)
}

func (c *DashboardCommand) DisableAuto(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	c.sched.Disable(chatId)
	c.Refresh(ctx, chatId)
}

func (c *DashboardCommand) Close(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	c.sched.Disable(chatId)
	if messageId, ok := clearDashboardMsg(chatId); ok {
		util.DeleteMessage(ctx, c.bt, uint64(chatId), messageId)
	}
}

func (c *DashboardCommand) markup(chatId int64) *models.InlineKeyboardMarkup {
	autoBtn := util.CreateDefaultButton(buttons.DashboardAutoOnId, "▶️ Автообновление")
	if c.sched.Enabled(chatId) {
		autoBtn = util.CreateDefaultButton(buttons.DashboardAutoOffId, "⏸ Автообновление вкл")
	}
	return util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.DashboardRefreshId, "🔄 Обновить"),
		autoBtn,
		util.CreateDefaultButton(buttons.DashboardCloseId, "❌ Закрыть"),
	)
}

func renderDashboard(res cache.Result[*appModels.DashboardStats]) string {
	s := res.Data
	text := fmt.Sprintf(
		"📊 <b>Дашборд</b>\n\n"+
			"Пользователи: %d\n"+
			"Активные за сутки: %d\n\n"+
			"Конверты: %d, активных %d\n"+
			"Оборот за сутки: %v\n\n"+
			"Открытые алерты: %d\n\n"+
			"Обновлено: %v",
		s.TotalUsers,
		s.ActiveUsers24h,
		s.TotalPackets, s.ActivePackets,
		util.FormatAmount(s.VolumeUsdt24h, appModels.CurrencyUsdt),
		s.UnresolvedAlerts,
		time.Now().Format("15:04:05"),
	)
	if res.Stale {
		text += staleWarning
	}
	return text
}
