package command

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type AnalyticsCommand struct {
	bt *bot.Bot
	cs *services.CheckinService
	is *services.InviteService
}

func NewAnalyticsCommand(bt *bot.Bot, cs *services.CheckinService, is *services.InviteService) *AnalyticsCommand {
	return &AnalyticsCommand{
		bt: bt,
		cs: cs,
		is: is,
	}
}

func (c *AnalyticsCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID

	checkinRes := c.cs.Stats(ctx, false)
	if checkinRes.Err != nil && !checkinRes.Stale {
		notifyError(c.bt, chatId, checkinRes.Err)
		return
	}
	inviteRes := c.is.Stats(ctx, false)
	if inviteRes.Err != nil && !inviteRes.Stale {
		notifyError(c.bt, chatId, inviteRes.Err)
		return
	}

	checkin := checkinRes.Data
	invite := inviteRes.Data
	text := fmt.Sprintf(
		"📈 <b>Аналитика</b>\n\n"+
			"<b>Чекины</b>\n"+
			"Сегодня: %d\n"+
			"Всего: %d\n"+
			"Уникальных пользователей: %d\n"+
			"Максимальная серия: %d дней\n\n"+
			"<b>Приглашения</b>\n"+
			"Всего: %d\n"+
			"Пригласивших: %d\n"+
			"Наград выдано: %d",
		checkin.TodayCount, checkin.TotalCount, checkin.UniqueUsers, checkin.MaxStreakDay,
		invite.TotalInvites, invite.Inviters, invite.TotalRewards,
	)
	// the reward schedule is decorative here, the screen survives without it
	if cfgRes := c.cs.Config(ctx, false); cfgRes.Err == nil || cfgRes.Stale {
		cfg := cfgRes.Data
		text += fmt.Sprintf("\n\nЦикл наград: %d дней, сброс при пропуске: %v\nБаллы по дням: %v",
			cfg.CycleDays, yesNo(cfg.ResetOnMiss), cfg.DailyRewards)
	}
	if checkinRes.Stale || inviteRes.Stale {
		text += staleWarning
	}

	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.CheckinRecordsId, "📋 Записи чекинов"),
		util.CreateDefaultButton(buttons.InviteRecordsId, "📋 Записи приглашений"),
		util.CreateDefaultButton(buttons.InviteTreeAskId, "🌳 Дерево рефералов"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
