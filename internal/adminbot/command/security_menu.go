package command

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type SecurityMenuCommand struct {
	bt *bot.Bot
	ss *services.SecurityService
}

func NewSecurityMenuCommand(bt *bot.Bot, ss *services.SecurityService) *SecurityMenuCommand {
	return &SecurityMenuCommand{
		bt: bt,
		ss: ss,
	}
}

func (c *SecurityMenuCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	statsRes := c.ss.Stats(ctx, false)
	if statsRes.Err != nil && !statsRes.Stale {
		notifyError(c.bt, chatId, statsRes.Err)
		return
	}
	s := statsRes.Data

	text := fmt.Sprintf(
		"🛡 <b>Центр безопасности</b>\n\n"+
			"Открытых алертов: %d (критичных %d)\n"+
			"Заблокировано устройств: %d\n"+
			"Заблокировано IP: %d\n"+
			"Пользователей в зоне риска: %d",
		s.UnresolvedAlerts, s.CriticalAlerts,
		s.BlockedDevices,
		s.BlockedIps,
		s.RiskUsers,
	)

	trendRes := c.ss.Trends(ctx, appModels.TrendFilter{}, false)
	if trendRes.Err == nil || trendRes.Stale {
		text += "\n\n" + util.RenderTrend("Алерты за неделю", trendRes.Data)
	}
	if statsRes.Stale {
		text += staleWarning
	}

	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.SecAlertsId, "🚨 Алерты"),
		util.CreateDefaultButton(buttons.SecRiskId, "⚠️ Зона риска"),
		util.CreateDefaultButton(buttons.SecDevicesId, "📱 Устройства"),
		util.CreateDefaultButton(buttons.SecIpsId, "🌐 IP-сессии"),
		util.CreateDefaultButton(buttons.SecLiquidityId, "💧 Ликвидность"),
		util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
}
