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

type RedPacketStatsCommand struct {
	bt *bot.Bot
	rs *services.RedPacketService
}

func NewRedPacketStatsCommand(bt *bot.Bot, rs *services.RedPacketService) *RedPacketStatsCommand {
	return &RedPacketStatsCommand{
		bt: bt,
		rs: rs,
	}
}

func (c *RedPacketStatsCommand) Execute(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	statsRes := c.rs.Stats(ctx, false)
	if statsRes.Err != nil && !statsRes.Stale {
		notifyError(c.bt, chatId, statsRes.Err)
		return
	}
	s := statsRes.Data

	text := fmt.Sprintf(
		"📈 <b>Статистика конвертов</b>\n\n"+
			"Всего: %d\n"+
			"🟢 Активных: %d\n"+
			"✅ Завершенных: %d\n"+
			"⌛ Истекших: %d\n"+
			"↩️ Возвратов: %d\n\n"+
			"Объем: %v\n"+
			"Роздано: %v",
		s.Total, s.Active, s.Completed, s.Expired, s.Refunded,
		util.FormatAmount(s.TotalAmount, appModels.CurrencyUsdt),
		util.FormatAmount(s.ClaimedAmount, appModels.CurrencyUsdt),
	)

	trendRes := c.rs.Trend(ctx, appModels.TrendFilter{}, false)
	if trendRes.Err == nil || trendRes.Stale {
		text += "\n\n" + util.RenderTrend("Конверты за неделю", trendRes.Data)
	}
	if statsRes.Stale {
		text += staleWarning
	}

	markup := util.CreateInlineMarup(1, util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"))
	util.SendTextMessageMarkup(c.bt, uint64(chatId), text, markup)
}
