package util

import (
	"fmt"
	"strings"
	"time"

	appModels "redadmin/internal/models"
	"redadmin/internal/store"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func FormatAmount(amount float64, currency string) string {
	if currency == appModels.CurrencyPoints {
		return printer.Sprintf("%d %s", int64(amount), CurrencySuffix(currency))
	}
	return printer.Sprintf("%.2f %s", amount, CurrencySuffix(currency))
}

func CurrencySuffix(currency string) string {
	switch currency {
	case appModels.CurrencyUsdt:
		return "USDT"
	case appModels.CurrencyTon:
		return "TON"
	case appModels.CurrencyStars:
		return "⭐"
	case appModels.CurrencyPoints:
		return "баллов"
	default:
		return currency
	}
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006 15:04")
}

// PacketStatusIcon picks the icon set by theme: the dark set is plain text
// for clients where colored emoji are unreadable.
func PacketStatusIcon(status, theme string) string {
	if theme == store.ThemeDark {
		switch status {
		case appModels.PacketStatusActive:
			return "[активен]"
		case appModels.PacketStatusCompleted:
			return "[завершен]"
		case appModels.PacketStatusExpired:
			return "[истек]"
		case appModels.PacketStatusRefunded:
			return "[возврат]"
		}
		return "[" + status + "]"
	}

	switch status {
	case appModels.PacketStatusActive:
		return "🟢"
	case appModels.PacketStatusCompleted:
		return "✅"
	case appModels.PacketStatusExpired:
		return "⌛"
	case appModels.PacketStatusRefunded:
		return "↩️"
	default:
		return status
	}
}

func RiskLevelIcon(level string) string {
	switch level {
	case appModels.RiskLow:
		return "🟢"
	case appModels.RiskMedium:
		return "🟡"
	case appModels.RiskHigh:
		return "🟠"
	case appModels.RiskCritical:
		return "🔴"
	default:
		return level
	}
}

func LiquidityStatusName(status string) string {
	switch status {
	case appModels.LiquidityLocked:
		return "🔒 Заблокировано"
	case appModels.LiquidityCooldown:
		return "⏳ Остывание"
	case appModels.LiquidityWithdrawable:
		return "✅ Доступно к выводу"
	default:
		return status
	}
}

func UserInfo(u *appModels.User) string {
	banned := "нет"
	if u.IsBanned {
		banned = "да ⛔"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 <b>%v</b> (id %d)\n", u.Username, u.Id))
	sb.WriteString(fmt.Sprintf("Telegram: <code>%d</code>\n", u.TelegramId))
	sb.WriteString(fmt.Sprintf("Уровень: %d\n", u.Level))
	sb.WriteString(fmt.Sprintf("Бан: %v\n\n", banned))
	sb.WriteString("<b>Балансы</b>\n")
	sb.WriteString(fmt.Sprintf("USDT: %v\n", FormatAmount(u.UsdtBalance, appModels.CurrencyUsdt)))
	sb.WriteString(fmt.Sprintf("TON: %v\n", FormatAmount(u.TonBalance, appModels.CurrencyTon)))
	sb.WriteString(fmt.Sprintf("Stars: %v\n", FormatAmount(u.StarsBalance, appModels.CurrencyStars)))
	sb.WriteString(printer.Sprintf("Баллы: %d\n", u.PointsBalance))
	if u.WalletAddress != "" {
		sb.WriteString(fmt.Sprintf("\nКошелек: <code>%v</code> %v\n", ShortAddress(u.WalletAddress), WalletBadge(u.WalletAddress)))
	}
	sb.WriteString(fmt.Sprintf("\nРегистрация: %v\n", FormatDate(u.CreatedAt)))
	sb.WriteString(fmt.Sprintf("Активность: %v", FormatDate(u.LastActiveAt)))
	return sb.String()
}

func RedPacketInfo(p *appModels.RedPacket, theme string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🧧 Конверт <code>%v</code> %v\n\n", p.Uuid, PacketStatusIcon(p.Status, theme)))
	sb.WriteString(fmt.Sprintf("Отправитель: %v (id %d)\n", p.SenderUsername, p.SenderId))
	if p.ChatTitle != "" {
		sb.WriteString(fmt.Sprintf("Чат: %v\n", p.ChatTitle))
	}
	sb.WriteString(fmt.Sprintf("Тип: %v\n", packetTypeName(p.PacketType)))
	sb.WriteString(fmt.Sprintf("Сумма: %v из %v\n",
		FormatAmount(p.ClaimedAmount, p.Currency),
		FormatAmount(p.TotalAmount, p.Currency)))
	sb.WriteString(fmt.Sprintf("Получено: %d из %d\n", p.ClaimedCount, p.TotalCount))
	if p.Greeting != "" {
		sb.WriteString(fmt.Sprintf("Поздравление: %v\n", p.Greeting))
	}
	sb.WriteString(fmt.Sprintf("\nСоздан: %v\n", FormatDate(p.CreatedAt)))
	if p.ExpiresAt != nil {
		sb.WriteString(fmt.Sprintf("Истекает: %v", FormatDate(*p.ExpiresAt)))
	}
	return sb.String()
}

func packetTypeName(packetType string) string {
	switch packetType {
	case appModels.PacketTypeRandom:
		return "случайный"
	case appModels.PacketTypeEqual:
		return "поровну"
	case appModels.PacketTypeExclusive:
		return "эксклюзивный"
	default:
		return packetType
	}
}

func TransactionLine(t *appModels.Transaction) string {
	sign := ""
	if t.Amount > 0 {
		sign = "+"
	}
	line := fmt.Sprintf("#%d %v %v%v [%v]", t.Id, t.Type, sign, FormatAmount(t.Amount, t.Currency), FormatDate(t.CreatedAt))
	if t.BalanceBefore != nil && t.BalanceAfter != nil {
		line += fmt.Sprintf(" (%.2f → %.2f)", *t.BalanceBefore, *t.BalanceAfter)
	}
	return line
}

func LiquidityEntryInfo(e *appModels.LiquidityEntry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Запись #%d | %v (id %d)\n", e.Id, e.Username, e.UserId))
	sb.WriteString(fmt.Sprintf("Статус: %v\n", LiquidityStatusName(e.WithdrawableStatus)))
	sb.WriteString(fmt.Sprintf("Сумма: %v\n", FormatAmount(e.Amount, e.Currency)))
	sb.WriteString(fmt.Sprintf("Оборот: %v / %v\n",
		FormatAmount(e.TurnoverCompleted, e.Currency),
		FormatAmount(e.TurnoverRequired, e.Currency)))
	if e.UnlockAt != nil {
		sb.WriteString(fmt.Sprintf("Разблокировка: %v\n", FormatDate(*e.UnlockAt)))
	}
	return sb.String()
}

func AlertInfo(a *appModels.Alert) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v <b>%v</b> #%d\n", RiskLevelIcon(a.RiskLevel), a.AlertType, a.Id))
	if a.UserId > 0 {
		sb.WriteString(fmt.Sprintf("Пользователь: id %d\n", a.UserId))
	}
	sb.WriteString(fmt.Sprintf("%v\n", a.Description))
	sb.WriteString(fmt.Sprintf("Создан: %v", FormatDate(a.CreatedAt)))
	if a.IsResolved {
		sb.WriteString(fmt.Sprintf("\n✅ Закрыт (%v)", a.ResolvedBy))
	}
	return sb.String()
}
