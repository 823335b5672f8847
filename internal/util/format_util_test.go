package util

import (
	"strings"
	"testing"
	"time"

	appModels "redadmin/internal/models"
	"redadmin/internal/store"
)

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1234567.891, appModels.CurrencyUsdt); got != "1,234,567.89 USDT" {
		t.Fatalf("unexpected usdt format: %q", got)
	}
	if got := FormatAmount(1500, appModels.CurrencyPoints); got != "1,500 баллов" {
		t.Fatalf("points must be whole numbers: %q", got)
	}
}

func TestFormatDate_Zero(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "—" {
		t.Fatalf("zero time must render a dash, got %q", got)
	}
}

func TestPacketStatusIcon_Themes(t *testing.T) {
	if got := PacketStatusIcon(appModels.PacketStatusActive, store.ThemeLight); got != "🟢" {
		t.Fatalf("unexpected light icon: %q", got)
	}
	if got := PacketStatusIcon(appModels.PacketStatusActive, store.ThemeDark); got != "[активен]" {
		t.Fatalf("dark theme must use text statuses: %q", got)
	}
	if got := PacketStatusIcon("weird", store.ThemeDark); got != "[weird]" {
		t.Fatalf("unknown status must pass through: %q", got)
	}
}

func TestShortAddress(t *testing.T) {
	addr := "EQB8ANV_nH9FpCVnPtBNkDoC1helHcPZDsVgySHLPOetfM_p"
	short := ShortAddress(addr)
	if !strings.HasPrefix(short, "EQB8AN") || !strings.HasSuffix(short, "fM_p") {
		t.Fatalf("unexpected short form: %q", short)
	}
	if got := ShortAddress("short"); got != "short" {
		t.Fatalf("short addresses must not be cut: %q", got)
	}
}

func TestValidTonAddress(t *testing.T) {
	if ValidTonAddress("") {
		t.Fatal("empty address must not validate")
	}
	if ValidTonAddress("not-an-address") {
		t.Fatal("garbage must not validate")
	}
	if !ValidTonAddress("EQB8ANV_nH9FpCVnPtBNkDoC1helHcPZDsVgySHLPOetfM_p") {
		t.Fatal("friendly form must validate")
	}
	if !ValidTonAddress("0:83dfd552e63729b472fcbcc8c45ebcc6691702558b68ec7527e1ba403a0f31a8") {
		t.Fatal("raw form must validate")
	}
}

func TestTransactionLine(t *testing.T) {
	before := 10.0
	after := 15.5
	tx := &appModels.Transaction{
		Id:            7,
		Type:          "deposit",
		Currency:      appModels.CurrencyUsdt,
		Amount:        5.5,
		BalanceBefore: &before,
		BalanceAfter:  &after,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	line := TransactionLine(tx)
	if !strings.Contains(line, "+5.50 USDT") {
		t.Fatalf("positive amounts must carry a sign: %q", line)
	}
	if !strings.Contains(line, "(10.00 → 15.50)") {
		t.Fatalf("balance delta missing: %q", line)
	}
}
