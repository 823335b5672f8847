package util

import (
	"github.com/xssnick/tonutils-go/address"
)

// ValidTonAddress reports whether a displayed or operator-entered wallet
// address parses as a TON address in any of its text forms.
func ValidTonAddress(addr string) bool {
	if addr == "" {
		return false
	}
	if _, err := address.ParseAddr(addr); err == nil {
		return true
	}
	_, err := address.ParseRawAddr(addr)
	return err == nil
}

func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-6:]
}

func WalletBadge(addr string) string {
	if ValidTonAddress(addr) {
		return ""
	}
	return "⚠️ невалидный адрес"
}
