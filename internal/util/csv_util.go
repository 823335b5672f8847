package util

import (
	"bytes"
	"encoding/csv"
	"fmt"

	appModels "redadmin/internal/models"
)

func csvBytes(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TransactionsCsv exports the currently displayed page, not the whole ledger.
func TransactionsCsv(items []appModels.Transaction) ([]byte, error) {
	header := []string{"id", "user_id", "type", "currency", "amount", "reference_id", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		rows = append(rows, []string{
			fmt.Sprint(t.Id),
			fmt.Sprint(t.UserId),
			t.Type,
			t.Currency,
			fmt.Sprintf("%.8f", t.Amount),
			t.ReferenceId,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return csvBytes(header, rows)
}

func UsersCsv(items []appModels.User) ([]byte, error) {
	header := []string{"id", "telegram_id", "username", "usdt", "ton", "stars", "points", "level", "is_banned", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, u := range items {
		rows = append(rows, []string{
			fmt.Sprint(u.Id),
			fmt.Sprint(u.TelegramId),
			u.Username,
			fmt.Sprintf("%.2f", u.UsdtBalance),
			fmt.Sprintf("%.2f", u.TonBalance),
			fmt.Sprintf("%.2f", u.StarsBalance),
			fmt.Sprint(u.PointsBalance),
			fmt.Sprint(u.Level),
			fmt.Sprint(u.IsBanned),
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return csvBytes(header, rows)
}
