package command

import (
	"errors"
	"fmt"

	"github.com/go-telegram/bot"

	"redadmin/internal/api"
	"redadmin/internal/util"
)

const staleWarning = "\n\n⚠️ Не удалось обновить данные, показана сохраненная копия"

// describeError maps transport failures to operator-facing text.
// Validation messages from the backend are shown as-is.
func describeError(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "Сессия истекла. Выполните /login"
	}
	if msg, ok := api.ServerMessage(err); ok {
		return msg
	}
	if api.IsTimeout(err) {
		return "Превышено время ожидания ответа. Попробуйте еще раз"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Ошибка сети. Попробуйте еще раз"
}

func notifyError(b *bot.Bot, chatId int64, err error) {
	util.SendTextMessage(b, uint64(chatId), fmt.Sprint("❌ ", describeError(err)))
}
