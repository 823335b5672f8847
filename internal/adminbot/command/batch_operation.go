package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type batchDraft struct {
	operation string
	userIds   []uint64
}

var pendingBatch = make(map[int64]*batchDraft)

var batchOperations = map[string]string{
	"ban":          "⛔ Забанить",
	"unban":        "♻️ Разбанить",
	"reset_points": "🧹 Обнулить баллы",
}

type BatchOperationCommand struct {
	bt *bot.Bot
	us *services.UserService
}

func NewBatchOperationCommand(bt *bot.Bot, us *services.UserService) *BatchOperationCommand {
	return &BatchOperationCommand{
		bt: bt,
		us: us,
	}
}

func (c *BatchOperationCommand) Start(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	markup := util.CreateInlineMarup(
		1,
		util.CreateDefaultButton(buttons.BatchOpId+":ban", batchOperations["ban"]),
		util.CreateDefaultButton(buttons.BatchOpId+":unban", batchOperations["unban"]),
		util.CreateDefaultButton(buttons.BatchOpId+":reset_points", batchOperations["reset_points"]),
		util.CreateDefaultButton(buttons.BatchCancelId, "❌ Отмена"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), "Выберите массовую операцию:", markup)
}

func (c *BatchOperationCommand) SelectOperation(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	operation := callback.Data[strings.LastIndex(callback.Data, ":")+1:]
	if _, ok := batchOperations[operation]; !ok {
		log.Error("unknown batch operation: ", operation)
		return
	}

	pendingBatch[chatId] = &batchDraft{operation: operation}
	userstate.CurrentState[chatId] = userstate.EnterBatchIds
	util.SendTextMessage(c.bt, uint64(chatId), "Введите id пользователей через запятую или пробел:")
}

func (c *BatchOperationCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	draft, ok := pendingBatch[chatId]
	if !ok {
		userstate.ResetState(chatId)
		return
	}

	ids, err := parseIdList(msg.Text)
	if err != nil {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Не удалось разобрать список. Введите id через запятую:")
		return
	}
	draft.userIds = ids
	userstate.ResetState(chatId)

	markup := util.CreateInlineMarup(
		2,
		util.CreateDefaultButton(buttons.BatchConfirmId, "✅ Подтвердить"),
		util.CreateDefaultButton(buttons.BatchCancelId, "❌ Отмена"),
	)
	util.SendTextMessageMarkup(c.bt, uint64(chatId), fmt.Sprintf(
		"Операция «%v» для %d пользователей. Подтвердить?",
		batchOperations[draft.operation],
		len(ids),
	), markup)
}

func (c *BatchOperationCommand) Confirm(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	draft, ok := pendingBatch[chatId]
	if !ok {
		return
	}
	delete(pendingBatch, chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)

	if err := c.us.BatchOperation(ctx, draft.userIds, draft.operation); err != nil {
		notifyError(c.bt, chatId, err)
		return
	}
	util.SendTextMessage(c.bt, uint64(chatId), fmt.Sprintf("✅ Операция выполнена для %d пользователей", len(draft.userIds)))
}

func (c *BatchOperationCommand) Cancel(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	delete(pendingBatch, chatId)
	userstate.ResetState(chatId)
	util.DeleteMessage(ctx, c.bt, uint64(chatId), callback.Message.Message.ID)
}

func parseIdList(text string) ([]uint64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty id list")
	}

	ids := make([]uint64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
