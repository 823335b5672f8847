package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/userstate"
	appModels "redadmin/internal/models"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

type InviteTreeCommand struct {
	bt *bot.Bot
	is *services.InviteService
}

func NewInviteTreeCommand(bt *bot.Bot, is *services.InviteService) *InviteTreeCommand {
	return &InviteTreeCommand{
		bt: bt,
		is: is,
	}
}

func (c *InviteTreeCommand) AskUserId(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userstate.CurrentState[chatId] = userstate.EnterTreeUserId
	util.SendTextMessage(c.bt, uint64(chatId), "Введите id пользователя для построения дерева:")
}

func (c *InviteTreeCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	userId, err := strconv.ParseUint(strings.TrimSpace(msg.Text), 10, 64)
	if err != nil {
		util.SendTextMessage(c.bt, uint64(chatId), "❌ Введите числовой id пользователя:")
		return
	}
	userstate.ResetState(chatId)
	c.show(ctx, chatId, userId)
}

// OpenForUser builds the tree straight from the user card button.
func (c *InviteTreeCommand) OpenForUser(ctx context.Context, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	userId, err := callbackId(callback.Data)
	if err != nil {
		log.Error("bad invite tree callback data: ", callback.Data)
		return
	}
	c.show(ctx, chatId, userId)
}

func (c *InviteTreeCommand) show(ctx context.Context, chatId int64, userId uint64) {
	res := c.is.Tree(ctx, userId, false)
	if res.Err != nil && !res.Stale {
		notifyError(c.bt, chatId, res.Err)
		return
	}

	var sb strings.Builder
	sb.WriteString("🌳 <b>Дерево рефералов</b>\n\n")
	renderTreeNode(&sb, res.Data, 0)
	if res.Stale {
		sb.WriteString(staleWarning)
	}

	markup := util.CreateInlineMarup(1, util.CreateDefaultButton(buttons.DefCloseId, "❌ Закрыть"))
	util.SendTextMessageMarkup(c.bt, uint64(chatId), sb.String(), markup)
}

func renderTreeNode(sb *strings.Builder, node *appModels.InviteTreeNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if depth > 0 {
		sb.WriteString("└ ")
	}
	name := node.Username
	if name == "" {
		name = "id " + strconv.FormatUint(node.UserId, 10)
	}
	sb.WriteString(name + "\n")
	for i := range node.Children {
		renderTreeNode(sb, &node.Children[i], depth+1)
	}
}
