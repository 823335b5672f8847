package command

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/config"
	"redadmin/internal/services"
	"redadmin/internal/util"
)

var log = config.InitLogger()

type StartCommand struct {
	bt   *bot.Bot
	auth *services.AuthService
}

func NewStartCommand(bt *bot.Bot, auth *services.AuthService) *StartCommand {
	return &StartCommand{
		bt:   bt,
		auth: auth,
	}
}

func (c *StartCommand) Execute(ctx context.Context, msg *models.Message) {
	chatId := msg.Chat.ID
	markup := util.CreateDefaultButtonsReplay(
		2,
		buttons.Dashboard, buttons.Users,
		buttons.RedPackets, buttons.Transactions,
		buttons.Analytics, buttons.TelegramMenu,
		buttons.Reports, buttons.Security,
		buttons.Profile, buttons.Setting,
	)

	text := fmt.Sprintf("Привет, %s! 👋\nПанель управления конвертами. Выберите раздел:", msg.Chat.FirstName)
	if !c.auth.IsAuthenticated() {
		text = "Привет! 👋\nВы не авторизованы. Выполните /login, чтобы войти в панель."
	}

	if _, err := c.bt.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatId,
		Text:        text,
		ReplyMarkup: markup,
	}); err != nil {
		log.Error("error send start message: ", err)
	}
}
