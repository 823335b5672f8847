package adminbot

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"redadmin/internal/adminbot/buttons"
	"redadmin/internal/adminbot/command"
	"redadmin/internal/adminbot/userstate"
	"redadmin/internal/api"
	"redadmin/internal/config"
	"redadmin/internal/core/interfaces"
	"redadmin/internal/schedulers"
	"redadmin/internal/services"
	"redadmin/internal/store"
	"redadmin/internal/util"
)

var log = config.InitLogger()

type AdminBot struct {
	token    string
	adminIds map[int64]bool

	client    *api.Client
	authStore *store.AuthStore
	theme     *store.ThemeStore
	sched     *schedulers.RefreshScheduler

	auth *services.AuthService
	us   *services.UserService
	rs   *services.RedPacketService
	txs  *services.TransactionService
	cs   *services.CheckinService
	is   *services.InviteService
	tg   *services.TelegramService
	reps *services.ReportService
	ss   *services.SecurityService
	ds   *services.DashboardService
}

func NewAdminBot(
	cfg config.BotConfig,
	client *api.Client,
	authStore *store.AuthStore,
	theme *store.ThemeStore,
	sched *schedulers.RefreshScheduler,
	auth *services.AuthService,
	us *services.UserService,
	rs *services.RedPacketService,
	txs *services.TransactionService,
	cs *services.CheckinService,
	is *services.InviteService,
	tg *services.TelegramService,
	reps *services.ReportService,
	ss *services.SecurityService,
	ds *services.DashboardService,
) *AdminBot {
	adminIds := make(map[int64]bool, len(cfg.AdminChatIds))
	for _, id := range cfg.AdminChatIds {
		adminIds[id] = true
	}

	return &AdminBot{
		token:     cfg.Token,
		adminIds:  adminIds,
		client:    client,
		authStore: authStore,
		theme:     theme,
		sched:     sched,
		auth:      auth,
		us:        us,
		rs:        rs,
		txs:       txs,
		cs:        cs,
		is:        is,
		tg:        tg,
		reps:      reps,
		ss:        ss,
		ds:        ds,
	}
}

func (t *AdminBot) StartBot() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// updates are handled one at a time: the command layer keeps per-chat
	// state in plain maps, only the auto-refresh job runs off this goroutine
	opts := []bot.Option{
		bot.WithDefaultHandler(t.handler),
		bot.WithNotAsyncHandlers(),
	}

	tgbot, err := bot.New(t.token, opts...)
	if err != nil {
		log.Fatal("Failed to start bot: ", err)
		return err
	}

	// Expired session is announced once even when parallel requests all come
	// back 401 at the same time.
	t.client.SetOnUnauthorized(func() {
		if !t.authStore.ClearIfAuthenticated() {
			return
		}
		for id := range t.adminIds {
			util.SendTextMessage(tgbot, uint64(id), "⚠️ Сессия истекла. Выполните /login")
		}
	})

	tgbot.Start(ctx)
	t.sched.Stop()

	return nil
}

func (t *AdminBot) handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil {
		return
	}

	if update.Message != nil {
		t.handleMessage(ctx, b, update.Message)
	}

	if update.CallbackQuery != nil {
		callback := update.CallbackQuery

		t.handleCallback(ctx, b, callback)

		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: callback.ID,
		}); err != nil {
			log.Error("AnswerCallbackQuery: ", err)
		}
	}
}

func (t *AdminBot) handleMessage(ctx context.Context, b *bot.Bot, msg *models.Message) {
	if msg.Chat.Type != models.ChatTypePrivate {
		return
	}

	chatId := msg.Chat.ID
	if !t.adminIds[chatId] {
		// not an operator chat, stay silent
		return
	}

	text := msg.Text

	if strings.HasPrefix(text, "/start") {
		userstate.ResetState(chatId)
		command.NewStartCommand(b, t.auth).Execute(ctx, msg)
		return
	}

	if strings.HasPrefix(text, "/login") {
		userstate.ResetState(chatId)
		command.NewLoginCommand(b, t.auth).Execute(ctx, msg)
		return
	}

	if state, ok := userstate.CurrentState[chatId]; ok {
		t.handleState(ctx, state, b, msg)
		return
	}

	if cmd := t.menuCommand(b, text); cmd != nil {
		if !t.auth.IsAuthenticated() {
			util.SendTextMessage(b, uint64(chatId), "⚠️ Вы не авторизованы. Выполните /login")
			return
		}
		userstate.ResetState(chatId)
		cmd.Execute(ctx, msg)
	}
}

// menuCommand maps a main menu button to its screen.
func (t *AdminBot) menuCommand(b *bot.Bot, text string) interfaces.Command[*models.Message] {
	switch text {
	case buttons.Dashboard:
		return command.NewDashboardCommand(b, t.ds, t.sched)
	case buttons.Users:
		return command.NewListUsersCommand(b, t.us)
	case buttons.RedPackets:
		return command.NewListRedPacketsCommand(b, t.rs, t.theme)
	case buttons.Transactions:
		return command.NewListTransactionsCommand(b, t.txs)
	case buttons.Analytics:
		return command.NewAnalyticsCommand(b, t.cs, t.is)
	case buttons.TelegramMenu:
		return command.NewTelegramMenuCommand(b)
	case buttons.Reports:
		return command.NewReportsCommand(b, t.reps)
	case buttons.Security:
		return command.NewSecurityMenuCommand(b, t.ss)
	case buttons.Profile:
		return command.NewProfileCommand(b, t.auth)
	case buttons.Setting:
		return command.NewOpenSettingCommand(b, t.theme)
	default:
		return nil
	}
}

func (t *AdminBot) handleState(ctx context.Context, state int, b *bot.Bot, msg *models.Message) {
	switch state {
	case userstate.EnterLogin, userstate.EnterPassword:
		command.NewLoginCommand(b, t.auth).Execute(ctx, msg)
	case userstate.EnterUserSearch:
		command.NewListUsersCommand(b, t.us).ApplySearch(ctx, msg)
	case userstate.EnterAdjustAmount, userstate.EnterAdjustReason:
		command.NewAdjustBalanceCommand(b, t.us).Execute(ctx, msg)
	case userstate.EnterBanReason:
		command.NewBanUserCommand(b, t.us).Execute(ctx, msg)
	case userstate.EnterBatchIds:
		command.NewBatchOperationCommand(b, t.us).Execute(ctx, msg)
	case userstate.EnterExtendHours:
		command.NewRedPacketActionsCommand(b, t.rs).Execute(ctx, msg)
	case userstate.EnterTreeUserId:
		command.NewInviteTreeCommand(b, t.is).Execute(ctx, msg)
	case userstate.EnterSendTarget, userstate.EnterSendText:
		command.NewSendMessageCommand(b, t.tg).Execute(ctx, msg)
	case userstate.EnterTplName, userstate.EnterTplContent:
		command.NewEditTemplateCommand(b, t.tg).Execute(ctx, msg)
	case userstate.EnterReportPeriod:
		command.NewReportsCommand(b, t.reps).ApplyPeriod(ctx, msg)
	case userstate.EnterAlertNote:
		command.NewListAlertsCommand(b, t.ss).ApplyResolveNote(ctx, msg)
	case userstate.EnterLiquidityReason:
		command.NewAdjustLiquidityCommand(b, t.ss).Execute(ctx, msg)
	default:
		log.Error("unknown state: ", state)
	}
}

func (t *AdminBot) handleCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	chatId := callback.From.ID
	if !t.adminIds[chatId] {
		return
	}

	data := callback.Data

	//dashboard
	if data == buttons.DashboardRefreshId {
		command.NewDashboardCommand(b, t.ds, t.sched).Refresh(ctx, chatId)
		return
	}
	if data == buttons.DashboardAutoOnId {
		command.NewDashboardCommand(b, t.ds, t.sched).EnableAuto(ctx, callback)
		return
	}
	if data == buttons.DashboardAutoOffId {
		command.NewDashboardCommand(b, t.ds, t.sched).DisableAuto(ctx, callback)
		return
	}
	if data == buttons.DashboardCloseId {
		command.NewDashboardCommand(b, t.ds, t.sched).Close(ctx, callback)
		return
	}

	//users
	if data == buttons.NextPageUsers {
		command.NewListUsersCommand(b, t.us).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageUsers {
		command.NewListUsersCommand(b, t.us).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListUsers {
		command.NewListUsersCommand(b, t.us).CloseList(ctx, callback)
		return
	}
	if data == buttons.UsersFilterAllId {
		command.NewListUsersCommand(b, t.us).FilterAll(ctx, callback)
		return
	}
	if data == buttons.UsersFilterBanId {
		command.NewListUsersCommand(b, t.us).FilterBanned(ctx, callback)
		return
	}
	if data == buttons.UsersSearchId {
		command.NewListUsersCommand(b, t.us).AskSearch(ctx, callback)
		return
	}
	if data == buttons.UsersExportCsvId {
		command.NewListUsersCommand(b, t.us).ExportCsv(ctx, callback)
		return
	}
	if data == buttons.UsersBatchId {
		command.NewBatchOperationCommand(b, t.us).Start(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.UserDataButton) {
		command.NewOpenUserInfoCommand(b, t.us).Execute(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.UserUnbanId) {
		command.NewBanUserCommand(b, t.us).Unban(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.UserBanId) {
		command.NewBanUserCommand(b, t.us).AskReason(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.UserAdjustId) {
		command.NewAdjustBalanceCommand(b, t.us).Start(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.UserTxId) {
		command.NewListTransactionsCommand(b, t.txs).OpenForUser(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.UserInviteTreeId) {
		command.NewInviteTreeCommand(b, t.is).OpenForUser(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.AdjustCurrencyId) {
		command.NewAdjustBalanceCommand(b, t.us).SelectCurrency(ctx, callback)
		return
	}
	if data == buttons.AdjustCancelId {
		command.NewAdjustBalanceCommand(b, t.us).Cancel(ctx, callback)
		return
	}
	if data == buttons.BatchConfirmId {
		command.NewBatchOperationCommand(b, t.us).Confirm(ctx, callback)
		return
	}
	if data == buttons.BatchCancelId {
		command.NewBatchOperationCommand(b, t.us).Cancel(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.BatchOpId) {
		command.NewBatchOperationCommand(b, t.us).SelectOperation(ctx, callback)
		return
	}

	//red packets
	if data == buttons.NextPageRp {
		command.NewListRedPacketsCommand(b, t.rs, t.theme).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageRp {
		command.NewListRedPacketsCommand(b, t.rs, t.theme).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListRp {
		command.NewListRedPacketsCommand(b, t.rs, t.theme).CloseList(ctx, callback)
		return
	}
	if data == buttons.RpFilterId {
		command.NewListRedPacketsCommand(b, t.rs, t.theme).CycleFilter(ctx, callback)
		return
	}
	if data == buttons.RpStatsId {
		command.NewRedPacketStatsCommand(b, t.rs).Execute(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.RpDataButton) {
		command.NewOpenRedPacketInfoCommand(b, t.rs, t.theme).Execute(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.RpRefundId) {
		command.NewRedPacketActionsCommand(b, t.rs).Refund(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.RpExtendId) {
		command.NewRedPacketActionsCommand(b, t.rs).AskExtendHours(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.RpCompleteId) {
		command.NewRedPacketActionsCommand(b, t.rs).Complete(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.RpDeleteOkId) {
		command.NewRedPacketActionsCommand(b, t.rs).Delete(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.RpDeleteId) {
		command.NewRedPacketActionsCommand(b, t.rs).AskDelete(ctx, callback)
		return
	}

	//transactions
	if data == buttons.NextPageTx {
		command.NewListTransactionsCommand(b, t.txs).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageTx {
		command.NewListTransactionsCommand(b, t.txs).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListTx {
		command.NewListTransactionsCommand(b, t.txs).CloseList(ctx, callback)
		return
	}
	if data == buttons.TxFilterCurId {
		command.NewListTransactionsCommand(b, t.txs).CycleCurrency(ctx, callback)
		return
	}
	if data == buttons.TxStatsId {
		command.NewListTransactionsCommand(b, t.txs).Stats(ctx, callback)
		return
	}
	if data == buttons.TxExportCsvId {
		command.NewListTransactionsCommand(b, t.txs).ExportCsv(ctx, callback)
		return
	}

	//analytics
	if data == buttons.CheckinRecordsId {
		command.NewListCheckinsCommand(b, t.cs).Execute(ctx, callback)
		return
	}
	if data == buttons.InviteRecordsId {
		command.NewListInvitesCommand(b, t.is).Execute(ctx, callback)
		return
	}
	if data == buttons.InviteTreeAskId {
		command.NewInviteTreeCommand(b, t.is).AskUserId(ctx, callback)
		return
	}
	if data == buttons.NextPageCheckin {
		command.NewListCheckinsCommand(b, t.cs).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageCheckin {
		command.NewListCheckinsCommand(b, t.cs).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListCheckin {
		command.NewListCheckinsCommand(b, t.cs).CloseList(ctx, callback)
		return
	}
	if data == buttons.NextPageInvite {
		command.NewListInvitesCommand(b, t.is).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageInvite {
		command.NewListInvitesCommand(b, t.is).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListInvite {
		command.NewListInvitesCommand(b, t.is).CloseList(ctx, callback)
		return
	}

	//telegram
	if data == buttons.TgGroupsId {
		command.NewListGroupsCommand(b, t.tg).Execute(ctx, callback)
		return
	}
	if data == buttons.TgTemplatesId {
		command.NewListTemplatesCommand(b, t.tg).Execute(ctx, callback)
		return
	}
	if data == buttons.TgMessagesId {
		command.NewListTgMessagesCommand(b, t.tg).Execute(ctx, callback)
		return
	}
	if data == buttons.TgSendId {
		command.NewSendMessageCommand(b, t.tg).Start(ctx, callback)
		return
	}
	if data == buttons.NextPageGroups {
		command.NewListGroupsCommand(b, t.tg).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageGroups {
		command.NewListGroupsCommand(b, t.tg).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListGroups {
		command.NewListGroupsCommand(b, t.tg).CloseList(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.GroupToggleId) {
		command.NewListGroupsCommand(b, t.tg).Toggle(ctx, callback)
		return
	}
	if data == buttons.NextPageTpl {
		command.NewListTemplatesCommand(b, t.tg).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageTpl {
		command.NewListTemplatesCommand(b, t.tg).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListTpl {
		command.NewListTemplatesCommand(b, t.tg).CloseList(ctx, callback)
		return
	}
	if data == buttons.TplCreateId {
		command.NewEditTemplateCommand(b, t.tg).StartCreate(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.TplToggleId) {
		command.NewListTemplatesCommand(b, t.tg).Toggle(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.TplEditId) {
		command.NewListTemplatesCommand(b, t.tg).Edit(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.TplViewButton) {
		command.NewListTemplatesCommand(b, t.tg).View(ctx, callback)
		return
	}
	if data == buttons.NextPageTgMsg {
		command.NewListTgMessagesCommand(b, t.tg).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageTgMsg {
		command.NewListTgMessagesCommand(b, t.tg).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListTgMsg {
		command.NewListTgMessagesCommand(b, t.tg).CloseList(ctx, callback)
		return
	}
	if data == buttons.SendConfirmId {
		command.NewSendMessageCommand(b, t.tg).Confirm(ctx, callback)
		return
	}
	if data == buttons.SendCancelId {
		command.NewSendMessageCommand(b, t.tg).Cancel(ctx, callback)
		return
	}

	//reports
	if strings.HasPrefix(data, buttons.ReportGenId) {
		command.NewReportsCommand(b, t.reps).AskGenerate(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.ReportDlButton) {
		command.NewReportsCommand(b, t.reps).Download(ctx, callback)
		return
	}
	if data == buttons.NextPageReports {
		command.NewReportsCommand(b, t.reps).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageReports {
		command.NewReportsCommand(b, t.reps).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListReports {
		command.NewReportsCommand(b, t.reps).CloseList(ctx, callback)
		return
	}

	//security
	if data == buttons.SecAlertsId {
		command.NewListAlertsCommand(b, t.ss).Execute(ctx, callback)
		return
	}
	if data == buttons.SecRiskId {
		command.NewListRiskUsersCommand(b, t.ss).Execute(ctx, callback)
		return
	}
	if data == buttons.SecDevicesId {
		command.NewListDevicesCommand(b, t.ss).Execute(ctx, callback)
		return
	}
	if data == buttons.SecIpsId {
		command.NewListIpSessionsCommand(b, t.ss).Execute(ctx, callback)
		return
	}
	if data == buttons.SecLiquidityId {
		command.NewListLiquidityCommand(b, t.ss).Execute(ctx, callback)
		return
	}
	if data == buttons.NextPageAlerts {
		command.NewListAlertsCommand(b, t.ss).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageAlerts {
		command.NewListAlertsCommand(b, t.ss).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListAlerts {
		command.NewListAlertsCommand(b, t.ss).CloseList(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.AlertResolveId) {
		command.NewListAlertsCommand(b, t.ss).AskResolveNote(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.AlertDismissId) {
		command.NewListAlertsCommand(b, t.ss).Dismiss(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.AlertEscalateId) {
		command.NewListAlertsCommand(b, t.ss).Escalate(ctx, callback)
		return
	}
	if data == buttons.NextPageRisk {
		command.NewListRiskUsersCommand(b, t.ss).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageRisk {
		command.NewListRiskUsersCommand(b, t.ss).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListRisk {
		command.NewListRiskUsersCommand(b, t.ss).CloseList(ctx, callback)
		return
	}
	if data == buttons.NextPageDevices {
		command.NewListDevicesCommand(b, t.ss).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageDevices {
		command.NewListDevicesCommand(b, t.ss).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListDevices {
		command.NewListDevicesCommand(b, t.ss).CloseList(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.DeviceUnblockId) {
		command.NewListDevicesCommand(b, t.ss).Unblock(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.DeviceTrustId) {
		command.NewListDevicesCommand(b, t.ss).Trust(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.DeviceBlockId) {
		command.NewListDevicesCommand(b, t.ss).Block(ctx, callback)
		return
	}
	if data == buttons.NextPageIps {
		command.NewListIpSessionsCommand(b, t.ss).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageIps {
		command.NewListIpSessionsCommand(b, t.ss).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListIps {
		command.NewListIpSessionsCommand(b, t.ss).CloseList(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.IpUnblockId) {
		command.NewListIpSessionsCommand(b, t.ss).Unblock(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.IpBlockId) {
		command.NewListIpSessionsCommand(b, t.ss).Block(ctx, callback)
		return
	}
	if data == buttons.NextPageLiq {
		command.NewListLiquidityCommand(b, t.ss).NextPage(ctx, callback)
		return
	}
	if data == buttons.BackPageLiq {
		command.NewListLiquidityCommand(b, t.ss).BackPage(ctx, callback)
		return
	}
	if data == buttons.CloseListLiq {
		command.NewListLiquidityCommand(b, t.ss).CloseList(ctx, callback)
		return
	}
	if data == buttons.LiqFilterId {
		command.NewListLiquidityCommand(b, t.ss).CycleFilter(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.LiqDataButton) {
		command.NewListLiquidityCommand(b, t.ss).OpenEntry(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.LiqAdjustId) {
		command.NewAdjustLiquidityCommand(b, t.ss).Start(ctx, callback)
		return
	}
	if strings.HasPrefix(data, buttons.LiqStatusId) {
		command.NewAdjustLiquidityCommand(b, t.ss).SelectStatus(ctx, callback)
		return
	}
	if data == buttons.LiqCancelId {
		command.NewAdjustLiquidityCommand(b, t.ss).Cancel(ctx, callback)
		return
	}

	//settings
	if data == buttons.ThemeLightId {
		command.NewOpenSettingCommand(b, t.theme).SetLight(ctx, callback)
		return
	}
	if data == buttons.ThemeDarkId {
		command.NewOpenSettingCommand(b, t.theme).SetDark(ctx, callback)
		return
	}
	if data == buttons.LogoutId {
		command.NewProfileCommand(b, t.auth).Logout(ctx, callback)
		return
	}

	if data == buttons.DefCloseId {
		if err := util.CheckTypeMessage(b, callback); err != nil {
			log.Error("CheckTypeMessage: ", err)
			return
		}
		msg := callback.Message.Message

		if err := util.DeleteMessage(ctx, b, uint64(msg.Chat.ID), msg.ID); err != nil {
			log.Error("DeleteMessage: ", err)
			return
		}

		userstate.ResetState(msg.Chat.ID)
	}
}
