package main

import (
	"os"
	"strconv"
	"time"

	"redadmin/internal/adminbot"
	"redadmin/internal/api"
	"redadmin/internal/cache"
	"redadmin/internal/config"
	"redadmin/internal/schedulers"
	"redadmin/internal/services"
	"redadmin/internal/store"
)

func main() {
	logger := config.InitLogger()
	if err := config.InitConfig(); err != nil {
		logger.Fatalf("Failed to init config: %v", err)
	}
	logger.Infoln("Config initialized")

	backend := initBackend()
	authStore := store.NewAuthStore(backend)
	themeStore := store.NewThemeStore(backend)

	client := api.NewClient(config.LoadApiConfig(), authStore.Token)
	qc := cache.New(cacheTtl())

	authService := services.NewAuthService(client, authStore)
	userService := services.NewUserService(client, qc)
	redPacketService := services.NewRedPacketService(client, qc)
	transactionService := services.NewTransactionService(client, qc)
	checkinService := services.NewCheckinService(client, qc)
	inviteService := services.NewInviteService(client, qc)
	telegramService := services.NewTelegramService(client, qc)
	reportService := services.NewReportService(client, qc)
	securityService := services.NewSecurityService(client, qc)
	dashboardService := services.NewDashboardService(client, qc)

	sched := schedulers.NewRefreshScheduler()

	botConfig := config.LoadBotConfig()
	if botConfig.Token == "" {
		logger.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}
	if len(botConfig.AdminChatIds) == 0 {
		logger.Fatal("ADMIN_CHAT_IDS is not set")
	}

	logger.Infoln("Admin bot starting")
	bt := adminbot.NewAdminBot(
		*botConfig,
		client,
		authStore,
		themeStore,
		sched,
		authService,
		userService,
		redPacketService,
		transactionService,
		checkinService,
		inviteService,
		telegramService,
		reportService,
		securityService,
		dashboardService,
	)
	if err := bt.StartBot(); err != nil {
		logger.Fatal("Failed to start bot: ", err)
	}
}

func initBackend() store.Backend {
	logger := config.InitLogger()
	storeConfig := config.LoadStoreConfig()

	if storeConfig.Backend == "redis" {
		backend, err := store.NewRedisBackend(config.LoadRedisConfig())
		if err != nil {
			logger.Fatal("Failed to connect to redis: ", err)
		}
		logger.Infoln("Redis store initialized")
		return backend
	}

	backend, err := store.NewFileBackend(storeConfig.DataDir)
	if err != nil {
		logger.Fatal("Failed to init file store: ", err)
	}
	logger.Infoln("File store initialized: ", storeConfig.DataDir)
	return backend
}

func cacheTtl() time.Duration {
	ttl := 60 * time.Second
	seconds, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS"))
	if err == nil && seconds > 0 {
		ttl = time.Duration(seconds) * time.Second
	}
	return ttl
}
