package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var log = InitLogger()

var DEFAULT_PAGE_SIZE = 10
var AUTO_REFRESH_INTERVAL = 30 * time.Second

type ApiConfig struct {
	BaseUrl string
	Timeout time.Duration
}

type BotConfig struct {
	Token        string
	AdminChatIds []int64
}

type RedisConfig struct {
	Url string
}

type StoreConfig struct {
	Backend string
	DataDir string
}

func InitConfig() error {
	err := godotenv.Load()
	if err != nil {
		log.Error("Error loading .env file")
	}

	pageSize, err := strconv.Atoi(os.Getenv("DEFAULT_PAGE_SIZE"))
	if err == nil && pageSize > 0 {
		DEFAULT_PAGE_SIZE = pageSize
	}

	seconds, err := strconv.Atoi(os.Getenv("AUTO_REFRESH_SECONDS"))
	if err == nil && seconds > 0 {
		AUTO_REFRESH_INTERVAL = time.Duration(seconds) * time.Second
	}

	return nil
}

func LoadApiConfig() *ApiConfig {
	baseUrl := os.Getenv("API_BASE_URL")
	if baseUrl == "" {
		baseUrl = "http://localhost:8080"
	}

	timeout := 15 * time.Second
	seconds, err := strconv.Atoi(os.Getenv("API_TIMEOUT_SECONDS"))
	if err == nil && seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	return &ApiConfig{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		Timeout: timeout,
	}
}

func LoadBotConfig() *BotConfig {
	ids := make([]int64, 0)
	for _, part := range strings.Split(os.Getenv("ADMIN_CHAT_IDS"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Error("Error parsing ADMIN_CHAT_IDS: ", part)
			continue
		}
		ids = append(ids, id)
	}

	return &BotConfig{
		Token:        os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminChatIds: ids,
	}
}

func LoadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Url: os.Getenv("REDIS_URL"),
	}
}

func LoadStoreConfig() *StoreConfig {
	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = "file"
	}
	dataDir := os.Getenv("STORE_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	return &StoreConfig{
		Backend: backend,
		DataDir: dataDir,
	}
}
