package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

func InitLogger() *logrus.Logger {

	var logger = logrus.New()

	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
		ForceColors:   true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err == nil {
		logger.SetLevel(level)
	}

	return logger
}
