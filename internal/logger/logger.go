package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"wedding-registry-backend/internal/config"
)

func New(cfg config.Log) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
