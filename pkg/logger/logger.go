package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// Создается сразу, чтобы библиотечный код мог логировать и без Init
// (например, в тестах).
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте в main.go.
//
//	LOG_LEVEL  - уровень (по умолчанию "info")
//	LOG_FORMAT - "json" для продакшена, иначе текст
func Init() {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	Setup(level, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Setup применяет явные настройки (из конфига). Неизвестный уровень
// превращается в info, неизвестный формат - в текст.
func Setup(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	if out != nil {
		Log.SetOutput(out)
	}
}
