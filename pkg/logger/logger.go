// Package logger определяет единый интерфейс логирования приложения.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger — интерфейс логгера, используемый во всех слоях приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type zerologLogger struct {
	log zerolog.Logger
}

// NewLogger создает логгер поверх zerolog с выводом в stdout.
// Уровень задается переменной окружения LOG_LEVEL (по умолчанию info).
func NewLogger() Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339

	return &zerologLogger{log: log}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(err error, format string, args ...any) {
	l.log.Error().Err(err).Msgf(format, args...)
}

// Nop возвращает логгер, отбрасывающий все сообщения. Используется в тестах.
func Nop() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}
