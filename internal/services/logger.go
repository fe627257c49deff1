package services

import (
	"log/slog"
	"os"
)

// LogService wraps the shared slog logger. When logging was never
// initialised (the default without -debug) every method is a no-op, so
// callers never have to guard their log calls.
type LogService struct {
	logger *slog.Logger
}

var logService = &LogService{}

// InitLogger points the shared logger at a JSON log file. LOG_LEVEL=DEBUG
// lowers the level threshold.
func InitLogger(path string) error {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "DEBUG" {
		logLevel = slog.LevelDebug
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	logService.logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: logLevel}))

	return nil
}

func Logger() *LogService {
	return logService
}

func (l *LogService) Info(msg string) error {
	if l.logger != nil {
		l.logger.Info(msg)
	}
	return nil
}

func (l *LogService) Error(msg string) error {
	if l.logger != nil {
		l.logger.Error(msg)
	}
	return nil
}

func (l *LogService) Debug(msg string) error {
	if l.logger != nil {
		l.logger.Debug(msg)
	}
	return nil
}
