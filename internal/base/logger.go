package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mse-lab/labbook/internal/interfaces/global"
)

var (
	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
)

type Logger struct {
	debug   bool
	logFile *os.File
	slogger *slog.Logger
}

func NewLogger() *Logger {
	return &Logger{}
}

type loggerShutdownCallback struct {
	logger *Logger
}

func (callback *loggerShutdownCallback) Invoke(_ context.Context) error {
	if callback.logger.logFile == nil {
		return nil
	}
	return callback.logger.logFile.Close()
}

func (logger *Logger) Init(debug bool) {
	logger.debug = debug

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	writer := os.Stderr
	if file, err := os.OpenFile(*global.LogFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions); err != nil {
		fmt.Printf("Fail to open log file %s: %v, logging to stderr only\n", *global.LogFilePath, err)
	} else {
		logger.logFile = file
		writer = file
	}

	logger.slogger = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.slogger)
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdownCallback{logger: logger}
}

func (logger *Logger) output(level slog.Level, colorPrinter *color.Color, msg string) {
	_, _ = colorPrinter.Println(msg)
	if logger.slogger != nil {
		logger.slogger.Log(context.Background(), level, msg)
	}
}

func (logger *Logger) Debug(msg string, _ ...interface{}) {
	if !logger.debug {
		return
	}
	logger.output(slog.LevelDebug, debugColor, msg)
}

func (logger *Logger) DebugF(msg string, v ...interface{}) {
	logger.Debug(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Info(msg string, _ ...interface{}) {
	logger.output(slog.LevelInfo, infoColor, msg)
}

func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.Info(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Warn(msg string, _ ...interface{}) {
	logger.output(slog.LevelWarn, warnColor, msg)
}

func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.Warn(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Error(msg string, _ ...interface{}) {
	logger.output(slog.LevelError, errorColor, msg)
}

func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.Error(fmt.Sprintf(msg, v...))
}

func (logger *Logger) Fatal(msg string, _ ...interface{}) {
	logger.output(slog.LevelError, fatalColor, msg)
}

func (logger *Logger) FatalF(msg string, v ...interface{}) {
	logger.Fatal(fmt.Sprintf(msg, v...))
}
