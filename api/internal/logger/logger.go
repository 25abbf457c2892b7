package logger

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"merchant/api/internal/config"

	"github.com/golang-cz/devslog"
	"github.com/google/uuid"
)

type Logger struct {
	*slog.Logger
}

func Init(config *config.Config) Logger {
	l := New(os.Stdout, config.Prod_env)
	slog.SetDefault(l.Logger)
	return l
}

// New builds a devslog logger for development and a JSON logger for production.
func New(w io.Writer, prod bool) Logger {
	slogOpts := &slog.HandlerOptions{}

	if prod {
		return Logger{slog.New(slog.NewJSONHandler(w, slogOpts))}
	}

	slogOpts.Level = slog.LevelDebug

	// new logger with options
	opts := &devslog.Options{
		HandlerOptions:    slogOpts,
		MaxSlicePrintSize: 4,
		SortKeys:          true,
		NewLineAfterLog:   true,
	}

	return Logger{slog.New(devslog.NewHandler(w, opts))}
}

// example Info("merchant created", LS_MERCHANTS, false, "merchant_id", "42")
func (l Logger) Info(message string, logStream Logstream, isTemplate bool, args ...any) {
	l.print(LL_INFO, message, logStream, caller(isTemplate), args...)
}

// example Error("load failed", LS_STORES, false, "store", "redis", "error", "error text")
func (l Logger) Error(message string, logStream Logstream, isTemplate bool, args ...any) {
	l.print(LL_ERROR, message, logStream, caller(isTemplate), args...)
}

// example Fatal("listen failed", LS_FATAL, false, "error", "error text")
func (l Logger) Fatal(message string, logStream Logstream, isTemplate bool, args ...any) {
	l.print(LL_FATAL, message, logStream, caller(isTemplate), args...)
}

func (l Logger) Debug(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)

	args = append(args, "source", file+":"+strconv.Itoa(line))
	l.Logger.Debug(message, args...)
}

func caller(isTemplate bool) string {
	skip := 2
	if isTemplate {
		skip = 3
	}
	_, file, line, _ := runtime.Caller(skip)
	return file + ":" + strconv.Itoa(line)
}

func (l Logger) print(ll LogLevel, message string, logStream Logstream, source string, args ...any) {
	args = append(args, "logstream", logStream.ToString(), "source", source)
	switch ll {
	case LL_ERROR:
		l.Logger.Error(message, args...)
	case LL_INFO:
		l.Logger.Info(message, args...)
	case LL_FATAL:
		l.Logger.Error(message, append(args, "fatal", true)...)
	case LL_DEBUG:
		l.Logger.Debug(message, args...)
	}
}

func GenErrorId() string {
	var errorId string
	uuid, err := uuid.NewRandom()
	if err != nil {
		errorId = NA
	} else {
		errorId = uuid.String()
	}
	return errorId
}
