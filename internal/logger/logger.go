package logger

import (
	"context"
	"os"
	"path/filepath"

	"blogapi/internal/config"
	"blogapi/internal/reqctx"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log по умолчанию — no-op, чтобы код, пишущий в него до InitLogger
// (и юнит-тесты), не падал на nil.
var Log = zap.NewNop()

func InitLogger() {
	cfg, err := config.LoadConfig()

	if err != nil {
		panic("не удалось загрузить конфиг: " + err.Error())
	}
	logDir := "logs"
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		panic("не удалось создать папку для логов: " + err.Error())
	}

	logLevel := parseLevel(cfg.LogLevel)

	if cfg.Log == "dev" {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.Level = zap.NewAtomicLevelAt(logLevel)
		logger, _ := devCfg.Build()
		Log = logger
		return
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:      "time",
		LevelKey:     "level",
		MessageKey:   "message",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "app.log"),
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     7,
		Compress:   true,
	})

	console := zapcore.Lock(os.Stdout)

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, logLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), console, logLevel),
	)

	Log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// WithCtx возвращает логгер, обогащённый request_id из контекста запроса.
func WithCtx(ctx context.Context) *zap.Logger {
	log := Log
	if log == nil {
		log = zap.NewNop()
	}
	if rid, ok := reqctx.GetRequestID(ctx); ok {
		return log.With(zap.String("request_id", rid))
	}
	return log
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
