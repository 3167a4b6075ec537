package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var once sync.Once

// StandardLogger enforces specific log message formats.
type StandardLogger struct {
	*zap.SugaredLogger
}

// IntegerLevelEncoder returns custom encoder for level field.
func IntegerLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendInt8((int8(l) + 3) * 10)
}

var appLogger *StandardLogger

// NewLogger creates a new application logger. Output goes to stderr so the
// phrases printed on stdout stay clean.
func NewLogger() *StandardLogger {
	var cfg zap.Config
	outputLevel := zap.WarnLevel
	if levelEnv := os.Getenv("LOG_LEVEL"); levelEnv != "" {
		levelFromEnv, err := zapcore.ParseLevel(levelEnv)
		if err != nil {
			log.Println(
				fmt.Errorf("invalid level, defaulting to WARN: %w", err),
			)
		} else {
			outputLevel = levelFromEnv
		}
	}
	if os.Getenv("CRONPHRASE_ENV") != "local" {
		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		cfg.InitialFields = map[string]any{"name": "cronphrase"}
		cfg.EncoderConfig.EncodeLevel = IntegerLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.TimeKey = "time"
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(outputLevel)
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return &StandardLogger{SugaredLogger: logger.Sugar()}
}

// NopLogger discards everything.
func NopLogger() *StandardLogger {
	return &StandardLogger{zap.NewNop().Sugar()}
}

func GetAppLogger(ctx context.Context) *StandardLogger {
	once.Do(func() {
		appLogger = NewLogger()
	})
	return LoggerFromCtx(ctx)
}

func GetChildLogger(parent *StandardLogger, childContext map[string]string) *StandardLogger {
	zapFields := make([]any, 0, len(childContext))
	for k, v := range childContext {
		zapFields = append(zapFields, zap.String(k, v))
	}
	return &StandardLogger{parent.With(zapFields...)}
}

// LoggerFromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned, unless it is nil
// in which case a disabled logger is returned.
func LoggerFromCtx(ctx context.Context) *StandardLogger {
	if l, ok := ctx.Value(ctxKey{}).(*StandardLogger); ok {
		return l
	} else if l := appLogger; l != nil {
		return l
	}
	return NopLogger()
}

// LoggerWithCtx returns a copy of ctx with the Logger attached.
func LoggerWithCtx(ctx context.Context, l *StandardLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*StandardLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
