package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/finseed/internal/config"
)

const timeLayout = "15:04:05 02-01-2006"

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (zapcore.Level, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("unsupported log lvl: %s", s)
	}
	return lvl, nil
}

// New builds a logger writing to stdout. Format is "console" (colored levels,
// meant for a terminal) or "json" (for collectors).
func New(lvl zapcore.Level, format string) (*zap.Logger, error) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch format {
	case "", "console":
		format = "console"
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

// InitLogger installs the global zap logger. Callers log through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, err := ParseLevel(conf.LogLvl)
	if err != nil {
		return err
	}

	logger, err := New(lvl, conf.LogFormat)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
