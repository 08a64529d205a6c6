package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare returns the configured zap logger for use by the program.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {
	var level zapcore.Level
	switch conf.Level {
	case "", "none":
		return zap.NewNop(), nil
	case "normal":
		level = zapcore.InfoLevel
	case "debug":
		level = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown logging level %q", conf.Level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	sink := zapcore.Lock(os.Stderr)
	if conf.Destination != "" {
		f, err := os.OpenFile(conf.Destination, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to open log destination: %w", err)
		}
		sink = zapcore.Lock(f)
	}

	core := zapcore.NewCore(encoder, sink, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	}))
	return zap.New(core), nil
}
