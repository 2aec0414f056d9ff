// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package logger

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/elastic/elastic-agent-libs/logp"
)

const iso8601Format = "2006-01-02T15:04:05.000Z0700"

// Level is the logging level.
type Level = logp.Level

// DefaultLogLevel used when nothing is configured.
const DefaultLogLevel = logp.InfoLevel

// Logger alias ecslog.Logger with Logger.
type Logger = logp.Logger

var levelEnabler = zap.NewAtomicLevelAt(DefaultLogLevel.ZapLevel())

// New returns an ECS console logger writing to w at the given level.
func New(name string, lvl Level, w io.Writer) *Logger {
	SetLevel(lvl)

	encoderConfig := ecszap.ECSCompatibleEncoderConfig(logp.ConsoleEncoderConfig())
	encoderConfig.EncodeTime = UtcTimestampEncode
	core := ecszap.WrapCore(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		levelEnabler))

	return logp.NewLogger(
		name,
		zap.WrapCore(func(in zapcore.Core) zapcore.Core {
			return core
		}))
}

// NewInMemory returns a new in-memory logger along with the buffer to which it
// logs. It always logs at debug level.
func NewInMemory(selector string) (*Logger, *bytes.Buffer) {
	buff := bytes.Buffer{}

	encoderConfig := ecszap.ECSCompatibleEncoderConfig(logp.ConsoleEncoderConfig())
	encoderConfig.EncodeTime = UtcTimestampEncode
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(&buff),
		zap.NewAtomicLevelAt(zap.DebugLevel))

	logger := logp.NewLogger(
		selector,
		zap.WrapCore(func(in zapcore.Core) zapcore.Core {
			return core
		}))
	return logger, &buff
}

// ParseLevel converts a level name into a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logp.DebugLevel, nil
	case "info":
		return logp.InfoLevel, nil
	case "warn", "warning":
		return logp.WarnLevel, nil
	case "error":
		return logp.ErrorLevel, nil
	default:
		return DefaultLogLevel, fmt.Errorf("unknown log level: %q", name)
	}
}

// SetLevel changes the level of every logger created by New.
func SetLevel(lvl Level) {
	levelEnabler.SetLevel(lvl.ZapLevel())
}

// UtcTimestampEncode is a zapcore.TimeEncoder that formats time.Time in ISO-8601 in UTC.
func UtcTimestampEncode(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	type appendTimeEncoder interface {
		AppendTimeLayout(time.Time, string)
	}
	if enc, ok := enc.(appendTimeEncoder); ok {
		enc.AppendTimeLayout(t.UTC(), iso8601Format)
		return
	}
	enc.AppendString(t.UTC().Format(iso8601Format))
}
