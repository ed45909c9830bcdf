// Package logging builds the zap logger for a single CLI invocation.
//
// Logging is off unless asked for: stdout carries command output only, so
// log lines go to stderr (--verbose) and/or a rotating file (log-file).
package logging

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log sinks.
type Options struct {
	// Verbose enables debug output on Stderr.
	Verbose bool
	Stderr  io.Writer

	// File, when set, receives JSON logs at debug level.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a logger writing to the sinks in opts, or a no-op logger when
// none is enabled. The returned cleanup flushes and closes the file sink.
func New(opts Options) (*zap.Logger, func()) {
	var cores []zapcore.Core
	var closers []io.Closer

	if opts.Verbose && opts.Stderr != nil {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("15:04:05.000"))
		}
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(opts.Stderr),
			zapcore.DebugLevel,
		))
	}

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		closers = append(closers, lj)

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(lj),
			zapcore.DebugLevel,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return logger, func() {
		_ = logger.Sync()
		for _, c := range closers {
			_ = c.Close()
		}
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
