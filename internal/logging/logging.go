// Package logging wraps log/slog for the lesson player and the CLI.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field  { return Field{Key: key, Value: value} }
func Int(key string, value int) Field { return Field{Key: key, Value: value} }
func Err(err error) Field             { return Field{Key: "error", Value: err} }

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Config mirrors the log section of the config file. Output is used when
// File is empty.
type Config struct {
	Level  string
	Format string
	File   string
	Output io.Writer
}

// New writes to cfg.Output, or stderr since stdout belongs to the screen.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &logger{l: slog.New(handler(out, cfg))}
}

// Open is New for a log file. Without a file or an output nothing is
// logged. The returned func releases the file and is safe to call either
// way.
func Open(cfg Config) (Logger, func() error, error) {
	if cfg.File == "" {
		if cfg.Output == nil {
			return Noop(), func() error { return nil }, nil
		}
		return New(cfg), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to open log file %s", cfg.File)
	}
	cfg.Output = f
	return New(cfg), f.Close, nil
}

func Noop() Logger { return &logger{l: slog.New(slog.DiscardHandler)} }

func handler(out io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: level(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

func level(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

type logger struct {
	l *slog.Logger
}

func (g *logger) With(fields ...Field) Logger {
	return &logger{l: slog.New(g.l.Handler().WithAttrs(attrs(fields)))}
}

func (g *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	g.l.LogAttrs(ctx, slog.LevelDebug, msg, attrs(fields)...)
}

func (g *logger) Info(ctx context.Context, msg string, fields ...Field) {
	g.l.LogAttrs(ctx, slog.LevelInfo, msg, attrs(fields)...)
}

func (g *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	g.l.LogAttrs(ctx, slog.LevelWarn, msg, attrs(fields)...)
}

func (g *logger) Error(ctx context.Context, msg string, fields ...Field) {
	g.l.LogAttrs(ctx, slog.LevelError, msg, attrs(fields)...)
}

func attrs(fields []Field) []slog.Attr {
	out := make([]slog.Attr, len(fields))
	for i, f := range fields {
		out[i] = slog.Any(f.Key, f.Value)
	}
	return out
}
