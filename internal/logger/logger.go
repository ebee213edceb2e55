package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/muliwe/go-dispatch-sorter/internal/classifier"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logger configuration
type Config struct {
	Level   string    // debug, info, warn or error
	Format  string    // text (tint) or json
	NoColor bool      // disable ANSI colors in text output
	Output  io.Writer // defaults to os.Stderr
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatText,
		Output: os.Stderr,
	}
}

// Logger writes structured classification records
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.NoColor,
		})
	case FormatJSON:
		h = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return &Logger{Logger: slog.New(h)}, nil
}

// Discard returns a logger that drops every record
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// LogDecision records a successful classification
func (l *Logger) LogDecision(runID string, d classifier.Decision) {
	l.Info("package classified",
		slog.String("run_id", runID),
		slog.Group("package",
			slog.Float64("width", d.Package.Width),
			slog.Float64("height", d.Package.Height),
			slog.Float64("length", d.Package.Length),
			slog.Float64("mass", d.Package.Mass),
		),
		finite("volume", d.Volume),
		slog.Bool("bulky", d.Bulky),
		slog.Bool("heavy", d.Heavy),
		slog.String("classification", d.Classification.String()),
		slog.String("reason", d.Reason),
	)
}

// finite logs an overflowed value as a string, the JSON handler cannot
// encode ±Inf
func finite(key string, f float64) slog.Attr {
	if math.IsInf(f, 0) {
		return slog.String(key, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return slog.Float64(key, f)
}

// LogRejectedInput records input that failed validation
func (l *Logger) LogRejectedInput(runID string, err error) {
	attrs := []any{slog.String("run_id", runID), tint.Err(err)}

	var inputErr *classifier.InputError
	if errors.As(err, &inputErr) {
		attrs = append(attrs,
			slog.String("field", inputErr.Field.String()),
			slog.String("type", inputErr.Type),
		)
	}
	l.Warn("invalid package input", attrs...)
}
