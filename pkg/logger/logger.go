// Package logger builds the zap loggers used by the CLI and the tailoring pipeline.
package logger

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FieldRunID identifies one CLI invocation across log lines.
	FieldRunID = "run_id"
	// FieldCompany is the target company of a run.
	FieldCompany = "company"
	// FieldRole is the target role of a run.
	FieldRole = "role"
)

// New builds a console or JSON logger writing to stderr, so documents printed to
// stdout stay clean.
func New(json bool, debug bool) (logger *zap.Logger, err error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	logger, err = cfg.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return logger, err
	}

	return logger, err
}

// WithFields attaches fields to logger, falling back to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) (enriched *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		enriched = logger
		return enriched
	}

	enriched = logger.With(fields...)
	return enriched
}

// RunFields returns the fields identifying one tailoring run. Empty values are skipped.
func RunFields(runID, company, role string) (fields []zap.Field) {
	fields = make([]zap.Field, 0, 3)

	for _, kv := range [][2]string{{FieldRunID, runID}, {FieldCompany, company}, {FieldRole, role}} {
		value := strings.TrimSpace(kv[1])
		if value == "" {
			continue
		}
		fields = append(fields, zap.String(kv[0], value))
	}

	return fields
}

// Excerpt flattens text onto one line, collapsing whitespace runs to single spaces,
// and cuts it to limit runes with a trailing ellipsis.
func Excerpt(text string, limit int) (excerpt string) {
	if limit <= 0 {
		return excerpt
	}

	flat := strings.Join(strings.Fields(text), " ")

	runes := []rune(flat)
	if len(runes) <= limit {
		excerpt = flat
		return excerpt
	}

	excerpt = strings.TrimRight(string(runes[:limit]), " ") + "..."
	return excerpt
}
