package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		l, err := New(json, true)
		if err != nil {
			t.Fatalf("Failed to build logger (json=%v): %v", json, err)
		}

		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("Expected debug level to be enabled (json=%v)", json)
		}
	}

	l, err := New(false, false)
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}

	if l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug level to be disabled")
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), RunFields("abc-123", " Acme ", "")...).Info("tailored")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldRunID] != "abc-123" {
		t.Errorf("Expected run id 'abc-123', got %v", ctx[FieldRunID])
	}
	if ctx[FieldCompany] != "Acme" {
		t.Errorf("Expected company 'Acme', got %v", ctx[FieldCompany])
	}
	if _, ok := ctx[FieldRole]; ok {
		t.Error("Expected empty role to be omitted")
	}

	fallback := WithFields(nil, zap.String("k", "v"))
	if fallback == nil {
		t.Fatal("Expected fallback logger when nil provided")
	}
	fallback.Info("does not panic")
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short text trimmed", in: "  short  ", limit: 10, want: "short"},
		{name: "cut with ellipsis", in: "Senior Frontend Engineer", limit: 6, want: "Senior..."},
		{name: "no trailing space before ellipsis", in: "Senior Frontend Engineer", limit: 7, want: "Senior..."},
		{name: "zero limit", in: "anything", limit: 0, want: ""},
		{name: "counts runes", in: "résumé", limit: 3, want: "rés..."},
		{name: "newlines flattened", in: "Senior engineer\n\n\tReact,   Node.js\n", limit: 100, want: "Senior engineer React, Node.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tt.in, tt.limit)
			if got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}
