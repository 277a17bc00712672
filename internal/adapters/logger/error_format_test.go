package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/adapters/logger"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			var got []string
			for _, e := range entries {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
	outer := zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")

	entries := logger.CollectErrorEntriesExported(outer)

	assert.Len(t, entries, 2)
	assert.Equal(t, map[string]any{"outer_key": "outer_val"}, entries[0].Metadata)
	assert.Equal(t, map[string]any{"inner_key": "inner_val"}, entries[1].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"selector": ".a:not(.b .c)"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      selector: .a:not(.b .c)",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause line1\ncause line2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": "m"},
			}},
			want: "Error: error\n       alpha: a\n       mike: m\n       zebra: z",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestCollectAndFormat(t *testing.T) {
	inner := zerr.With(zerr.New("could not find cssinjs.yaml"), "dir", "/work")
	outer := zerr.With(zerr.Wrap(inner, "failed to load stylefile"), "command", "build")

	got := logger.FormatErrorEntriesExported(logger.CollectErrorEntriesExported(outer))

	assert.Equal(t, "Error: failed to load stylefile\n"+
		"       command: build\n\n"+
		"  Caused by:\n"+
		"    → could not find cssinjs.yaml\n"+
		"      dir: /work", got)
}
