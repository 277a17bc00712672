package detector_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/adapters/detector"
	"go.trai.ch/cssinjs/internal/core/domain"
)

type fixed domain.LogFormat

func (f fixed) Detect() domain.LogFormat { return domain.LogFormat(f) }

func TestDetector_Detect(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		name string
		ci   string
	}{
		{name: "CI=true", ci: "true"},
		{name: "CI=1", ci: "1"},
		{name: "not a terminal", ci: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			assert.Equal(t, domain.LogFormatJSON, detector.Detector{Fd: f.Fd()}.Detect())
		})
	}
}

func TestIsCI(t *testing.T) {
	t.Setenv("CI", "false")
	assert.False(t, detector.IsCI())
	t.Setenv("CI", "1")
	assert.True(t, detector.IsCI())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		detected domain.LogFormat
		flag     string
		want     domain.LogFormat
	}{
		{name: "auto uses detection", detected: domain.LogFormatPretty, flag: "auto", want: domain.LogFormatPretty},
		{name: "empty uses detection", detected: domain.LogFormatJSON, flag: "", want: domain.LogFormatJSON},
		{name: "pretty overrides", detected: domain.LogFormatJSON, flag: "pretty", want: domain.LogFormatPretty},
		{name: "json overrides", detected: domain.LogFormatPretty, flag: "json", want: domain.LogFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.Resolve(fixed(tt.detected), tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := detector.Resolve(fixed(domain.LogFormatPretty), "xml")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown log format")
}
