// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/term"

	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

// ErrUnknownLogFormat is returned for a --log-format value that is not auto, pretty or json.
var ErrUnknownLogFormat = zerr.New("unknown log format, expected 'auto', 'pretty' or 'json'")

var _ ports.OutputDetector = Detector{}

// Detector inspects the process environment.
type Detector struct {
	// Fd is the descriptor checked for a terminal, stderr when zero.
	Fd uintptr
}

// Detect returns LogFormatJSON when the descriptor is not a terminal or CI is set.
func (d Detector) Detect() domain.LogFormat {
	fd := d.Fd
	if fd == 0 {
		fd = os.Stderr.Fd()
	}
	if IsCI() || !term.IsTerminal(int(fd)) { //nolint:gosec // file descriptors fit in int
		return domain.LogFormatJSON
	}
	return domain.LogFormatPretty
}

// IsCI reports whether the CI environment variable is set to true or 1.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Resolve applies the user flag to detection.
func Resolve(d ports.OutputDetector, flag string) (domain.LogFormat, error) {
	switch domain.LogFormat(flag) {
	case domain.LogFormatPretty:
		return domain.LogFormatPretty, nil
	case domain.LogFormatJSON:
		return domain.LogFormatJSON, nil
	case domain.LogFormatAuto, "":
		return d.Detect(), nil
	default:
		return "", zerr.With(ErrUnknownLogFormat, "format", flag)
	}
}
