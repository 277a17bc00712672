package app

import (
	"go.trai.ch/zerr"

	"go.trai.ch/cssinjs/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/cssinjs/internal/core/domain"
	"go.trai.ch/cssinjs/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Detector ports.OutputDetector
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// ConfigureLogging resolves the --log-format flag and applies it to the logger.
func (c *Components) ConfigureLogging(flag string) error {
	if c.Detector == nil {
		return nil
	}
	format, err := detector.Resolve(c.Detector, flag)
	if err != nil {
		return zerr.Wrap(err, "invalid --log-format")
	}
	if jl, ok := c.Logger.(jsonLogger); ok {
		jl.SetJSON(format == domain.LogFormatJSON)
	}
	return nil
}
