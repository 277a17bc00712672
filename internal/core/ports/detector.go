package ports

import "go.trai.ch/cssinjs/internal/core/domain"

// OutputDetector picks the log format for the current environment.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type OutputDetector interface {
	// Detect returns LogFormatPretty for interactive terminals and LogFormatJSON otherwise.
	Detect() domain.LogFormat
}
