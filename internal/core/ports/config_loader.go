package ports

import "go.trai.ch/cssinjs/internal/core/domain"

// ConfigLoader defines the interface for loading the style configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads, parses and validates the stylefile at path.
	Load(path string) (*domain.Stylefile, error)
}
