package ports

import "go.trai.ch/wdabuild/internal/core/domain"

// ConfigLoader defines the interface for loading build settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings from path on top of domain.DefaultSettings.
	// When required is false a missing file yields the defaults.
	Load(path string, required bool) (domain.Settings, error)
}
