package ports

import "go.trai.ch/gantt/internal/core/domain"

// ProjectLoader loads a project file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project at path. An empty path searches cwd and its parents.
	Load(cwd, path string) (*domain.Project, error)
}
