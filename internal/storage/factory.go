package storage

import (
	"fmt"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/config"
)

// New builds the repository set selected by STORAGE_BACKEND.
func New(cfg *config.Config, logger internal.Logger) (Repositories, error) {
	switch cfg.DBType {
	case "memory":
		return NewMemoryStorage(logger), nil
	case "file":
		return NewFileStorage(cfg.DataDir, logger)
	case "postgres":
		return NewPostgresStorage(cfg.DBDSN, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.DBType)
	}
}
