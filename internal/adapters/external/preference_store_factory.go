package external

import (
	"fmt"

	"weatherwidget.app/internal/adapters/database"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

type PreferenceStoreFactory struct{}

func NewPreferenceStoreFactory() *PreferenceStoreFactory {
	return &PreferenceStoreFactory{}
}

// CreatePreferenceStore builds the configured store; database stores are migrated before use
func (f *PreferenceStoreFactory) CreatePreferenceStore(cfg *config.PreferencesConfig) (ports.PreferenceStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("preferences config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.PreferenceStoreMemory:
		return NewMemoryPreferenceStore(), nil
	case config.PreferenceStoreRedis:
		return NewRedisPreferenceStoreAdapter(&cfg.Redis)
	case config.PreferenceStoreDatabase:
		db, err := database.Open(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			_ = database.CloseDB(db)
			return nil, err
		}
		return database.NewPreferenceStoreAdapter(db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported preference store type: %s", cfg.Type.String()), nil)
	}
}
