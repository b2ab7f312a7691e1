package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// PreferenceModel represents the database model for a stored preference
type PreferenceModel struct {
	Key       string `gorm:"column:pref_key;primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string {
	return "preferences"
}

// PreferenceStoreAdapter implements the PreferenceStore port using GORM
type PreferenceStoreAdapter struct {
	db *gorm.DB
}

// NewPreferenceStoreAdapter creates a new preference store adapter
func NewPreferenceStoreAdapter(db *gorm.DB) *PreferenceStoreAdapter {
	return &PreferenceStoreAdapter{db: db}
}

// Get retrieves a stored value by key
func (s *PreferenceStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("preference key cannot be empty")
	}

	var model PreferenceModel
	result := s.db.WithContext(ctx).Where("pref_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.NewNotFoundError("preference not found")
		}
		return "", errors.NewStorageError("failed to load preference", result.Error)
	}

	return model.Value, nil
}

// Set inserts or replaces the value stored under key
func (s *PreferenceStoreAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	model := PreferenceModel{Key: key, Value: value}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewStorageError("failed to save preference", result.Error)
	}

	return nil
}

// Ping checks the database connection
func (s *PreferenceStoreAdapter) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

// Close closes the underlying connection pool
func (s *PreferenceStoreAdapter) Close() error {
	if err := CloseDB(s.db); err != nil {
		return errors.NewStorageError("failed to close database connection", err)
	}
	return nil
}

var _ ports.PreferenceStore = (*PreferenceStoreAdapter)(nil)
