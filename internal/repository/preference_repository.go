//go:generate mockery --name PreferenceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"fittrack/internal/middleware"
	"fittrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferenceRepository は計測頻度の設定 (1テナント1件) を扱います
type PreferenceRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.MeasurementPreference, error)
	Save(ctx context.Context, tx *gorm.DB, pref *model.MeasurementPreference) error
}

type gormPreferenceRepository struct{}

func NewGormPreferenceRepository() PreferenceRepository {
	return &gormPreferenceRepository{}
}

func (r *gormPreferenceRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.MeasurementPreference, error) {
	logger := middleware.GetLogger(ctx)
	var pref model.MeasurementPreference
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&pref)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding measurement preference in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormPreferenceRepository.FindByTenant: %w", result.Error)
	}
	return &pref, nil
}

func (r *gormPreferenceRepository) Save(ctx context.Context, tx *gorm.DB, pref *model.MeasurementPreference) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(pref)
	if result.Error != nil {
		logger.Error("Error saving measurement preference in DB",
			"error", result.Error,
			"tenant_id", pref.TenantID.String(),
		)
		return fmt.Errorf("gormPreferenceRepository.Save: %w", result.Error)
	}
	return nil
}
