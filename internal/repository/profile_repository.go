//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
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

// ProfileRepository は身体プロフィール (1テナント1件) を扱います
type ProfileRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.BodyProfile, error)
	Save(ctx context.Context, tx *gorm.DB, profile *model.BodyProfile) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.BodyProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.BodyProfile
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding body profile in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByTenant: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) Save(ctx context.Context, tx *gorm.DB, profile *model.BodyProfile) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(profile)
	if result.Error != nil {
		logger.Error("Error saving body profile in DB",
			"error", result.Error,
			"tenant_id", profile.TenantID.String(),
		)
		return fmt.Errorf("gormProfileRepository.Save: %w", result.Error)
	}
	return nil
}
