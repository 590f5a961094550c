//go:generate mockery --name EntryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"fittrack/internal/middleware"
	"fittrack/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// EntryRepository は体組成の計測記録を扱います
type EntryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.ProgressEntry) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, entryID uuid.UUID) (*model.ProgressEntry, error)
	FindByDate(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, recordedOn model.Date) (*model.ProgressEntry, error)
	FindLatest(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.ProgressEntry, error)
	ListByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.ProgressEntry, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, entryID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, entryID uuid.UUID) error
}

type gormEntryRepository struct{}

func NewGormEntryRepository() EntryRepository {
	return &gormEntryRepository{}
}

func (r *gormEntryRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.ProgressEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		// (tenant_id, recorded_on) の複合ユニーク制約違反は競合として返す
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate entry for date",
				"tenant_id", entry.TenantID.String(),
				"recorded_on", entry.RecordedOn.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating progress entry in DB",
			"error", result.Error,
			"tenant_id", entry.TenantID.String(),
			"recorded_on", entry.RecordedOn.String(),
		)
		return fmt.Errorf("gormEntryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEntryRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, entryID uuid.UUID) (*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.ProgressEntry
	result := db.WithContext(ctx).Where("tenant_id = ? AND entry_id = ?", tenantID, entryID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress entry by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"entry_id", entryID.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormEntryRepository) FindByDate(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, recordedOn model.Date) (*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.ProgressEntry
	result := db.WithContext(ctx).Where("tenant_id = ? AND recorded_on = ?", tenantID, recordedOn).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress entry by date in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"recorded_on", recordedOn.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.FindByDate: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormEntryRepository) FindLatest(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.ProgressEntry
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("recorded_on DESC").First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding latest progress entry in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.FindLatest: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormEntryRepository) ListByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.ProgressEntry
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("recorded_on DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&entries)
	if result.Error != nil {
		logger.Error("Error listing progress entries by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.ListByTenant: %w", result.Error)
	}
	return entries, nil
}

func (r *gormEntryRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, entryID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.ProgressEntry{}).Where("tenant_id = ? AND entry_id = ?", tenantID, entryID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating progress entry in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"entry_id", entryID.String(),
		)
		return fmt.Errorf("gormEntryRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEntryRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.ProgressEntry{}, entryID)
	if result.Error != nil {
		logger.Error("Error deleting progress entry in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"entry_id", entryID.String(),
		)
		return fmt.Errorf("gormEntryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
