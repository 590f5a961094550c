package service

import (
	"context"
	"errors"

	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferenceService は計測リズム設定の取得・更新を担当します
//
//go:generate mockery --name PreferenceService --output ./mocks --outpkg mocks --case=underscore
type PreferenceService interface {
	GetPreference(ctx context.Context, tenantID uuid.UUID) (*model.MeasurementPreference, error)
	UpdatePreference(ctx context.Context, tenantID uuid.UUID, req *model.UpdatePreferenceRequest) (*model.MeasurementPreference, error)
}

type preferenceService struct {
	db       *gorm.DB
	prefRepo repository.PreferenceRepository
}

func NewPreferenceService(db *gorm.DB, prefRepo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{
		db:       db,
		prefRepo: prefRepo,
	}
}

// GetPreference は設定を返します。未作成の場合はデフォルト値で遅延作成します
func (s *preferenceService) GetPreference(ctx context.Context, tenantID uuid.UUID) (*model.MeasurementPreference, error) {
	logger := middleware.GetLogger(ctx)

	pref, err := s.prefRepo.FindByTenant(ctx, s.db, tenantID)
	if err == nil {
		// 過去の不正データが残っていてもスケジューラに渡る値は正当に保つ
		pref.IntervalWeeks = model.CoerceIntervalWeeks(pref.IntervalWeeks)
		return pref, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error finding measurement preference", "error", err, "tenant_id", tenantID.String())
		return nil, model.ErrInternalServer
	}

	newPref := &model.MeasurementPreference{
		PreferenceID:  uuid.New(),
		TenantID:      tenantID,
		IntervalWeeks: model.DefaultIntervalWeeks,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.prefRepo.Save(ctx, tx, newPref)
	})
	if err != nil {
		logger.Error("Error creating default measurement preference", "error", err, "tenant_id", tenantID.String())
		return nil, model.ErrInternalServer
	}

	logger.Info("Created default measurement preference", "tenant_id", tenantID.String())
	return newPref, nil
}

// UpdatePreference は計測間隔を更新します
func (s *preferenceService) UpdatePreference(ctx context.Context, tenantID uuid.UUID, req *model.UpdatePreferenceRequest) (*model.MeasurementPreference, error) {
	logger := middleware.GetLogger(ctx)

	if !model.IsValidIntervalWeeks(req.IntervalWeeks) {
		return nil, model.NewAppError("INVALID_INTERVAL", "計測間隔は1〜4週で指定してください。", "interval_weeks", model.ErrInvalidInput)
	}

	var updated *model.MeasurementPreference
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pref, err := s.prefRepo.FindByTenant(ctx, tx, tenantID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return model.ErrInternalServer
			}
			pref = &model.MeasurementPreference{
				PreferenceID: uuid.New(),
				TenantID:     tenantID,
			}
		}
		pref.IntervalWeeks = req.IntervalWeeks
		if err := s.prefRepo.Save(ctx, tx, pref); err != nil {
			return model.ErrInternalServer
		}
		updated = pref
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for UpdatePreference", "error", err, "tenant_id", tenantID.String())
		return nil, err
	}

	logger.Info("Measurement preference updated", "tenant_id", tenantID.String(), "interval_weeks", updated.IntervalWeeks)
	return updated, nil
}
