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

// ProfileService は身体プロファイルの取得・登録を担当します
type ProfileService interface {
	GetProfile(ctx context.Context, tenantID uuid.UUID) (*model.BodyProfile, error)
	PutProfile(ctx context.Context, tenantID uuid.UUID, req *model.PutProfileRequest) (*model.BodyProfile, error)
}

type profileService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
}

func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{
		db:          db,
		profileRepo: profileRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, tenantID uuid.UUID) (*model.BodyProfile, error) {
	logger := middleware.GetLogger(ctx)

	profile, err := s.profileRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_NOT_FOUND", "身体プロフィールが未登録です。", "", model.ErrNotFound)
		}
		logger.Error("Error finding body profile", "error", err, "tenant_id", tenantID.String())
		return nil, model.ErrInternalServer
	}
	return profile, nil
}

// PutProfile は身体プロファイルを登録または更新します (Upsert)
func (s *profileService) PutProfile(ctx context.Context, tenantID uuid.UUID, req *model.PutProfileRequest) (*model.BodyProfile, error) {
	logger := middleware.GetLogger(ctx)

	var saved *model.BodyProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindByTenant(ctx, tx, tenantID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return model.ErrInternalServer
			}
			profile = &model.BodyProfile{
				ProfileID: uuid.New(),
				TenantID:  tenantID,
			}
		}
		profile.Sex = req.Sex
		profile.HeightCm = req.HeightCm
		profile.LastWeightKg = req.LastWeightKg

		if err := s.profileRepo.Save(ctx, tx, profile); err != nil {
			return model.ErrInternalServer
		}
		saved = profile
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for PutProfile", "error", err, "tenant_id", tenantID.String())
		return nil, err
	}

	logger.Info("Body profile saved", "tenant_id", tenantID.String(), "sex", string(saved.Sex))
	return saved, nil
}
