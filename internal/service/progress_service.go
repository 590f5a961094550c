package service

import (
	"context"
	"errors"

	"fittrack/internal/composition"
	"fittrack/internal/config"
	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService は計測記録のCRUDと、記録作成時の
// スケジュール検証・体組成推定のオーケストレーションを担当します
//
//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
type ProgressService interface {
	CreateEntry(ctx context.Context, tenantID uuid.UUID, req *model.PostEntryRequest, now model.Date) (*model.ProgressEntry, error)
	GetEntry(ctx context.Context, tenantID, entryID uuid.UUID) (*model.ProgressEntry, error)
	ListEntries(ctx context.Context, tenantID uuid.UUID) ([]*model.ProgressEntry, error)
	UpdateEntry(ctx context.Context, tenantID, entryID uuid.UUID, req *model.PatchEntryRequest) (*model.ProgressEntry, error)
	DeleteEntry(ctx context.Context, tenantID, entryID uuid.UUID) error
}

type progressService struct {
	db          *gorm.DB
	entryRepo   repository.EntryRepository
	prefRepo    repository.PreferenceRepository
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewProgressService(db *gorm.DB, entryRepo repository.EntryRepository, prefRepo repository.PreferenceRepository, profileRepo repository.ProfileRepository, cfg *config.Config) ProgressService {
	return &progressService{
		db:          db,
		entryRepo:   entryRepo,
		prefRepo:    prefRepo,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

// CreateEntry は新しい計測記録を作成します。
// 記録日は候補日集合に含まれるか既存記録の日付であることが必要で、
// 前回記録からの最小間隔も検証します。同じ日付への再送信は既存行の
// 更新として扱います (1日1件の不変条件を保つ)。
func (s *progressService) CreateEntry(ctx context.Context, tenantID uuid.UUID, req *model.PostEntryRequest, now model.Date) (*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)

	if req.RecordedOn.IsZero() {
		return nil, model.NewAppError("INVALID_DATE", "計測日を指定してください。", "recorded_on", model.ErrInvalidInput)
	}

	intervalWeeks, err := s.resolveIntervalWeeks(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var saved *model.ProgressEntry
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同日の既存記録があれば更新に切り替える
		existing, err := s.entryRepo.FindByDate(ctx, tx, tenantID, req.RecordedOn)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if existing != nil {
			return s.overwriteEntry(ctx, tx, tenantID, existing, req, &saved)
		}

		// 最新記録を取得してアンカーと前回日を決める
		var previous *model.Date
		anchor := now
		latest, err := s.entryRepo.FindLatest(ctx, tx, tenantID)
		if err == nil {
			previous = &latest.RecordedOn
			anchor = latest.RecordedOn
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}

		// 候補日集合への所属チェック
		suggestions := schedule.SuggestedDates(anchor, intervalWeeks, now)
		if !schedule.Contains(suggestions, req.RecordedOn) {
			logger.Warn("Entry date not in suggestion set",
				"tenant_id", tenantID.String(),
				"recorded_on", req.RecordedOn.String(),
			)
			return model.NewAppError("DATE_NOT_IN_SCHEDULE", "指定された日付は設定された計測頻度に一致しません。", "recorded_on", model.ErrInvalidInput)
		}

		// 前回記録からの最小間隔チェック (過去日への修正記録は免除)
		if err := schedule.ValidateNewEntryDate(req.RecordedOn, previous, intervalWeeks); err != nil {
			return err
		}

		entry := &model.ProgressEntry{
			EntryID:       uuid.New(),
			TenantID:      tenantID,
			RecordedOn:    req.RecordedOn,
			WeightKg:      req.WeightKg,
			WaistCm:       req.WaistCm,
			HipCm:         req.HipCm,
			NeckCm:        req.NeckCm,
			ChestCm:       req.ChestCm,
			ArmCm:         req.ArmCm,
			ThighCm:       req.ThighCm,
			GluteCm:       req.GluteCm,
			FatPercent:    req.FatPercent,
			MusclePercent: req.MusclePercent,
			WaterPercent:  req.WaterPercent,
			Notes:         req.Notes,
			Source:        req.Source,
		}
		if entry.Source == "" {
			entry.Source = model.EntrySourceManual
		}

		if err := s.applyEstimation(ctx, tx, tenantID, entry); err != nil {
			return err
		}

		if err := s.entryRepo.Create(ctx, tx, entry); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// FindByDateとの間に同日レコードが入った場合
				return model.NewAppError("DUPLICATE_DATE", "この日付の記録は既に存在します。", "recorded_on", model.ErrConflict)
			}
			return model.ErrInternalServer
		}

		if err := s.syncProfileWeight(ctx, tx, tenantID, entry.WeightKg); err != nil {
			return err
		}

		saved = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Progress entry created",
		"tenant_id", tenantID.String(),
		"entry_id", saved.EntryID.String(),
		"recorded_on", saved.RecordedOn.String(),
	)
	return saved, nil
}

func (s *progressService) GetEntry(ctx context.Context, tenantID, entryID uuid.UUID) (*model.ProgressEntry, error) {
	return s.entryRepo.FindByID(ctx, s.db, tenantID, entryID)
}

func (s *progressService) ListEntries(ctx context.Context, tenantID uuid.UUID) ([]*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)
	entries, err := s.entryRepo.ListByTenant(ctx, s.db, tenantID, s.cfg.App.EntryListLimit)
	if err != nil {
		logger.Error("Error listing progress entries", "error", err, "tenant_id", tenantID.String())
		return nil, model.ErrInternalServer
	}
	return entries, nil
}

// UpdateEntry は既存記録を部分更新します。日付の変更はできません。
// 周囲径が変わった場合は体組成を再推定します (手入力の体脂肪率が
// 同時に指定された場合はそちらを優先)。
func (s *progressService) UpdateEntry(ctx context.Context, tenantID, entryID uuid.UUID, req *model.PatchEntryRequest) (*model.ProgressEntry, error) {
	logger := middleware.GetLogger(ctx)

	if req.IsEmpty() {
		return nil, model.NewAppError("EMPTY_UPDATE", "更新する項目を1つ以上指定してください。", "", model.ErrInvalidInput)
	}

	var updated *model.ProgressEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindByID(ctx, tx, tenantID, entryID)
		if err != nil {
			return err
		}

		applyPatch(entry, req)

		circumferenceChanged := req.WaistCm != nil || req.HipCm != nil || req.NeckCm != nil || req.WeightKg != nil
		if circumferenceChanged && req.FatPercent == nil {
			// 再推定は可能な場合のみ。必須項目が揃わなければ既存値を残す
			if err := s.reestimate(ctx, tx, tenantID, entry); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"WeightKg":      entry.WeightKg,
			"WaistCm":       entry.WaistCm,
			"HipCm":         entry.HipCm,
			"NeckCm":        entry.NeckCm,
			"ChestCm":       entry.ChestCm,
			"ArmCm":         entry.ArmCm,
			"ThighCm":       entry.ThighCm,
			"GluteCm":       entry.GluteCm,
			"FatPercent":    entry.FatPercent,
			"MusclePercent": entry.MusclePercent,
			"WaterPercent":  entry.WaterPercent,
			"Notes":         entry.Notes,
		}
		if err := s.entryRepo.Update(ctx, tx, tenantID, entryID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.ErrInternalServer
		}

		if err := s.syncProfileWeight(ctx, tx, tenantID, req.WeightKg); err != nil {
			return err
		}

		updated, err = s.entryRepo.FindByID(ctx, tx, tenantID, entryID)
		if err != nil {
			return model.ErrInternalServer
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateEntry", "error", err, "tenant_id", tenantID.String())
		return nil, err
	}

	return updated, nil
}

func (s *progressService) DeleteEntry(ctx context.Context, tenantID, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.entryRepo.Delete(ctx, tx, tenantID, entryID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Transaction failed for DeleteEntry", "error", err, "tenant_id", tenantID.String())
		return model.ErrInternalServer
	}

	logger.Info("Progress entry deleted", "tenant_id", tenantID.String(), "entry_id", entryID.String())
	return nil
}

// --- ヘルパー関数 ---

func (s *progressService) resolveIntervalWeeks(ctx context.Context, tenantID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)

	pref, err := s.prefRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.DefaultIntervalWeeks, nil
		}
		logger.Error("Error finding measurement preference", "error", err, "tenant_id", tenantID.String())
		return 0, model.ErrInternalServer
	}
	return model.CoerceIntervalWeeks(pref.IntervalWeeks), nil
}

// overwriteEntry は同日再送信を既存行の更新として処理します
func (s *progressService) overwriteEntry(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, existing *model.ProgressEntry, req *model.PostEntryRequest, out **model.ProgressEntry) error {
	logger := middleware.GetLogger(ctx)

	existing.WeightKg = req.WeightKg
	existing.WaistCm = req.WaistCm
	existing.HipCm = req.HipCm
	existing.NeckCm = req.NeckCm
	existing.ChestCm = req.ChestCm
	existing.ArmCm = req.ArmCm
	existing.ThighCm = req.ThighCm
	existing.GluteCm = req.GluteCm
	existing.FatPercent = req.FatPercent
	existing.MusclePercent = req.MusclePercent
	existing.WaterPercent = req.WaterPercent
	existing.Notes = req.Notes
	if req.Source != "" {
		existing.Source = req.Source
	}

	if err := s.applyEstimation(ctx, tx, tenantID, existing); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"WeightKg":      existing.WeightKg,
		"WaistCm":       existing.WaistCm,
		"HipCm":         existing.HipCm,
		"NeckCm":        existing.NeckCm,
		"ChestCm":       existing.ChestCm,
		"ArmCm":         existing.ArmCm,
		"ThighCm":       existing.ThighCm,
		"GluteCm":       existing.GluteCm,
		"FatPercent":    existing.FatPercent,
		"MusclePercent": existing.MusclePercent,
		"WaterPercent":  existing.WaterPercent,
		"Notes":         existing.Notes,
		"Source":        existing.Source,
	}
	if err := s.entryRepo.Update(ctx, tx, tenantID, existing.EntryID, updates); err != nil {
		return model.ErrInternalServer
	}

	if err := s.syncProfileWeight(ctx, tx, tenantID, existing.WeightKg); err != nil {
		return err
	}

	logger.Info("Progress entry overwritten for same date",
		"tenant_id", tenantID.String(),
		"entry_id", existing.EntryID.String(),
		"recorded_on", existing.RecordedOn.String(),
	)
	*out = existing
	return nil
}

// applyEstimation はユーザーが体脂肪率を手入力していない場合に、
// 周囲径から体組成を推定して記録に反映します。推定する意思があると
// みなすのはウエストと首回りの両方が入力されたときだけで、その場合に
// 必須項目が欠けていればまとめてエラーを返します。
func (s *progressService) applyEstimation(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, entry *model.ProgressEntry) error {
	logger := middleware.GetLogger(ctx)

	if entry.FatPercent != nil {
		return nil
	}
	if entry.WaistCm == nil || entry.NeckCm == nil {
		return nil
	}

	profile, err := s.profileRepo.FindByTenant(ctx, tx, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// プロフィール未登録なら推定せず実測値のみ保存する
			logger.Debug("Skipping composition estimation: no body profile", "tenant_id", tenantID.String())
			return nil
		}
		return model.ErrInternalServer
	}

	weight := entry.WeightKg
	if weight == nil {
		weight = profile.LastWeightKg
	}

	result, err := composition.Estimate(composition.Input{
		Sex:      profile.Sex,
		HeightCm: &profile.HeightCm,
		NeckCm:   entry.NeckCm,
		WaistCm:  entry.WaistCm,
		HipCm:    entry.HipCm,
		WeightKg: weight,
	})
	if err != nil {
		return err
	}

	fat := result.FatPercent
	entry.FatPercent = &fat
	if entry.WaterPercent == nil {
		entry.WaterPercent = result.WaterPercent
	}
	if entry.MusclePercent == nil {
		entry.MusclePercent = result.MusclePercent
	}
	return nil
}

// reestimate はPATCHで周囲径が変わった場合の再推定です。
// 必須項目が揃わないときはエラーにせず既存の推定値を残します
func (s *progressService) reestimate(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, entry *model.ProgressEntry) error {
	if entry.WaistCm == nil || entry.NeckCm == nil {
		return nil
	}

	profile, err := s.profileRepo.FindByTenant(ctx, tx, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return model.ErrInternalServer
	}

	weight := entry.WeightKg
	if weight == nil {
		weight = profile.LastWeightKg
	}

	result, err := composition.Estimate(composition.Input{
		Sex:      profile.Sex,
		HeightCm: &profile.HeightCm,
		NeckCm:   entry.NeckCm,
		WaistCm:  entry.WaistCm,
		HipCm:    entry.HipCm,
		WeightKg: weight,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil
		}
		return err
	}

	fat := result.FatPercent
	entry.FatPercent = &fat
	entry.WaterPercent = result.WaterPercent
	entry.MusclePercent = result.MusclePercent
	return nil
}

// syncProfileWeight は記録された体重を身体プロフィールの直近体重に反映します
func (s *progressService) syncProfileWeight(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, weightKg *float64) error {
	if weightKg == nil {
		return nil
	}

	profile, err := s.profileRepo.FindByTenant(ctx, tx, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return model.ErrInternalServer
	}

	profile.LastWeightKg = weightKg
	if err := s.profileRepo.Save(ctx, tx, profile); err != nil {
		return model.ErrInternalServer
	}
	return nil
}

func applyPatch(entry *model.ProgressEntry, req *model.PatchEntryRequest) {
	if req.WeightKg != nil {
		entry.WeightKg = req.WeightKg
	}
	if req.WaistCm != nil {
		entry.WaistCm = req.WaistCm
	}
	if req.HipCm != nil {
		entry.HipCm = req.HipCm
	}
	if req.NeckCm != nil {
		entry.NeckCm = req.NeckCm
	}
	if req.ChestCm != nil {
		entry.ChestCm = req.ChestCm
	}
	if req.ArmCm != nil {
		entry.ArmCm = req.ArmCm
	}
	if req.ThighCm != nil {
		entry.ThighCm = req.ThighCm
	}
	if req.GluteCm != nil {
		entry.GluteCm = req.GluteCm
	}
	if req.FatPercent != nil {
		entry.FatPercent = req.FatPercent
	}
	if req.MusclePercent != nil {
		entry.MusclePercent = req.MusclePercent
	}
	if req.WaterPercent != nil {
		entry.WaterPercent = req.WaterPercent
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
}
