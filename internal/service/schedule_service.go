package service

import (
	"context"
	"errors"

	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService はカレンダー表示用の計測候補日を組み立てます
//
//go:generate mockery --name ScheduleService --output ./mocks --outpkg mocks --case=underscore
type ScheduleService interface {
	GetSuggestions(ctx context.Context, tenantID uuid.UUID, now model.Date) (*model.ScheduleResponse, error)
}

type scheduleService struct {
	db        *gorm.DB
	entryRepo repository.EntryRepository
	prefRepo  repository.PreferenceRepository
}

func NewScheduleService(db *gorm.DB, entryRepo repository.EntryRepository, prefRepo repository.PreferenceRepository) ScheduleService {
	return &scheduleService{
		db:        db,
		entryRepo: entryRepo,
		prefRepo:  prefRepo,
	}
}

// GetSuggestions は直近の記録 (なければ今日) をアンカーとして候補日列を返します
func (s *scheduleService) GetSuggestions(ctx context.Context, tenantID uuid.UUID, now model.Date) (*model.ScheduleResponse, error) {
	logger := middleware.GetLogger(ctx)

	intervalWeeks := model.DefaultIntervalWeeks
	pref, err := s.prefRepo.FindByTenant(ctx, s.db, tenantID)
	if err == nil {
		intervalWeeks = model.CoerceIntervalWeeks(pref.IntervalWeeks)
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error finding measurement preference", "error", err, "tenant_id", tenantID.String())
		return nil, model.ErrInternalServer
	}

	anchor := now
	latest, err := s.entryRepo.FindLatest(ctx, s.db, tenantID)
	if err == nil {
		anchor = latest.RecordedOn
	} else if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error finding latest entry", "error", err, "tenant_id", tenantID.String())
		return nil, model.ErrInternalServer
	}

	dates := schedule.SuggestedDates(anchor, intervalWeeks, now)

	resp := &model.ScheduleResponse{
		IntervalWeeks: intervalWeeks,
		AnchorDate:    anchor,
		Dates:         make([]model.SuggestedDateResponse, 0, len(dates)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, model.SuggestedDateResponse{
			Date:   d,
			Status: schedule.Classify(d, now),
		})
	}
	if next, ok := schedule.NextSuggested(dates, now); ok {
		resp.NextDate = &next
	}

	return resp, nil
}
