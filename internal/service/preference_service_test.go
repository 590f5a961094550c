package service

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/model"
	"fittrack/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBPreference() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test GetPreference ---
func Test_preferenceService_GetPreference(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPreference()
	tenantID := uuid.New()

	tests := []struct {
		name         string
		setupMock    func(prefRepo *mocks.PreferenceRepository)
		wantErr      error
		wantInterval int
	}{
		{
			name: "正常系: 既存設定の取得",
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				prefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(&model.MeasurementPreference{
						PreferenceID:  uuid.New(),
						TenantID:      tenantID,
						IntervalWeeks: 3,
					}, nil).Once()
			},
			wantErr:      nil,
			wantInterval: 3,
		},
		{
			name: "正常系: 未作成の場合はデフォルト値で遅延作成される",
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				prefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, model.ErrNotFound).Once()
				prefRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MeasurementPreference")).
					Run(func(args mock.Arguments) {
						pref := args.Get(2).(*model.MeasurementPreference)
						assert.Equal(t, tenantID, pref.TenantID)
						assert.Equal(t, model.DefaultIntervalWeeks, pref.IntervalWeeks)
						assert.NotEqual(t, uuid.Nil, pref.PreferenceID)
					}).Return(nil).Once()
			},
			wantErr:      nil,
			wantInterval: model.DefaultIntervalWeeks,
		},
		{
			name: "正常系: 不正な保存値はデフォルトに矯正される",
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				prefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(&model.MeasurementPreference{
						PreferenceID:  uuid.New(),
						TenantID:      tenantID,
						IntervalWeeks: 9,
					}, nil).Once()
			},
			wantErr:      nil,
			wantInterval: model.DefaultIntervalWeeks,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				prefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefRepo := new(mocks.PreferenceRepository)
			tt.setupMock(prefRepo)

			svc := NewPreferenceService(db, prefRepo)
			pref, err := svc.GetPreference(ctx, tenantID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pref)
			} else {
				require.NoError(t, err)
				require.NotNil(t, pref)
				assert.Equal(t, tt.wantInterval, pref.IntervalWeeks)
			}

			prefRepo.AssertExpectations(t)
		})
	}
}

// --- Test UpdatePreference ---
func Test_preferenceService_UpdatePreference(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPreference()
	tenantID := uuid.New()

	tests := []struct {
		name      string
		req       *model.UpdatePreferenceRequest
		setupMock func(prefRepo *mocks.PreferenceRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name: "正常系: 既存設定の間隔を更新",
			req:  &model.UpdatePreferenceRequest{IntervalWeeks: 4},
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				prefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(&model.MeasurementPreference{
						PreferenceID:  uuid.New(),
						TenantID:      tenantID,
						IntervalWeeks: 2,
					}, nil).Once()
				prefRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MeasurementPreference")).
					Run(func(args mock.Arguments) {
						pref := args.Get(2).(*model.MeasurementPreference)
						assert.Equal(t, 4, pref.IntervalWeeks)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 設定が未作成なら新規作成して更新",
			req:  &model.UpdatePreferenceRequest{IntervalWeeks: 1},
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				prefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
					Return(nil, model.ErrNotFound).Once()
				prefRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MeasurementPreference")).
					Run(func(args mock.Arguments) {
						pref := args.Get(2).(*model.MeasurementPreference)
						assert.Equal(t, tenantID, pref.TenantID)
						assert.Equal(t, 1, pref.IntervalWeeks)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 許容範囲外の間隔は拒否される",
			req:  &model.UpdatePreferenceRequest{IntervalWeeks: 5},
			setupMock: func(prefRepo *mocks.PreferenceRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr:  model.ErrInvalidInput,
			wantCode: "INVALID_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefRepo := new(mocks.PreferenceRepository)
			tt.setupMock(prefRepo)

			svc := NewPreferenceService(db, prefRepo)
			pref, err := svc.UpdatePreference(ctx, tenantID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantCode != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				}
				assert.Nil(t, pref)
			} else {
				require.NoError(t, err)
				require.NotNil(t, pref)
				assert.Equal(t, tt.req.IntervalWeeks, pref.IntervalWeeks)
			}

			prefRepo.AssertExpectations(t)
		})
	}
}
