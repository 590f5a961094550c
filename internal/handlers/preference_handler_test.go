package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fittrack/internal/handlers"
	"fittrack/internal/model"

	svc_mocks "fittrack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceHandler_UpdatePreference(t *testing.T) {
	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(mockService *svc_mocks.PreferenceService)
		expectedStatus int
	}{
		{
			name: "正常系: 計測間隔の更新",
			body: &model.UpdatePreferenceRequest{IntervalWeeks: 3},
			setupMock: func(mockService *svc_mocks.PreferenceService) {
				mockService.On("UpdatePreference", mock.Anything, testTenantID, mock.AnythingOfType("*model.UpdatePreferenceRequest")).
					Return(&model.MeasurementPreference{
						PreferenceID:  uuid.New(),
						TenantID:      testTenantID,
						IntervalWeeks: 3,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: バリデーションエラー (間隔が範囲外)",
			body:           map[string]interface{}{"interval_weeks": 9},
			setupMock:      func(mockService *svc_mocks.PreferenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 不正なJSONボディ",
			body:           `{"interval_weeks": `,
			setupMock:      func(mockService *svc_mocks.PreferenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.PreferenceService)
			tt.setupMock(mockService)
			handler := handlers.NewPreferenceHandler(mockService)

			req := newJsonRequest(t, http.MethodPut, "/api/v1/preference", tt.body)
			req = req.WithContext(ctxWithTenant)
			rec := httptest.NewRecorder()

			handler.UpdatePreference(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.MeasurementPreference
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, 3, got.IntervalWeeks)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestPreferenceHandler_GetPreference(t *testing.T) {
	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	t.Run("正常系: 設定の取得", func(t *testing.T) {
		mockService := new(svc_mocks.PreferenceService)
		mockService.On("GetPreference", mock.Anything, testTenantID).
			Return(&model.MeasurementPreference{
				PreferenceID:  uuid.New(),
				TenantID:      testTenantID,
				IntervalWeeks: model.DefaultIntervalWeeks,
			}, nil).Once()
		handler := handlers.NewPreferenceHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/preference", nil)
		req = req.WithContext(ctxWithTenant)
		rec := httptest.NewRecorder()

		handler.GetPreference(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}
