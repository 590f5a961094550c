package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fittrack/internal/handlers"
	"fittrack/internal/model"

	svc_mocks "fittrack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleHandler_GetSuggestions(t *testing.T) {
	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	anchor := model.NewDate(2024, time.April, 1)
	next := model.NewDate(2024, time.April, 15)

	t.Run("正常系: 候補日の一覧取得", func(t *testing.T) {
		mockService := new(svc_mocks.ScheduleService)
		mockService.On("GetSuggestions", mock.Anything, testTenantID, mock.AnythingOfType("model.Date")).
			Return(&model.ScheduleResponse{
				IntervalWeeks: 2,
				AnchorDate:    anchor,
				Dates: []model.SuggestedDateResponse{
					{Date: anchor, Status: "past"},
					{Date: next, Status: "suggested"},
				},
				NextDate: &next,
			}, nil).Once()
		handler := handlers.NewScheduleHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/schedule/suggestions", nil)
		req = req.WithContext(ctxWithTenant)
		rec := httptest.NewRecorder()

		handler.GetSuggestions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.ScheduleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.IntervalWeeks)
		assert.Len(t, got.Dates, 2)
		require.NotNil(t, got.NextDate)
		assert.Equal(t, next, *got.NextDate)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: dateクエリで基準日を指定できる", func(t *testing.T) {
		mockService := new(svc_mocks.ScheduleService)
		override := model.NewDate(2024, time.March, 18)
		mockService.On("GetSuggestions", mock.Anything, testTenantID, override).
			Return(&model.ScheduleResponse{IntervalWeeks: 2, AnchorDate: anchor, Dates: []model.SuggestedDateResponse{}}, nil).Once()
		handler := handlers.NewScheduleHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/schedule/suggestions?date=2024-03-18", nil)
		req = req.WithContext(ctxWithTenant)
		rec := httptest.NewRecorder()

		handler.GetSuggestions(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: dateクエリの形式不正", func(t *testing.T) {
		mockService := new(svc_mocks.ScheduleService)
		handler := handlers.NewScheduleHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/schedule/suggestions?date=2024-3-18x", nil)
		req = req.WithContext(ctxWithTenant)
		rec := httptest.NewRecorder()

		handler.GetSuggestions(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "INVALID_URL_PARAM", errResp.Error.Code)
		mockService.AssertNotCalled(t, "GetSuggestions")
	})

	t.Run("異常系: 認証情報がコンテキストにない", func(t *testing.T) {
		mockService := new(svc_mocks.ScheduleService)
		handler := handlers.NewScheduleHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/schedule/suggestions", nil)
		rec := httptest.NewRecorder()

		handler.GetSuggestions(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockService.AssertNotCalled(t, "GetSuggestions")
	})
}
