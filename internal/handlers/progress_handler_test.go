package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fittrack/internal/handlers"
	"fittrack/internal/model"

	svc_mocks "fittrack/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func floatPtr(v float64) *float64 { return &v }

// --- Test PostEntry ---
func TestProgressHandler_PostEntry(t *testing.T) {
	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	recordedOn := model.NewDate(2024, time.April, 2)

	tests := []struct {
		name           string
		setupContext   func() context.Context
		body           interface{}
		setupMock      func(mockService *svc_mocks.ProgressService)
		expectedStatus int
	}{
		{
			name:         "正常系: 記録の作成成功",
			setupContext: func() context.Context { return ctxWithTenant },
			body: &model.PostEntryRequest{
				RecordedOn: recordedOn,
				WeightKg:   floatPtr(80),
			},
			setupMock: func(mockService *svc_mocks.ProgressService) {
				mockService.On("CreateEntry", mock.Anything, testTenantID, mock.AnythingOfType("*model.PostEntryRequest"), mock.AnythingOfType("model.Date")).
					Return(&model.ProgressEntry{
						EntryID:    uuid.New(),
						TenantID:   testTenantID,
						RecordedOn: recordedOn,
						WeightKg:   floatPtr(80),
					}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:         "異常系: 候補日集合外の日付はサービス層で拒否される",
			setupContext: func() context.Context { return ctxWithTenant },
			body: &model.PostEntryRequest{
				RecordedOn: recordedOn,
			},
			setupMock: func(mockService *svc_mocks.ProgressService) {
				mockService.On("CreateEntry", mock.Anything, testTenantID, mock.AnythingOfType("*model.PostEntryRequest"), mock.AnythingOfType("model.Date")).
					Return(nil, model.NewAppError("DATE_NOT_IN_SCHEDULE", "指定された日付は設定された計測頻度に一致しません。", "recorded_on", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "異常系: 不正なJSONボディ",
			setupContext: func() context.Context { return ctxWithTenant },
			body:         `{"recorded_on": `,
			setupMock:    func(mockService *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "異常系: バリデーションエラー (体重が負)",
			setupContext: func() context.Context { return ctxWithTenant },
			body: map[string]interface{}{
				"recorded_on": "2024-04-02",
				"weight_kg":   -5,
			},
			setupMock:      func(mockService *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 認証情報がコンテキストにない",
			setupContext:   func() context.Context { return context.Background() },
			body:           &model.PostEntryRequest{RecordedOn: recordedOn},
			setupMock:      func(mockService *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.ProgressService)
			tt.setupMock(mockService)
			handler := handlers.NewProgressHandler(mockService)

			req := newJsonRequest(t, http.MethodPost, "/api/v1/entries", tt.body)
			req = req.WithContext(tt.setupContext())
			rec := httptest.NewRecorder()

			handler.PostEntry(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus >= 400 {
				var errResp model.APIErrorResponse
				err := json.Unmarshal(rec.Body.Bytes(), &errResp)
				require.NoError(t, err)
				assert.NotEmpty(t, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetEntries ---
func TestProgressHandler_GetEntries(t *testing.T) {
	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	t.Run("正常系: 一覧取得", func(t *testing.T) {
		mockService := new(svc_mocks.ProgressService)
		entries := []*model.ProgressEntry{
			{EntryID: uuid.New(), TenantID: testTenantID, RecordedOn: model.NewDate(2024, time.April, 1)},
		}
		mockService.On("ListEntries", mock.Anything, testTenantID).Return(entries, nil).Once()
		handler := handlers.NewProgressHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/entries", nil)
		req = req.WithContext(ctxWithTenant)
		rec := httptest.NewRecorder()

		handler.GetEntries(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []*model.ProgressEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("正常系: 記録が0件でも空配列が返る", func(t *testing.T) {
		mockService := new(svc_mocks.ProgressService)
		mockService.On("ListEntries", mock.Anything, testTenantID).Return(nil, nil).Once()
		handler := handlers.NewProgressHandler(mockService)

		req := newJsonRequest(t, http.MethodGet, "/api/v1/entries", nil)
		req = req.WithContext(ctxWithTenant)
		rec := httptest.NewRecorder()

		handler.GetEntries(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
		mockService.AssertExpectations(t)
	})
}

// --- Test PatchEntry ---
func TestProgressHandler_PatchEntry(t *testing.T) {
	testTenantID := uuid.New()
	testEntryID := uuid.New()
	baseCtx := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	tests := []struct {
		name           string
		entryIDParam   string
		body           interface{}
		setupMock      func(mockService *svc_mocks.ProgressService)
		expectedStatus int
	}{
		{
			name:         "正常系: 部分更新成功",
			entryIDParam: testEntryID.String(),
			body: &model.PatchEntryRequest{
				WaistCm: floatPtr(88),
			},
			setupMock: func(mockService *svc_mocks.ProgressService) {
				mockService.On("UpdateEntry", mock.Anything, testTenantID, testEntryID, mock.AnythingOfType("*model.PatchEntryRequest")).
					Return(&model.ProgressEntry{
						EntryID:    testEntryID,
						TenantID:   testTenantID,
						RecordedOn: model.NewDate(2024, time.April, 1),
						WaistCm:    floatPtr(88),
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: entry_idがUUIDではない",
			entryIDParam:   "not-a-uuid",
			body:           &model.PatchEntryRequest{WaistCm: floatPtr(88)},
			setupMock:      func(mockService *svc_mocks.ProgressService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:         "異常系: 存在しない記録",
			entryIDParam: testEntryID.String(),
			body:         &model.PatchEntryRequest{WaistCm: floatPtr(88)},
			setupMock: func(mockService *svc_mocks.ProgressService) {
				mockService.On("UpdateEntry", mock.Anything, testTenantID, testEntryID, mock.AnythingOfType("*model.PatchEntryRequest")).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(svc_mocks.ProgressService)
			tt.setupMock(mockService)
			handler := handlers.NewProgressHandler(mockService)

			ctx := contextWithChiURLParam(baseCtx, "entry_id", tt.entryIDParam)
			req := newJsonRequest(t, http.MethodPatch, "/api/v1/entries/"+tt.entryIDParam, tt.body)
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			handler.PatchEntry(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// --- Test DeleteEntry ---
func TestProgressHandler_DeleteEntry(t *testing.T) {
	testTenantID := uuid.New()
	testEntryID := uuid.New()
	baseCtx := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	t.Run("正常系: 削除成功で204が返る", func(t *testing.T) {
		mockService := new(svc_mocks.ProgressService)
		mockService.On("DeleteEntry", mock.Anything, testTenantID, testEntryID).Return(nil).Once()
		handler := handlers.NewProgressHandler(mockService)

		ctx := contextWithChiURLParam(baseCtx, "entry_id", testEntryID.String())
		req := newJsonRequest(t, http.MethodDelete, "/api/v1/entries/"+testEntryID.String(), nil)
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()

		handler.DeleteEntry(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しない記録の削除で404", func(t *testing.T) {
		mockService := new(svc_mocks.ProgressService)
		mockService.On("DeleteEntry", mock.Anything, testTenantID, testEntryID).Return(model.ErrNotFound).Once()
		handler := handlers.NewProgressHandler(mockService)

		ctx := contextWithChiURLParam(baseCtx, "entry_id", testEntryID.String())
		req := newJsonRequest(t, http.MethodDelete, "/api/v1/entries/"+testEntryID.String(), nil)
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()

		handler.DeleteEntry(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockService.AssertExpectations(t)
	})
}
