package handlers

import (
	"net/http"
	"time"

	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/webutil"
)

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: s}
}

// GetSuggestions はカレンダー表示用の計測候補日を返します。
// dateクエリパラメータで基準日を上書きできます (主にテスト・デモ用)
func (h *ScheduleHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	now := model.DateOf(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := model.ParseDate(dateStr)
		if err != nil {
			logger.Warn("Invalid date query parameter", "date", dateStr, "error", err.Error())
			appErr := model.NewAppError("INVALID_URL_PARAM", "dateの形式が正しくありません (YYYY-MM-DD)。", "date", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		now = parsed
	}

	resp, err := h.service.GetSuggestions(r.Context(), tenantID, now)
	if err != nil {
		logger.Error("Error getting schedule suggestions in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
