package handlers

import (
	"errors"
	"net/http"

	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type PreferenceHandler struct {
	service service.PreferenceService
}

func NewPreferenceHandler(s service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: s}
}

// GetPreference は計測リズム設定を返します (未作成ならデフォルト値で作成)
func (h *PreferenceHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	pref, err := h.service.GetPreference(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error getting measurement preference in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, pref, logger)
}

// UpdatePreference は計測間隔を更新します
func (h *PreferenceHandler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdatePreferenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode preference request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for preference", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for preference", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	pref, err := h.service.UpdatePreference(r.Context(), tenantID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Measurement preference updated successfully", "tenant_id", tenantID.String(), "interval_weeks", pref.IntervalWeeks)
	webutil.RespondWithJSON(w, http.StatusOK, pref, logger)
}
