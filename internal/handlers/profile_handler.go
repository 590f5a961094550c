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

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// GetProfile は身体プロフィールを返します
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), tenantID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error getting body profile in service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}

// PutProfile は身体プロフィールを登録・更新します
func (h *ProfileHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PutProfileRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode profile request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for profile", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for profile", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	profile, err := h.service.PutProfile(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error putting body profile in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Body profile saved successfully", "tenant_id", tenantID.String())
	webutil.RespondWithJSON(w, http.StatusOK, profile, logger)
}
