package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fittrack/internal/middleware"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// PostEntry は新しい計測記録を作成します
func (h *ProgressHandler) PostEntry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostEntryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode entry request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for entry", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for entry", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	now := model.DateOf(time.Now())
	entry, err := h.service.CreateEntry(r.Context(), tenantID, &req, now)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress entry created successfully", "entry_id", entry.EntryID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

// GetEntries は計測記録の一覧を返します (新しい日付順)
func (h *ProgressHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entries, err := h.service.ListEntries(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing entries in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []*model.ProgressEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetEntry は特定の計測記録を返します
func (h *ProgressHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entryID, ok := parseEntryID(w, r, logger)
	if !ok {
		return
	}

	entry, err := h.service.GetEntry(r.Context(), tenantID, entryID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error getting entry in service", "error", err)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// PatchEntry は計測記録を部分更新します
func (h *ProgressHandler) PatchEntry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entryID, ok := parseEntryID(w, r, logger)
	if !ok {
		return
	}

	var req model.PatchEntryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode patch entry request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for patch entry", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for patch entry", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	entry, err := h.service.UpdateEntry(r.Context(), tenantID, entryID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress entry updated successfully", "entry_id", entryID.String())
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// DeleteEntry は計測記録を削除します
func (h *ProgressHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entryID, ok := parseEntryID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(r.Context(), tenantID, entryID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress entry deleted successfully", "entry_id", entryID.String())
	w.WriteHeader(http.StatusNoContent)
}

func parseEntryID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	entryIDStr := chi.URLParam(r, "entry_id")
	entryID, err := uuid.Parse(entryIDStr)
	if err != nil {
		logger.Warn("Invalid entry ID format in URL", "entry_id_str", entryIDStr, "error", err.Error())
		appErr := model.NewAppError("INVALID_URL_PARAM", "entry_idの形式が正しくありません。", "entry_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return entryID, true
}
