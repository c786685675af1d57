package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"lending-admin/internal/api/handler/dto"
	"lending-admin/internal/pkg/apperrors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", slog.Any("error", err))
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, code, message, field := http.StatusInternalServerError, "", "An unexpected error occurred.", ""
	var fields []dto.FieldErrorDetail
	var fieldErrs apperrors.FieldErrors
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &fieldErrs):
		status, code, message = http.StatusBadRequest, "VALIDATION_FAILED", "One or more fields are invalid."
		fields = make([]dto.FieldErrorDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, dto.FieldErrorDetail{Field: fe.Field, Message: fe.Message})
		}
	case errors.As(err, &validationError):
		status, code, message, field = http.StatusBadRequest, "VALIDATION_FAILED", validationError.Message, validationError.Field
	case errors.Is(err, apperrors.ErrSnapshotUnavailable):
		status, code, message = http.StatusServiceUnavailable, "SNAPSHOT_UNAVAILABLE", "Borrower records could not be loaded. Try refreshing."
	case errors.Is(err, apperrors.ErrNotFound):
		status, code, message = http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, code, message = http.StatusConflict, "ALREADY_EXISTS", err.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, code, message = http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, code, message = http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"
	case errors.As(err, &appErr):
		code, message = appErr.Code, appErr.Message
	default:
		slog.Default().Error("Unhandled internal error", slog.Any("error", err))
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
			Fields:  fields,
		},
	}
	respondJSON(w, status, resp)
}

// logLevelFor keeps client mistakes at warn so error logs stay actionable.
func logLevelFor(err error) slog.Level {
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInvalidArgument) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrAlreadyExists) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func getBorrowerIDFromURL(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "borrowerID")
	if idStr == "" {
		return 0, fmt.Errorf("%w: borrowerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid borrowerID format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s query parameter: %s", apperrors.ErrInvalidArgument, name, raw)
	}
	return v, nil
}
