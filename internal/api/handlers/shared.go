// Package handlers implements the HTTP handlers for the API.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/whatiftr/whatif-backend/internal/api/response"
	"github.com/whatiftr/whatif-backend/internal/apperrors"
	"github.com/whatiftr/whatif-backend/internal/validation"
)

// respondServiceError maps service-layer errors onto HTTP status codes.
// Unrecognized errors are logged and reported as 500 without leaking
// internals to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", validationErr.Fields)
		return
	}

	if apperrors.IsMissingPriceData(err) {
		response.RespondError(w, http.StatusNotFound, "price data not available", err.Error())
		return
	}

	if errors.Is(err, apperrors.ErrSnapshotUnavailable) {
		response.RespondError(w, http.StatusNotFound, "price data not available", err.Error())
		return
	}

	if errors.Is(err, apperrors.ErrInvalidInput) || errors.Is(err, apperrors.ErrDegenerateInflation) {
		response.RespondError(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if errors.Is(err, apperrors.ErrSettingNotFound) {
		response.RespondError(w, http.StatusNotFound, "not found", err.Error())
		return
	}

	if errors.Is(err, apperrors.ErrEncryptionKeyNotConfigured) {
		response.RespondError(w, http.StatusConflict, "encryption key not configured", nil)
		return
	}

	log.Printf("internal error: %v", err)
	response.RespondError(w, http.StatusInternalServerError, "internal server error", nil)
}
