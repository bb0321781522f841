package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/whatiftr/whatif-backend/internal/api/request"
	"github.com/whatiftr/whatif-backend/internal/api/response"
	"github.com/whatiftr/whatif-backend/internal/service"
	"github.com/whatiftr/whatif-backend/internal/version"
)

// SystemHandler handles operational endpoints.
type SystemHandler struct {
	system *service.SystemService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(system *service.SystemService) *SystemHandler {
	return &SystemHandler{system: system}
}

// Health handles GET /api/system/health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.system.HealthCheck(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Version handles GET /api/system/version.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"version": version.Version,
	})
}

// UpdateEVDSKey handles PUT /api/system/evds-key.
func (h *SystemHandler) UpdateEVDSKey(w http.ResponseWriter, r *http.Request) {
	var req request.SetEVDSKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.APIKey == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", map[string]string{"apiKey": "apiKey is required"})
		return
	}

	if err := h.system.SetEVDSAPIKey(req.APIKey); err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
