package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/whatiftr/whatif-backend/internal/api/request"
	"github.com/whatiftr/whatif-backend/internal/api/response"
	"github.com/whatiftr/whatif-backend/internal/model"
	"github.com/whatiftr/whatif-backend/internal/service"
	"github.com/whatiftr/whatif-backend/internal/validation"
)

// DataHandler handles reference data endpoints.
type DataHandler struct {
	prices service.PriceSupplier
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(prices service.PriceSupplier) *DataHandler {
	return &DataHandler{prices: prices}
}

// Assets handles GET /api/data/assets.
func (h *DataHandler) Assets(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"assets":  model.AssetCatalogue,
	})
}

// Prices handles GET /api/data/prices/{date}.
func (h *DataHandler) Prices(w http.ResponseWriter, r *http.Request) {
	date, err := validation.ValidateDate(chi.URLParam(r, "date"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	snap, err := h.prices.GetPrices(r.Context(), date)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"date":    snap.Date.Format("2006-01-02"),
		"prices":  snap.Prices,
	})
}

// Inflation handles GET /api/data/inflation/{year}.
func (h *DataHandler) Inflation(w http.ResponseWriter, r *http.Request) {
	year, err := validation.ValidateYear(chi.URLParam(r, "year"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	rate, err := h.prices.GetInflationRate(r.Context(), year)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"year":    year,
		"rate":    rate,
	})
}

// DateRange handles GET /api/data/date-range.
func (h *DataHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"minDate": validation.MinDate.Format("2006-01-02"),
		"maxDate": now.Format("2006-01-02"),
	})
}

// Validate handles POST /api/data/validate. It runs the same validation as
// the simulation endpoints without executing anything, so the client can
// check a form before submitting.
func (h *DataHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if _, err := validation.ValidateSimulationParams(req.StartDate, req.EndDate, req.Amount, req.Asset); err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"valid":   true,
	})
}
