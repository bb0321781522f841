package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/whatiftr/whatif-backend/internal/api/request"
	"github.com/whatiftr/whatif-backend/internal/api/response"
	"github.com/whatiftr/whatif-backend/internal/service"
	"github.com/whatiftr/whatif-backend/internal/validation"
)

// SimulationHandler handles simulation endpoints.
type SimulationHandler struct {
	simulations *service.SimulationService
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulations *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{simulations: simulations}
}

// Run handles POST /api/simulation/run.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req request.RunSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	params, err := validation.ValidateSimulationParams(req.StartDate, req.EndDate, req.Amount, req.Asset)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	result, err := h.simulations.Run(r.Context(), service.SimulationInput{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Amount:    params.Amount,
		Asset:     params.Asset,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"simulation": result,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// TimeSeries handles POST /api/simulation/time-series.
func (h *SimulationHandler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	var req request.TimeSeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	params, err := validation.ValidateSimulationParams(req.StartDate, req.EndDate, req.Amount, req.Asset)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	series, err := h.simulations.TimeSeries(r.Context(), params.StartDate, params.EndDate, params.Asset, params.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"series":  series,
	})
}

// exampleScenario is one ready-made scenario for the landing page.
type exampleScenario struct {
	Title     string  `json:"title"`
	StartDate string  `json:"startDate"`
	Amount    float64 `json:"amount"`
	Asset     string  `json:"asset"`
}

var exampleScenarios = []exampleScenario{
	{Title: "Dollars before the slide", StartDate: "2015-01-01", Amount: 10000, Asset: "USD"},
	{Title: "Gold through the decade", StartDate: "2014-06-01", Amount: 25000, Asset: "GOLD"},
	{Title: "Early Bitcoin", StartDate: "2016-01-01", Amount: 5000, Asset: "BTC"},
	{Title: "Plain deposit account", StartDate: "2018-01-01", Amount: 50000, Asset: "INTEREST"},
	{Title: "A flat in the city", StartDate: "2013-01-01", Amount: 200000, Asset: "HOUSING"},
}

// Examples handles GET /api/simulation/examples.
func (h *SimulationHandler) Examples(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"examples": exampleScenarios,
	})
}
