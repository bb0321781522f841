package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/whatiftr/whatif-backend/internal/api/handlers"
	"github.com/whatiftr/whatif-backend/internal/model"
	"github.com/whatiftr/whatif-backend/internal/repository"
	"github.com/whatiftr/whatif-backend/internal/service"
	"github.com/whatiftr/whatif-backend/internal/testutil"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	supplier := testutil.NewMockPriceSupplier().
		WithSnapshot(testutil.Snapshot(t, "2020-01-01", map[model.AssetCode]float64{
			model.AssetUSD:  6,
			model.AssetGold: 300,
		})).
		WithSnapshot(testutil.Snapshot(t, "2024-01-01", map[model.AssetCode]float64{
			model.AssetUSD:  30,
			model.AssetGold: 2000,
		}))

	db := testutil.SetupTestDB(t)

	return NewRouter(Handlers{
		Simulation: handlers.NewSimulationHandler(service.NewSimulationService(supplier)),
		Data:       handlers.NewDataHandler(supplier),
		System:     handlers.NewSystemHandler(service.NewSystemService(db, repository.NewSettingRepository(db), nil)),
	}, []string{"http://localhost:3000"})
}

func TestRouterRoutes(t *testing.T) {
	router := testRouter(t)

	t.Run("simulation run is mounted", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]interface{}{
			"startDate": "2020-01-01",
			"endDate":   "2024-01-01",
			"amount":    10000,
			"asset":     "USD",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/simulation/run", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("data endpoints are mounted", func(t *testing.T) {
		for _, path := range []string{
			"/api/data/assets",
			"/api/data/prices/2020-01-01",
			"/api/data/date-range",
			"/api/system/health",
			"/api/system/version",
		} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, rec.Code)
			}
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
