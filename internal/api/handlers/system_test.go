package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fernet/fernet-go"

	"github.com/whatiftr/whatif-backend/internal/repository"
	"github.com/whatiftr/whatif-backend/internal/service"
	"github.com/whatiftr/whatif-backend/internal/testutil"
	"github.com/whatiftr/whatif-backend/internal/version"
)

func systemHandler(t *testing.T, withKey bool) *SystemHandler {
	t.Helper()

	db := testutil.SetupTestDB(t)

	var fernetKey *fernet.Key
	if withKey {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("failed to generate key: %v", err)
		}
		fernetKey = &key
	}

	return NewSystemHandler(service.NewSystemService(db, repository.NewSettingRepository(db), fernetKey))
}

func TestSystemHandlerHealth(t *testing.T) {
	h := systemHandler(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("expected healthy, got %q", body.Status)
	}
}

func TestSystemHandlerVersion(t *testing.T) {
	h := systemHandler(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Version(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Version != version.Version {
		t.Errorf("expected %q, got %q", version.Version, body.Version)
	}
}

func TestSystemHandlerUpdateEVDSKey(t *testing.T) {
	t.Run("stores the key", func(t *testing.T) {
		h := systemHandler(t, true)

		payload, _ := json.Marshal(map[string]string{"apiKey": "my-key"})
		req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		h.UpdateEVDSKey(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		h := systemHandler(t, true)

		payload, _ := json.Marshal(map[string]string{"apiKey": ""})
		req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		h.UpdateEVDSKey(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("no encryption key configured", func(t *testing.T) {
		h := systemHandler(t, false)

		payload, _ := json.Marshal(map[string]string{"apiKey": "my-key"})
		req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		h.UpdateEVDSKey(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}
