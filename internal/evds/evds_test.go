package evds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
}

func TestFetchSeriesValue(t *testing.T) {
	t.Run("numeric observation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("series"); got != SeriesUSDBuy {
				t.Errorf("expected series %s, got %s", SeriesUSDBuy, got)
			}
			if got := r.URL.Query().Get("startDate"); got != "20240115" {
				t.Errorf("expected startDate 20240115, got %s", got)
			}
			if got := r.URL.Query().Get("key"); got != "secret" {
				t.Errorf("expected key to be forwarded, got %q", got)
			}
			w.Write([]byte(`{"items":[{"Tarih":"15-01-2024","TP_DK_USD_A":30.12}]}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, "secret")

		value, err := client.FetchSeriesValue(context.Background(), SeriesUSDBuy, testDate(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != 30.12 {
			t.Errorf("expected 30.12, got %v", value)
		}
	})

	t.Run("string observation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[{"TP_DK_XAU_A":"2031.40"}]}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, "")

		value, err := client.FetchSeriesValue(context.Background(), SeriesGoldOunceUSD, testDate(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != 2031.40 {
			t.Errorf("expected 2031.40, got %v", value)
		}
	})

	t.Run("no observation for the date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[]}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, "")

		if _, err := client.FetchSeriesValue(context.Background(), SeriesUSDBuy, testDate(t)); err == nil {
			t.Fatal("expected an error for an empty items array")
		}
	})

	t.Run("null observation value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[{"TP_DK_USD_A":null}]}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, "")

		if _, err := client.FetchSeriesValue(context.Background(), SeriesUSDBuy, testDate(t)); err == nil {
			t.Fatal("expected an error for a null observation")
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, "")

		if _, err := client.FetchSeriesValue(context.Background(), SeriesUSDBuy, testDate(t)); err == nil {
			t.Fatal("expected an error for a non-200 status")
		}
	})

	t.Run("unparseable observation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items":[{"TP_DK_USD_A":"ND"}]}`))
		}))
		defer server.Close()

		client := NewAPIClient(server.URL, "")

		if _, err := client.FetchSeriesValue(context.Background(), SeriesUSDBuy, testDate(t)); err == nil {
			t.Fatal("expected an error for an unparseable observation")
		}
	})
}
