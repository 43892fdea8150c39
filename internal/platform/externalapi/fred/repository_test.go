package fred

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"econ_backend/internal/feature/indicators/domain/entity"
)

var (
	testStart = time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func TestNewFredSeries(t *testing.T) {
	t.Parallel()

	cfg := Config{
		FredAPIKey: "test-key",
		BaseURL:    "https://api.test.com",
		Timeout:    10 * time.Second,
	}
	client := &http.Client{}

	f := NewFredSeries(cfg, client)

	if f == nil {
		t.Fatal("expected non-nil client")
	}
	if f.cfg.FredAPIKey != cfg.FredAPIKey {
		t.Errorf("expected API key %q, got %q", cfg.FredAPIKey, f.cfg.FredAPIKey)
	}
}

func TestFredSeries_FetchSeries_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Query().Get("series_id") != "CPIAUCSL" {
			t.Errorf("expected series_id CPIAUCSL, got %s", r.URL.Query().Get("series_id"))
		}
		if r.URL.Query().Get("observation_start") != "2021-06-01" {
			t.Errorf("expected observation_start 2021-06-01, got %s", r.URL.Query().Get("observation_start"))
		}
		if r.URL.Query().Get("file_type") != "json" {
			t.Errorf("expected file_type json, got %s", r.URL.Query().Get("file_type"))
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("expected api_key test-key, got %s", r.URL.Query().Get("api_key"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"observations": [
				{"date": "2024-03-01", "value": "310.3"},
				{"date": "2024-04-01", "value": "."},
				{"date": "2024-05-01", "value": "312.1"}
			]
		}`))
	}))
	defer server.Close()

	cfg := Config{FredAPIKey: "test-key", BaseURL: server.URL}
	f := NewFredSeries(cfg, server.Client())

	raw, err := f.FetchSeries(context.Background(), "CPIAUCSL", testStart, testEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raw.Kind != entity.KindSeries {
		t.Errorf("expected kind %q, got %q", entity.KindSeries, raw.Kind)
	}
	// "." は欠測値として読み飛ばされる
	if len(raw.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(raw.Points))
	}
	if raw.Points[0].Value == nil || *raw.Points[0].Value != 310.3 {
		t.Errorf("expected first value 310.3, got %v", raw.Points[0].Value)
	}
	// 順序はプロバイダのまま（最新が末尾）
	if raw.Points[1].Date != "2024-05-01" {
		t.Errorf("expected most recent value last, got %s", raw.Points[1].Date)
	}
}

// TestFredSeries_FetchSeries_NoAPIKey はAPIキー未設定時にエラーではなく
// 空の結果が返り、ネットワークに出ないことを検証します。
func TestFredSeries_FetchSeries_NoAPIKey(t *testing.T) {
	t.Parallel()

	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	cfg := Config{FredAPIKey: "", BaseURL: server.URL}
	f := NewFredSeries(cfg, server.Client())

	raw, err := f.FetchSeries(context.Background(), "CPIAUCSL", testStart, testEnd)
	if err != nil {
		t.Fatalf("expected no error for missing API key, got %v", err)
	}
	if !raw.Empty() {
		t.Errorf("expected empty result, got %d points", len(raw.Points))
	}
	if requested {
		t.Error("no request should be made without an API key")
	}
}

func TestFredSeries_FetchSeries_BadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := Config{FredAPIKey: "test-key", BaseURL: server.URL}
	f := NewFredSeries(cfg, server.Client())

	if _, err := f.FetchSeries(context.Background(), "CPIAUCSL", testStart, testEnd); err == nil {
		t.Fatal("expected error for non-200 status, got nil")
	}
}

func TestFredSeries_FetchSeries_MalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	cfg := Config{FredAPIKey: "test-key", BaseURL: server.URL}
	f := NewFredSeries(cfg, server.Client())

	if _, err := f.FetchSeries(context.Background(), "CPIAUCSL", testStart, testEnd); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestFredSeries_FetchSeries_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"error_code": 400, "error_message": "Bad Request. The series does not exist."}`))
	}))
	defer server.Close()

	cfg := Config{FredAPIKey: "test-key", BaseURL: server.URL}
	f := NewFredSeries(cfg, server.Client())

	if _, err := f.FetchSeries(context.Background(), "NOPE", testStart, testEnd); err == nil {
		t.Fatal("expected error for API error payload, got nil")
	}
}
