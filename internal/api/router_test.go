package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"depths-of-the-abyss/internal/data"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	rt := NewRuntime(data.DefaultDocument(), nil)
	return NewRouter(RouterConfig{
		Runtime: rt,
		RateLimitConfig: &RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
		DisableLogging: true,
	})
}

func TestRunThenTickThenScene(t *testing.T) {
	ts := httptest.NewServer(newTestRouter(t))
	defer ts.Close()

	runBody, _ := json.Marshal(map[string]interface{}{"seed": 7, "difficulty": "normal"})
	resp, err := http.Post(ts.URL+"/run", "application/json", bytes.NewReader(runBody))
	if err != nil {
		t.Fatalf("POST /run: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /run, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	tickBody, _ := json.Marshal(map[string]interface{}{
		"input": map[string]interface{}{},
		"dtSec": 0.016,
	})
	resp, err = http.Post(ts.URL+"/tick", "application/json", bytes.NewReader(tickBody))
	if err != nil {
		t.Fatalf("POST /tick: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /tick, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/scene")
	if err != nil {
		t.Fatalf("GET /scene: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /scene, got %d", resp.StatusCode)
	}
}

func TestTickBeforeRunReturnsConflict(t *testing.T) {
	ts := httptest.NewServer(newTestRouter(t))
	defer ts.Close()

	body, _ := json.Marshal(map[string]interface{}{"dtSec": 0.016})
	resp, err := http.Post(ts.URL+"/tick", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /tick: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 before a run has started, got %d", resp.StatusCode)
	}
}

func TestCheckpointAndRollback(t *testing.T) {
	ts := httptest.NewServer(newTestRouter(t))
	defer ts.Close()

	runBody, _ := json.Marshal(map[string]interface{}{"seed": 1, "difficulty": "normal"})
	if resp, err := http.Post(ts.URL+"/run", "application/json", bytes.NewReader(runBody)); err != nil {
		t.Fatalf("POST /run: %v", err)
	} else {
		resp.Body.Close()
	}

	resp, err := http.Post(ts.URL+"/checkpoint", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /checkpoint: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /checkpoint, got %d", resp.StatusCode)
	}

	resp, err = http.Post(ts.URL+"/rollback", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /rollback: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /rollback, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpointIsMounted(t *testing.T) {
	ts := httptest.NewServer(newTestRouter(t))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
}
