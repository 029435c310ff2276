package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"modelhub/internal/httpapi"
	"modelhub/internal/manager"
	"modelhub/internal/models"
	"modelhub/internal/models/echo"
	"modelhub/internal/models/pysummary"
)

// scenarioUnits is the two-model setup used across these tests.
func scenarioUnits() models.UnitList {
	return models.UnitList{
		{Name: "echo", Factory: echo.New},
		{Name: "pysummary", Factory: pysummary.New},
	}
}

// newServer builds the full HTTP stack over units with the given allowlist.
func newServer(t *testing.T, allowlist string, units models.UnitList) (*httptest.Server, *manager.Manager) {
	t.Helper()
	mgr := manager.New(units, allowlist, zerolog.Nop())
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr
}

// postJSON posts body to url and decodes the JSON response into a map.
func postJSON(t *testing.T, url string, body any) (int, map[string]any) {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return resp.StatusCode, out
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode
}
