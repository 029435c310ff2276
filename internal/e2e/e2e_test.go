package e2e

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"modelhub/internal/manager"
	"modelhub/internal/models"
	"modelhub/pkg/types"
)

func TestE2E_ListsModelsInDiscoveryOrder(t *testing.T) {
	srv, _ := newServer(t, "", scenarioUnits())
	var body types.ModelsResponse
	if code := getJSON(t, srv.URL+"/api/models", &body); code != 200 {
		t.Fatalf("status=%d", code)
	}
	if want := []string{"echo", "py-summary"}; !reflect.DeepEqual(body.AvailableModels, want) {
		t.Fatalf("models=%v want %v", body.AvailableModels, want)
	}

	getJSON(t, srv.URL+"/api/models/types/SUMMARIZE", &body)
	if want := []string{"py-summary"}; !reflect.DeepEqual(body.AvailableModels, want) {
		t.Fatalf("by type=%v want %v", body.AvailableModels, want)
	}
	getJSON(t, srv.URL+"/api/models/types/VIDEO", &body)
	if len(body.AvailableModels) != 0 {
		t.Fatalf("unknown type should be empty, got %v", body.AvailableModels)
	}
}

func TestE2E_EchoAndSummary(t *testing.T) {
	srv, _ := newServer(t, "", scenarioUnits())

	code, out := postJSON(t, srv.URL+"/api/process/chat", map[string]any{"modelName": "echo", "userMessage": "hi"})
	if code != 200 {
		t.Fatalf("chat status=%d body=%v", code, out)
	}
	want := map[string]any{"actor": "model", "content": `You said: "hi" - Hello from the Python Echo Model!`}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("chat=%v want %v", out, want)
	}

	code, out = postJSON(t, srv.URL+"/api/process/summarize", map[string]any{"modelName": "py-summary", "originalText": "..."})
	if code != 200 {
		t.Fatalf("summarize status=%d", code)
	}
	want = map[string]any{"actor": "model", "summary": "This is from the Python environment"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("summarize=%v want %v", out, want)
	}
}

func TestE2E_AllowlistRejectsFilteredModel(t *testing.T) {
	srv, mgr := newServer(t, "echo", scenarioUnits())

	code, out := postJSON(t, srv.URL+"/api/process/summarize", map[string]any{"modelName": "py-summary", "originalText": "x"})
	if code != 400 {
		t.Fatalf("status=%d", code)
	}
	if out["error"] != "Invalid model: py-summary. Available models: echo" {
		t.Fatalf("body=%v", out)
	}

	_, err := mgr.Dispatch(context.Background(), "py-summary", models.Input{})
	var na *manager.NotAvailableError
	if !errors.As(err, &na) || !reflect.DeepEqual(na.Available, []string{"echo"}) {
		t.Fatalf("err=%v", err)
	}
}

func TestE2E_MissingNameIsStructured(t *testing.T) {
	srv, mgr := newServer(t, "", scenarioUnits())
	code, out := postJSON(t, srv.URL+"/api/process/chat", map[string]any{"userMessage": "hi"})
	if code != 400 || out["actor"] != "system" {
		t.Fatalf("status=%d body=%v", code, out)
	}
	if _, err := mgr.Dispatch(context.Background(), "", models.Input{}); !manager.IsNoName(err) {
		t.Fatalf("err=%v", err)
	}
}

func TestE2E_ConcurrentRequestsShareOneInstance(t *testing.T) {
	srv, mgr := newServer(t, "", scenarioUnits())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/api/process/chat", "application/json", strings.NewReader(`{"modelName":"ECHO","userMessage":"x"}`))
			if err != nil {
				t.Errorf("post: %v", err)
				return
			}
			resp.Body.Close()
			if resp.StatusCode != 200 {
				t.Errorf("status=%d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()
	if got := mgr.Cached(); !reflect.DeepEqual(got, []string{"echo"}) {
		t.Fatalf("cached=%v", got)
	}
	a, _ := mgr.Resolve(context.Background(), "echo")
	b, _ := mgr.Resolve(context.Background(), "Echo")
	if a != b {
		t.Fatalf("expected identical instances")
	}
}

func TestE2E_StatusReportsInstances(t *testing.T) {
	srv, _ := newServer(t, "", scenarioUnits())
	postJSON(t, srv.URL+"/api/process/chat", map[string]any{"modelName": "echo"})
	var st types.StatusResponse
	getJSON(t, srv.URL+"/status", &st)
	if len(st.Available) != 2 || len(st.Instances) != 1 || st.Instances[0].Name != "echo" {
		t.Fatalf("status=%+v", st)
	}
}
