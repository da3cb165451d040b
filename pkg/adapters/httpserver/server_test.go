package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/machina/pkg/graph"
)

func fakeInspector() Inspector {
	return InspectorFunc(func() graph.Description {
		return graph.Description{
			ID:      "Gtest",
			Name:    "turnstile",
			Initial: "Locked",
			Current: "Unlocked",
			Pending: 2,
			Nodes: []graph.Node{
				{ID: "N1", Label: "Locked", Initial: true},
				{ID: "N2", Label: "Unlocked"},
			},
			Edges: []graph.Edge{
				{From: "N1", To: "N2", Label: "Unlock\n|Coin|"},
			},
		}
	})
}

func TestHealthz(t *testing.T) {
	handler := NewHandler(fakeInspector(), nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", w.Code)
	}
}

func TestState(t *testing.T) {
	handler := NewHandler(fakeInspector(), nil)

	req := httptest.NewRequest("GET", "/state", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var body stateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Machine != "turnstile" {
		t.Errorf("expected machine turnstile, got %q", body.Machine)
	}
	if body.Current != "Unlocked" {
		t.Errorf("expected current Unlocked, got %q", body.Current)
	}
	if body.Pending != 2 {
		t.Errorf("expected 2 pending, got %d", body.Pending)
	}
}

func TestGraphDOT(t *testing.T) {
	handler := NewHandler(fakeInspector(), nil)

	req := httptest.NewRequest("GET", "/graph.dot", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/vnd.graphviz" {
		t.Errorf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "digraph Gtest") {
		t.Errorf("expected digraph output, got %q", body)
	}
	if !strings.Contains(body, "shape=diamond") {
		t.Error("expected initial state marker in DOT output")
	}
}

func TestGraphMermaid(t *testing.T) {
	handler := NewHandler(fakeInspector(), nil)

	req := httptest.NewRequest("GET", "/graph.mmd", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "graph TD") {
		t.Errorf("expected mermaid output, got %q", w.Body.String())
	}
}
