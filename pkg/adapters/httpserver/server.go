// Package httpserver exposes a read-only HTTP introspection surface over a
// running machine: current position, pending queue depth, and graph exports.
package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/machina/pkg/graph"
)

// Inspector is the view of a machine the server needs. Callers typically wrap
// a *machina.Machine together with its label maps.
type Inspector interface {
	Name() string
	Describe() graph.Description
}

// InspectorFunc adapts a describe function into an Inspector, taking the
// machine name from the description.
type InspectorFunc func() graph.Description

func (f InspectorFunc) Name() string { return f().Name }

func (f InspectorFunc) Describe() graph.Description { return f() }

// stateResponse is the JSON body of GET /state.
type stateResponse struct {
	Machine string `json:"machine"`
	Current string `json:"current"`
	Pending int    `json:"pending"`
}

// NewHandler builds the introspection router for the given inspector.
func NewHandler(insp Inspector, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		d := insp.Describe()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stateResponse{
			Machine: d.Name,
			Current: d.Current,
			Pending: d.Pending,
		}); err != nil {
			logger.Error("state: encode failed", "err", err)
		}
	})

	r.Get("/graph.dot", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		var sb strings.Builder
		if err := graph.DOT(insp.Describe(), &sb); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
			logger.Error("graph.dot: render failed", "err", err)
			return
		}
		_, _ = w.Write([]byte(sb.String()))
	})

	r.Get("/graph.mmd", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph.Mermaid(insp.Describe())))
	})

	return r
}
