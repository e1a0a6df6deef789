package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rosgraph/pkg/buildinfo"
	"rosgraph/pkg/errors"
	"rosgraph/pkg/graph"
	"rosgraph/pkg/layout"
)

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	g, err := s.src.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	name := graphName(r)
	if err := errors.ValidateNodeName(name); err != nil {
		writeError(w, err)
		return
	}

	g, err := s.src.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	details, ok := nodeDetails(g, name)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNodeNotFound, "node not found: %s", name))
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	name := graphName(r)
	if err := errors.ValidateTopicName(name); err != nil {
		writeError(w, err)
		return
	}

	g, err := s.src.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	details, ok := topicDetails(g, name)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeTopicNotFound, "topic not found: %s", name))
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	hideInternal := s.opts.HideInternal
	switch r.URL.Query().Get("hide_internal") {
	case "true", "1":
		hideInternal = true
	case "false", "0":
		hideInternal = false
	}

	g, err := s.src.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	result := layout.ComputeWithOptions(g, hideInternal, s.opts.Layout)
	writeJSON(w, http.StatusOK, graph.Graph{Nodes: result.Nodes, Edges: result.Edges})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"source":  s.src.Name(),
		"version": buildinfo.Version,
	})
}

// graphName extracts the resource name from a wildcard route, restoring
// the leading slash of fully qualified names. A request for
// /api/node//talker and /api/node/talker both resolve to "/talker".
func graphName(r *http.Request) string {
	name := chi.URLParam(r, "*")
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses and emits the
// body shape the frontend expects: {"error": "..."}.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeNodeNotFound, errors.ErrCodeTopicNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidName, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeSourceUnavailable, errors.ErrCodeTimeout:
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}
