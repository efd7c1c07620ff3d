// Package handler provides HTTP handlers for the spell-warden service.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sevigo/spell-warden/internal/core"
)

const maxBodyBytes = 4 << 20

// ResolveHandler serves settings resolution requests.
type ResolveHandler struct {
	resolver core.SettingsResolver
	logger   *slog.Logger
}

func NewResolveHandler(resolver core.SettingsResolver, logger *slog.Logger) *ResolveHandler {
	return &ResolveHandler{resolver: resolver, logger: logger}
}

type resolveAllRequest struct {
	Settings core.Settings          `json:"settings"`
	Folders  []core.WorkspaceFolder `json:"folders"`
}

type resolveAllResponse struct {
	Results []*core.ResolveResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Resolve handles POST /api/v1/resolve.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req core.ResolveRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Debug("rejecting resolve request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res, err := h.resolver.Resolve(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to resolve settings", "error", err, "target", req.Target)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to resolve settings"})
		return
	}

	if len(res.Failures) > 0 {
		h.logger.Info("settings resolved with unresolved placeholders", "target", req.Target, "failures", res.Failures)
	}
	writeJSON(w, http.StatusOK, res)
}

// ResolveAll handles POST /api/v1/resolve/all.
func (h *ResolveHandler) ResolveAll(w http.ResponseWriter, r *http.Request) {
	var req resolveAllRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Debug("rejecting resolve-all request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if len(req.Folders) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "at least one folder is required"})
		return
	}

	results, err := h.resolver.ResolveAll(r.Context(), req.Settings, req.Folders)
	if err != nil {
		h.logger.Error("failed to resolve settings for all folders", "error", err, "folders", len(req.Folders))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to resolve settings"})
		return
	}
	writeJSON(w, http.StatusOK, resolveAllResponse{Results: results})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
