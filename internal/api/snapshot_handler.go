// File path: internal/api/snapshot_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/docsmith/quickstart/internal/catalog"
	"github.com/docsmith/quickstart/internal/common"
	"github.com/docsmith/quickstart/internal/onboarding"
	"github.com/docsmith/quickstart/internal/render"
)

func (s *Server) handleSnapshotCreate(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("snapshot catalog not configured"))
		return
	}
	var req snapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode snapshot request: %w", err))
		return
	}
	params := onboarding.Params{
		DSN:                 req.DSN,
		PerformanceSelected: req.Performance,
		ReplaySelected:      req.Replay,
		FeedbackSelected:    req.Feedback,
		ReplayOpts:          onboarding.DefaultReplayOptions(),
	}
	if req.MaskText != nil {
		params.ReplayOpts.MaskAllText = *req.MaskText
	}
	if req.BlockMedia != nil {
		params.ReplayOpts.BlockAllMedia = *req.BlockMedia
	}

	encodedParams, err := json.Marshal(params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("encode params: %w", err))
		return
	}
	snap := catalog.Snapshot{DSN: params.DSN, Params: string(encodedParams)}
	for _, name := range s.registry.Names() {
		flow := s.registry[name]
		payload, err := json.Marshal(buildOnboardingResponse(name, flow, params))
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Errorf("encode flow %s: %w", name, err))
			return
		}
		snap.Documents = append(snap.Documents, catalog.Document{
			Flow:     name,
			Markdown: render.Flow(name, flow, params),
			Payload:  string(payload),
		})
	}
	id, err := s.catalog.SaveSnapshot(r.Context(), snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	common.Logger().Info("api: snapshot saved", "id", id, "flows", len(snap.Documents))
	writeJSON(w, http.StatusCreated, snapshotCreatedResponse{ID: id})
}

func (s *Server) handleSnapshotList(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("snapshot catalog not configured"))
		return
	}
	snapshots, err := s.catalog.ListSnapshots(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if snapshots == nil {
		snapshots = []catalog.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snapshots)
}

func (s *Server) handleSnapshotGet(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("snapshot catalog not configured"))
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse snapshot id: %w", err))
		return
	}
	snap, err := s.catalog.GetSnapshot(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
