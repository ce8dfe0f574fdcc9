// File path: internal/api/onboarding_handler.go
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/docsmith/quickstart/internal/common"
	"github.com/docsmith/quickstart/internal/onboarding"
	"github.com/docsmith/quickstart/internal/render"
)

func (s *Server) handleFlows(w http.ResponseWriter, r *http.Request) {
	probe := onboarding.Params{DSN: "probe", ReplayOpts: onboarding.DefaultReplayOptions()}
	infos := make([]flowInfo, 0, len(s.registry))
	for _, name := range s.registry.Names() {
		flow := s.registry[name]
		info := flowInfo{Name: name}
		if len(flow.Install(probe)) > 0 {
			info.Operations = append(info.Operations, "install")
		}
		if len(flow.Configure(probe)) > 0 {
			info.Operations = append(info.Operations, "configure")
		}
		if len(flow.Verify(probe)) > 0 {
			info.Operations = append(info.Operations, "verify")
		}
		if len(flow.NextSteps(probe)) > 0 {
			info.Operations = append(info.Operations, "next_steps")
		}
		infos = append(infos, info)
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	name, flow, err := s.resolveFlow(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	params, err := paramsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	common.Logger().Debug("api: onboarding requested", "flow", name)
	writeJSON(w, http.StatusOK, buildOnboardingResponse(name, flow, params))
}

func (s *Server) handleOnboardingMarkdown(w http.ResponseWriter, r *http.Request) {
	name, flow, err := s.resolveFlow(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	params, err := paramsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.Flow(name, flow, params)))
}

func (s *Server) resolveFlow(r *http.Request) (string, onboarding.Flow, error) {
	name := chi.URLParam(r, "flow")
	flow, ok := s.registry.Lookup(name)
	if !ok {
		return "", nil, fmt.Errorf("unknown flow %q", name)
	}
	return name, flow, nil
}

func buildOnboardingResponse(name string, flow onboarding.Flow, params onboarding.Params) onboardingResponse {
	return onboardingResponse{
		Flow:      name,
		Install:   flow.Install(params),
		Configure: flow.Configure(params),
		Verify:    flow.Verify(params),
		NextSteps: flow.NextSteps(params),
	}
}

// paramsFromQuery binds query parameters onto generation params. The DSN is
// passed through untouched; flag parsing is strict so that a malformed
// boolean surfaces as a 400 instead of being silently dropped.
func paramsFromQuery(values url.Values) (onboarding.Params, error) {
	params := onboarding.Params{
		DSN:        values.Get("dsn"),
		ReplayOpts: onboarding.DefaultReplayOptions(),
	}
	flags := []struct {
		key    string
		target *bool
	}{
		{"performance", &params.PerformanceSelected},
		{"replay", &params.ReplaySelected},
		{"feedback", &params.FeedbackSelected},
		{"mask_text", &params.ReplayOpts.MaskAllText},
		{"block_media", &params.ReplayOpts.BlockAllMedia},
	}
	for _, flag := range flags {
		raw := values.Get(flag.key)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return onboarding.Params{}, fmt.Errorf("parse %s: %w", flag.key, err)
		}
		*flag.target = parsed
	}
	return params, nil
}
