// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/docsmith/quickstart/internal/catalog"
	"github.com/docsmith/quickstart/internal/onboarding"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := catalog.OpenWithConfig(catalog.Config{Path: filepath.Join(t.TempDir(), "snapshots.db")})
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	srv, err := NewServer(onboarding.DefaultRegistry(), store)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func TestNewServerRequiresRegistry(t *testing.T) {
	if _, err := NewServer(nil, nil); err == nil {
		t.Fatalf("expected error for empty registry")
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestFlowsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/flows", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var infos []flowInfo
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("decode flows: %v", err)
	}
	if len(infos) != 4 {
		t.Fatalf("expected 4 flows, got %d", len(infos))
	}
	byName := make(map[string][]string, len(infos))
	for _, info := range infos {
		byName[info.Name] = info.Operations
	}
	if ops := byName[onboarding.FlowDefault]; len(ops) != 4 {
		t.Fatalf("default flow operations = %v", ops)
	}
	for _, partial := range []string{onboarding.FlowReplay, onboarding.FlowFeedback} {
		ops := byName[partial]
		for _, op := range ops {
			if op == "verify" || op == "next_steps" {
				t.Fatalf("%s flow should not expose %s", partial, op)
			}
		}
	}
}

func TestOnboardingEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	target := "/v1/onboarding/onboarding?dsn=abc&performance=true"
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp onboardingResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Flow != onboarding.FlowDefault {
		t.Fatalf("flow = %q", resp.Flow)
	}
	if len(resp.Install) != 1 || len(resp.Configure) != 2 || len(resp.Verify) != 1 {
		t.Fatalf("unexpected step counts: install=%d configure=%d verify=%d", len(resp.Install), len(resp.Configure), len(resp.Verify))
	}
	if len(resp.NextSteps) != 3 {
		t.Fatalf("expected 3 next steps, got %d", len(resp.NextSteps))
	}
	setup := resp.Configure[0].Configurations[0].Code
	if !strings.Contains(setup, `dsn: "abc"`) || !strings.Contains(setup, "Sentry.browserTracingIntegration()") {
		t.Fatalf("setup snippet did not honor params:\n%s", setup)
	}
	if strings.Contains(setup, "Sentry.replayIntegration") {
		t.Fatalf("replay integration should be absent:\n%s", setup)
	}
}

func TestOnboardingEndpointUnknownFlow(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/onboarding/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestOnboardingEndpointBadFlag(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/onboarding/onboarding?replay=banana", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestOnboardingMarkdownEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	target := "/v1/onboarding/onboarding/markdown?dsn=abc&replay=true"
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/markdown") {
		t.Fatalf("content type = %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "## Install") || !strings.Contains(body, "replaysSessionSampleRate") {
		t.Fatalf("unexpected markdown:\n%s", body)
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	srv := newTestServer(t)

	payload, _ := json.Marshal(snapshotRequest{DSN: "abc", Performance: true, Replay: true})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshots", bytes.NewReader(payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", rec.Code, rec.Body.String())
	}
	var created snapshotCreatedResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshots", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listed []catalog.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshots/"+strconv.FormatInt(created.ID, 10), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var snap catalog.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Documents) != 4 {
		t.Fatalf("expected a document per flow, got %d", len(snap.Documents))
	}
	for _, doc := range snap.Documents {
		if doc.Markdown == "" || doc.Payload == "" {
			t.Fatalf("document %s incomplete", doc.Flow)
		}
	}
}

func TestSnapshotGetNotFound(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshots/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSnapshotEndpointsWithoutCatalog(t *testing.T) {
	srv, err := NewServer(onboarding.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshots", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
}
