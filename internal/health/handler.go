// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

const probeTimeout = 5 * time.Second

type Checker interface {
	Ping(ctx context.Context) error
}

// Probe is a named dependency the readiness endpoint pings.
type Probe struct {
	Name    string
	Checker Checker
}

type Handler struct {
	probes   []Probe
	started  time.Time
	ready    atomic.Bool
	shutdown atomic.Bool
}

func NewHandler(probes ...Probe) *Handler {
	h := &Handler{
		probes:  probes,
		started: time.Now(),
	}
	h.ready.Store(true)
	return h
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
			Uptime: h.uptime(),
		})
		return
	}

	h.writeStatus(w, http.StatusOK, StatusResponse{
		Status: "ok",
		Uptime: h.uptime(),
	})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
			Uptime: h.uptime(),
		})
		return
	}

	if !h.ready.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "not_ready",
			Uptime: h.uptime(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	checks := h.runProbes(ctx)

	status := "ok"
	statusCode := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	h.writeStatus(w, statusCode, ReadinessResponse{
		Status: status,
		Uptime: h.uptime(),
		Checks: checks,
	})
}

func (h *Handler) runProbes(ctx context.Context) []ProbeResult {
	var wg sync.WaitGroup
	checks := make([]ProbeResult, len(h.probes))

	for i, probe := range h.probes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checks[i] = runProbe(ctx, probe)
		}()
	}

	wg.Wait()
	return checks
}

func runProbe(ctx context.Context, probe Probe) ProbeResult {
	result := ProbeResult{
		Name:    probe.Name,
		Healthy: true,
	}

	if probe.Checker == nil {
		result.Healthy = false
		result.Message = "checker not configured"
		return result
	}

	start := time.Now()
	err := probe.Checker.Ping(ctx)
	result.Latency = time.Since(start).String()

	if err != nil {
		result.Healthy = false
		result.Message = "ping failed"
	}

	return result
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) uptime() string {
	return time.Since(h.started).Round(time.Second).String()
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

type StatusResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

type ReadinessResponse struct {
	Status string        `json:"status"`
	Uptime string        `json:"uptime"`
	Checks []ProbeResult `json:"checks"`
}

type ProbeResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
