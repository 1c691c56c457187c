package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var Health = "GET /healthz"

type HealthHandler struct {
	logs     *zap.SugaredLogger
	checkers map[string]HealthChecker
}

// NewHealthHandler reports unhealthy when any named dependency fails its check.
func NewHealthHandler(logger *zap.SugaredLogger, checkers map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{
		logs:     logger,
		checkers: checkers,
	}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	code := http.StatusOK
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			status[name] = "unavailable"
			code = http.StatusServiceUnavailable
			h.logs.Warnw("health check failed", "dependency", name, "error", err)
			continue
		}
		status[name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
