package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/pkg/res"
)

// Check is one dependency reported by the ping endpoint. An optional
// dependency being down only degrades the status.
type Check struct {
	Name     string
	Pinger   core.Pinger
	Optional bool
}

func NewPingHandler(log *slog.Logger, checks []Check, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		services := make(map[string]string, len(checks))
		status, code := "ok", http.StatusOK

		for _, c := range checks {
			if err := c.Pinger.Ping(ctx); err != nil {
				log.Warn("ping failed", "service", c.Name, "error", err)
				services[c.Name] = "down"
				switch {
				case !c.Optional:
					status, code = "down", http.StatusServiceUnavailable
				case status == "ok":
					status = "degraded"
				}
				continue
			}
			services[c.Name] = "ok"
		}

		res.Json(w, map[string]any{"status": status, "services": services}, code)
	}
}
