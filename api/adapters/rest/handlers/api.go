package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

// Register wires every route. assistantTimeout bounds the chat call, which is
// usually much slower than the production service.
func Register(mux *http.ServeMux, log *slog.Logger, deps core.Deps, timeout, assistantTimeout time.Duration) {
	// ping
	checks := []Check{{Name: "production", Pinger: deps.Production}}
	if p, ok := deps.Assistant.(core.Pinger); ok {
		checks = append(checks, Check{Name: "assistant", Pinger: p, Optional: true})
	}
	mux.Handle("GET /api/ping", NewPingHandler(log, checks, timeout))

	// catalog & machines
	mux.Handle("GET /api/catalog", NewCatalogHandler(log, deps.Production, timeout))
	mux.Handle("GET /api/machines", NewListMachinesHandler(log, deps.Production, timeout))
	mux.Handle("GET /api/machines/{id}/queue", NewMachineQueueHandler(log, deps.Production, timeout))

	// orders
	mux.Handle("POST /api/orders", NewCreateOrderHandler(log, deps.Production, timeout))
	mux.Handle("POST /api/orders/import", NewImportOrderHandler(log, deps.Production, timeout))

	// tasks
	mux.Handle("GET /api/tasks", NewListTasksHandler(log, deps.Production, timeout))
	mux.Handle("GET /api/tasks/{id}", NewGetTaskHandler(log, deps.Production, timeout))
	mux.Handle("POST /api/tasks/{id}/complete", NewCompleteTaskHandler(log, deps.Production, timeout))

	// report
	mux.Handle("GET /api/report", NewReportHandler(log, deps.Production, timeout))

	// assistant
	chat := core.NewChatService(log, deps.Production, deps.Assistant)
	mux.Handle("POST /api/assistant", NewAssistantHandler(log, chat, assistantTimeout))
}
