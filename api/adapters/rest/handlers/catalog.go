package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/adapters/rest"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/pkg/res"
)

func NewCatalogHandler(_ *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		cat, err := svc.Catalog(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, cat, http.StatusOK)
	}
}

func NewListMachinesHandler(_ *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		cat, err := svc.Catalog(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"machines": cat.Machines}, http.StatusOK)
	}
}

func NewMachineQueueHandler(_ *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid machine id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		q, err := svc.MachineQueue(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, q, http.StatusOK)
	}
}

func NewReportHandler(_ *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		report, err := svc.Report(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, report, http.StatusOK)
	}
}
