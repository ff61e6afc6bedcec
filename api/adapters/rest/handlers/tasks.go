package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/adapters/rest"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/pkg/res"
)

func NewGetTaskHandler(_ *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := svc.GetTask(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewListTasksHandler(_ *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var f core.ListTasksFilter

		if s := q.Get("status"); s != "" {
			st, ok := parseStatus(s)
			if !ok {
				res.Error(w, "invalid status", http.StatusBadRequest)
				return
			}
			f.Status = &st
		}

		if v := q.Get("machine_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				res.Error(w, "invalid machine_id", http.StatusBadRequest)
				return
			}
			f.MachineID = &id
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListTasks(ctx, f)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"tasks": items}, http.StatusOK)
	}
}

// NewCompleteTaskHandler answers 200 for repeated completions and unknown ids;
// "changed" tells the caller whether anything happened.
func NewCompleteTaskHandler(log *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out, err := svc.CompleteTask(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		if !out.Changed {
			log.Debug("complete was a no-op", "task_id", id)
		}
		res.Json(w, out, http.StatusOK)
	}
}
