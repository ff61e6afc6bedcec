package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/adapters/rest"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/pkg/res"
)

func NewCreateOrderHandler(log *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateOrderIn
		if err := res.Decode(w, r, &in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if len(in.Items) == 0 {
			res.Error(w, "order has no items", http.StatusBadRequest)
			return
		}

		o := core.Order{
			Client: in.Client,
			Origin: in.Origin,
			Items:  make([]core.OrderItem, 0, len(in.Items)),
		}
		for _, it := range in.Items {
			o.Items = append(o.Items, core.OrderItem{Flavor: it.Flavor, Quantity: it.Quantity})
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out, err := svc.SubmitOrder(ctx, o)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		log.Debug("order submitted", "order_id", out.OrderID, "tasks", len(out.Tasks))
		res.Json(w, out, http.StatusCreated)
	}
}

// NewImportOrderHandler accepts an empty body; origin then defaults on the
// production side.
func NewImportOrderHandler(log *slog.Logger, svc core.Production, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.ImportOrderIn
		if err := res.Decode(w, r, &in); err != nil && !errors.Is(err, io.EOF) {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out, err := svc.ImportOrder(ctx, in.Origin)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		log.Debug("order imported", "order_id", out.OrderID, "tasks", len(out.Tasks))
		res.Json(w, out, http.StatusCreated)
	}
}
