package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
	"github.com/LuizRMSilva1973/projeto-pastelaria/api/pkg/res"
)

func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrBadArguments):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrUnavailable):
		res.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		res.Error(w, "upstream timeout", http.StatusGatewayTimeout)
	default:
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
