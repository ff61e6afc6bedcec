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

func NewAssistantHandler(_ *slog.Logger, chat *core.ChatService, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.AssistantIn
		if err := res.Decode(w, r, &in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		history := make([]core.ChatTurn, 0, len(in.History))
		for _, turn := range in.History {
			history = append(history, core.ChatTurn{Role: turn.Role, Text: turn.Text})
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out, err := chat.Reply(ctx, in.Message, history)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, out, http.StatusOK)
	}
}
