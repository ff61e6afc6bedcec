package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

func parseStatus(s string) (core.TaskStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return core.StatusPending, true
	case "DONE":
		return core.StatusDone, true
	default:
		return "", false
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
