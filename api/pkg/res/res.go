package res

import (
	"encoding/json"
	"net/http"
)

// MaxBody caps request bodies read by Decode.
const MaxBody = 1 << 20

func Json(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, msg string, statusCode int) {
	Json(w, map[string]any{"error": msg}, statusCode)
}

// Decode reads a JSON request body into dst. An empty body yields io.EOF.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBody))
	return dec.Decode(dst)
}
