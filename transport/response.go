package transport

import (
	"encoding/json"
	"net/http"

	"github.com/rakapradana/place-review/utils/errors"
)

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	cerr, ok := err.(errors.CustomError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    "0001",
			Message: "error internal",
		})
		return
	}

	writeJSON(w, cerr.ErrorHTTPCode(), errorResponse{
		Code:    cerr.ErrorCode(),
		Message: cerr.Error(),
		Fields:  cerr.Fields(),
	})
}
