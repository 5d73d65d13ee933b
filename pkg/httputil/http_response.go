package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse carries either a single message or a list of them
// under the same "error" key
type ErrorResponse struct {
	Error any `json:"error"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, messages ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{}
	if len(messages) == 1 {
		resp.Error = messages[0]
	} else {
		resp.Error = messages
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
