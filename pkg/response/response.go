package response

import (
	"encoding/json"
	"net/http"

	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/apierror"
)

// JSON sends a JSON response with the given status code. Payloads carry
// their own `success` field because the frontend contract keeps all response
// fields at the top level.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(payload)
}

// OK sends a 200 OK response.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Error sends an error response as {"success": false, "error": "..."}.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apierror.Error)
	if !ok {
		apiErr = apierror.InternalError("an unexpected error occurred")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	_, _ = w.Write(apiErr.ToJSON())
}
