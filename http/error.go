package http

import (
	"net/http"

	"github.com/fwojciec/watchapi"
)

// InternalErrorMessage replaces internal error details in responses.
const InternalErrorMessage = "Failed to process watch collection"

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	watchapi.EINVALID:  http.StatusBadRequest,
	watchapi.ENOTFOUND: http.StatusNotFound,
	watchapi.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details withheld from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := watchapi.ErrorCode(err), watchapi.ErrorMessage(err)

	if code == watchapi.EINTERNAL {
		s.Logger.Error("internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		message = InternalErrorMessage
	}

	writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Detail: message})
}
