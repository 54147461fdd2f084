package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const maxBodyBytes = 4 << 20

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an errbuilder code to an HTTP status. Internal errors
// never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	status, code := statusFor(errbuilder.CodeOf(err))

	resp := errorResponse{Error: code}
	if status < http.StatusInternalServerError {
		resp.ErrorDescription = errorMessage(err)
	}

	WriteJSON(w, status, resp)
}

func statusFor(code errbuilder.ErrCode) (int, string) {
	switch code {
	case errbuilder.CodeInvalidArgument:
		return http.StatusBadRequest, "bad_request"
	case errbuilder.CodeFailedPrecondition:
		return http.StatusPreconditionFailed, "precondition_failed"
	case errbuilder.CodeNotFound:
		return http.StatusNotFound, "not_found"
	case errbuilder.CodeAlreadyExists:
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && builder.Msg != "" {
		return builder.Msg
	}

	return err.Error()
}

// decodeJSON reads a bounded JSON body into v and rejects unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		WriteError(w, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid request body: "+err.Error()).
			WithCause(err))

		return false
	}

	return true
}
