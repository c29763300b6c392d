package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/obs"
)

// HTTPError is implemented by errors that carry their own response status.
type HTTPError interface {
	error
	StatusCode() int
	Name() string
}

// ValidationError reports client-supplied data or credentials that were rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *ValidationError) Name() string    { return "ValidationError" }

// NotFoundError reports a referenced resource that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string   { return e.Message }
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }
func (e *NotFoundError) Name() string    { return "NotFoundError" }

// MethodNotAllowedError reports a known path requested with an unsupported method.
type MethodNotAllowedError struct {
	Message string
}

func (e *MethodNotAllowedError) Error() string   { return e.Message }
func (e *MethodNotAllowedError) StatusCode() int { return http.StatusMethodNotAllowed }
func (e *MethodNotAllowedError) Name() string    { return "MethodNotAllowedError" }

type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Name    string `json:"name"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HandlerFunc is an http handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.HandlerFunc, sending any returned error to WriteError.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError renders err as the standard JSON error body. Errors that do not
// implement HTTPError become a 500 with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	detail := ErrorDetail{
		Message: "Internal Server Error",
		Status:  http.StatusInternalServerError,
		Name:    "Error",
	}

	var he HTTPError
	if errors.As(err, &he) {
		detail = ErrorDetail{Message: he.Error(), Status: he.StatusCode(), Name: he.Name()}
	} else {
		obs.Logger.WithError(err).
			WithField("request_id", middleware.GetReqID(r.Context())).
			Error("unhandled error")
	}

	if werr := writeJSON(w, detail.Status, ErrorResponse{Error: detail}); werr != nil {
		obs.Logger.WithError(werr).Warn("failed to write error response")
	}
}
