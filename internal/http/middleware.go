package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/obs"
	"github.com/sirupsen/logrus"
)

// APIKeyMiddleware rejects requests whose X-API-Key header does not match secret.
func APIKeyMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Authenticate(r.Header.Get(auth.HeaderName), secret); err != nil {
				handlers.WriteError(w, r, &handlers.ValidationError{Message: err.Error()})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		obs.Logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"bytes":      ww.BytesWritten(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"remoteAddr": r.RemoteAddr,
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("http_request")
	})
}

// Recoverer turns a panic in a handler into the standard 500 error body.
// When the handler already sent its headers the panic is only logged.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := fmt.Errorf("panic: %v", rec)
				if ww.Status() != 0 {
					obs.Logger.WithError(err).
						WithField("request_id", middleware.GetReqID(r.Context())).
						Error("panic after response started")
					return
				}
				handlers.WriteError(ww, r, err)
			}
		}()
		next.ServeHTTP(ww, r)
	})
}
