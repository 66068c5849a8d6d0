package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/secure"
)

// requestLogger logs one entry per request once the response is written.
func requestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				entry := logger.WithFields(logrus.Fields{
					"request_id": requestID(r),
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     responseStatus(ww),
					"bytes":      ww.BytesWritten(),
					"duration":   time.Since(start).String(),
				})
				if responseStatus(ww) >= http.StatusInternalServerError {
					entry.Error("request failed")
					return
				}
				entry.Info("request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// secureHeaders sets browser security headers. HTTPS redirects only apply in production.
func secureHeaders(logger logrus.FieldLogger, production bool) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sec.Process(w, r); err != nil {
				logger.WithError(err).WithField("path", r.URL.Path).Warn("secure headers blocked request")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// responseStatus is the status sent, 200 when the handler never called WriteHeader.
func responseStatus(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
