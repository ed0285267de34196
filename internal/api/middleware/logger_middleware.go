package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func getRequestID(r *http.Request) string {
	requestID := "unknown"
	if v := r.Context().Value(constants.RequestIDKey); v != nil {
		requestID = v.(string)
	}
	return requestID
}

// LoggerMiddleware 記錄request 請求
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}

			start := time.Now()
			next.ServeHTTP(recoder, r)

			if logger == nil {
				temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
				logger = &temp
			}

			logger.Info().
				Str("request_id", getRequestID(r)).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recoder.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request completed")
		})
	}
}
