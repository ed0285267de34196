package middleware

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverMiddleware 攔截panic，記錄堆疊後回500，不讓單一請求拖垮整個程序
func RecoverMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if logger == nil {
						temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
						logger = &temp
					}
					logger.Error().
						Str("request_id", getRequestID(r)).
						Interface("panic", err).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal Server Error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
