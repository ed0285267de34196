package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/google/uuid"
)

// RequestIdMiddleware 每個請求配發uuid，寫入context與回應標頭
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestID)
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
