package handler

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
)

type HealthHandler struct {
	dbDao *db.DbDao
}

func NewHealthHandler(dbDao *db.DbDao) *HealthHandler {
	return &HealthHandler{dbDao: dbDao}
}

// Health GET /health 確認服務與資料庫連線
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.dbDao.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
