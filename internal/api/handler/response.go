package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"gorm.io/gorm"
)

// writeJSON 寫出回應主體，格式與既有前端約定一致
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

/*
writeServiceError 服務層錯誤對應到HTTP狀態碼
找不到資源一律404，輸入或狀態問題一律400，其餘一律500且不外洩細節
*/
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrProductNotFound),
		errors.Is(err, db.ErrCartItemNotFound),
		errors.Is(err, db.ErrOrderNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrEmptyCart),
		errors.Is(err, db.ErrInsufficientStock),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseUintParam(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
