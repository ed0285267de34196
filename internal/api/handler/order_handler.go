package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder POST /orders 結帳，成功回201與成立的訂單
func (o *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var placeDTO dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&placeDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if placeDTO.UserID == 0 {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	order, err := o.orderService.PlaceOrder(r.Context(), placeDTO.UserID,
		placeDTO.ShippingAddress, placeDTO.PaymentMethod)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ConvertOrderModelToDTO(order))
}

// ListOrders GET /orders?userId=
func (o *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUintParam(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	orders, err := o.orderService.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertOrdersToDTO(orders))
}

// GetOrder GET /orders/{id}?userId= 不屬於該用戶一律404
func (o *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUintParam(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}
	orderID := chi.URLParam(r, "id")

	order, err := o.orderService.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertOrderModelToDTO(order))
}

// ListAllOrders GET /admin/orders 跨用戶後台視圖
func (o *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderService.GetAllOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertOrdersToAdminDTO(orders))
}

// UpdateStatus PUT /admin/orders/{id}/status
func (o *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := o.orderService.UpdateOrderStatus(r.Context(), orderID, statusDTO.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertOrderModelToDTO(order))
}
