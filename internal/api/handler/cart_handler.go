package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

// GetCart GET /cart?userId=
func (c *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUintParam(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	items, err := c.cartService.ListItems(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertCartItemsToDTO(items))
}

// AddItem POST /cart
func (c *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var addDTO dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if addDTO.UserID == 0 || addDTO.ProductID == 0 {
		writeError(w, http.StatusBadRequest, "userId and productId are required")
		return
	}
	if addDTO.Quantity == 0 {
		addDTO.Quantity = 1
	}

	item, err := c.cartService.AddItem(r.Context(), addDTO.UserID, addDTO.ProductID, addDTO.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem PUT /cart/{id} 數量 <= 0 即移除
func (c *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartItemID, err := parseUintParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if updateDTO.UserID == 0 {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := c.cartService.SetQuantity(r.Context(), updateDTO.UserID, cartItemID, updateDTO.Quantity); err != nil {
		writeServiceError(w, err)
		return
	}

	if updateDTO.Quantity <= 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cart item updated"})
}

// DeleteItem DELETE /cart/{id}?userId=
func (c *CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	cartItemID, err := parseUintParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item id")
		return
	}
	userID, err := parseUintParam(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	if err := c.cartService.RemoveItem(r.Context(), userID, cartItemID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
