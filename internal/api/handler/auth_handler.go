package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AuthHandler struct {
	userService service.IUserService
}

func NewAuthHandler(userService service.IUserService) *AuthHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{userService: userService}
}

// Register POST /auth/register
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userService.Register(r.Context(), registerDTO.Email, registerDTO.Password,
		registerDTO.FirstName, registerDTO.LastName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "User created successfully",
		User:    dto.ConvertUserModelToDTO(user),
	})
}

// Login POST /auth/login
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.ConvertUserModelToDTO(user),
	})
}
