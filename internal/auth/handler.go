package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves login for portal and admin users.
type Handler struct {
	DB     *gorm.DB
	Tokens *TokenManager
	Policy *AdminPolicy
	Log    *zap.Logger
}

func NewHandler(db *gorm.DB, tokens *TokenManager, policy *AdminPolicy, log *zap.Logger) *Handler {
	return &Handler{DB: db, Tokens: tokens, Policy: policy, Log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
	Name    string `json:"name"`
}

// Login verifies credentials and issues a token. The admin claim comes from
// the allow-list policy, never from the user row.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}

	var user User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if !CheckPassword(user.PasswordHash, req.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	isAdmin := h.Policy.IsAdmin(user.Email)
	token, err := h.Tokens.Generate(user.ID, user.Email, isAdmin)
	if err != nil {
		h.Log.Error("token generation failed", zap.Error(err))
		http.Error(w, "Could not issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResponse{Token: token, IsAdmin: isAdmin, Name: user.Name})
}
