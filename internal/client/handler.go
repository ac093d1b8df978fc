package client

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves admin CRUD over client records.
type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// POST /api/admin/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}
	if c.BusinessName == "" {
		http.Error(w, "Business name is required", http.StatusBadRequest)
		return
	}
	if err := h.Store.Create(&c); err != nil {
		http.Error(w, "Failed to create client", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /api/admin/clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid client id", http.StatusBadRequest)
		return
	}
	c, err := h.Store.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Client not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /api/admin/clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid client id", http.StatusBadRequest)
		return
	}
	var c Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Malformed JSON", http.StatusBadRequest)
		return
	}
	c.ID = uint(id)
	if err := h.Store.Update(&c); err != nil {
		http.Error(w, "Failed to update client", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /api/admin/clients/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid client id", http.StatusBadRequest)
		return
	}
	if err := h.Store.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Client not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete client", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
