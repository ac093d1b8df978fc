package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lmwlabs/api-agreements/internal/agreement"
	"github.com/lmwlabs/api-agreements/internal/client"
	"github.com/lmwlabs/api-agreements/internal/contact"
)

const listLimit = 50

// Handler serves the admin dashboard reads and the agreement-link generator.
// All routes are gated by the allow-list policy upstream.
type Handler struct {
	Agreements agreement.Store
	Clients    client.Store
	Contacts   contact.Store
	BaseURL    string
	Log        *zap.Logger
}

func NewHandler(agreements agreement.Store, clients client.Store, contacts contact.Store, baseURL string, log *zap.Logger) *Handler {
	return &Handler{
		Agreements: agreements,
		Clients:    clients,
		Contacts:   contacts,
		BaseURL:    baseURL,
		Log:        log,
	}
}

// GET /api/admin/agreements
func (h *Handler) ListAgreements(w http.ResponseWriter, r *http.Request) {
	list, err := h.Agreements.ListRecent(listLimit)
	if err != nil {
		h.Log.Error("agreement list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list agreements")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/admin/clients
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	list, err := h.Clients.ListRecent(listLimit)
	if err != nil {
		h.Log.Error("client list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list clients")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GET /api/admin/contacts
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	list, err := h.Contacts.ListRecent(listLimit)
	if err != nil {
		h.Log.Error("contact list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list contacts")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GenerateLink builds a pre-filled agreement link for a client.
// GET /api/admin/clients/{id}/agreement-link
func (h *Handler) GenerateLink(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid client id")
		return
	}
	c, err := h.Clients.FindByID(uint(id))
	if err != nil {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	q := r.URL.Query()
	link := AgreementLink(h.BaseURL, c, LinkOptions{
		Tier:        q.Get("tier"),
		Mode:        q.Get("mode"),
		Amount:      q.Get("amount"),
		Description: q.Get("description"),
		ProjectURL:  q.Get("projectUrl"),
	})
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
