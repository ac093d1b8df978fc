package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Request is the contact-form payload. Name and email are required.
type Request struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Budget      string `json:"budget"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// Handler captures leads: validate, persist, forward. A forward failure is
// soft once the lead is stored; a missing forwarder just means store-only.
type Handler struct {
	Store     Store
	Forwarder Forwarder
	Log       *zap.Logger
	validate  *validator.Validate
}

func NewHandler(store Store, forwarder Forwarder, log *zap.Logger) *Handler {
	return &Handler{Store: store, Forwarder: forwarder, Log: log, validate: validator.New()}
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	stored := true
	lead := &Lead{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Budget:      req.Budget,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Source:      "website",
	}
	if err := h.Store.Create(lead); err != nil {
		stored = false
		h.Log.Warn("lead persistence failed", zap.String("email", req.Email), zap.Error(err))
	}

	forwarded := false
	if h.Forwarder != nil {
		if err := h.Forwarder.Forward(r.Context(), req); err != nil {
			h.Log.Warn("lead forward failed", zap.String("email", req.Email), zap.Error(err))
		} else {
			forwarded = true
		}
	} else {
		h.Log.Info("form service not configured, lead stored only", zap.String("email", req.Email))
	}

	if !stored && !forwarded {
		writeError(w, http.StatusInternalServerError, "Failed to submit form. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Form submitted successfully",
	})
}

// validationMessage maps validator failures to the contact form's two
// user-facing messages.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return "Invalid email format"
			}
		}
	}
	return "Name and email are required"
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
