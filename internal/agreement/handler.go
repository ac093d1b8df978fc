package agreement

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lmwlabs/api-agreements/internal/auth"
	"github.com/lmwlabs/api-agreements/internal/document"
	"github.com/lmwlabs/api-agreements/internal/tier"
)

// Renderer produces the PDF artifact for a finalized draft.
type Renderer interface {
	Render(doc document.Agreement) ([]byte, error)
}

// Handler serves the draft session lifecycle and agreement reads.
type Handler struct {
	Sessions *SessionStore
	Store    Store
	Docs     Renderer
	Log      *zap.Logger
}

func NewHandler(sessions *SessionStore, store Store, docs Renderer, log *zap.Logger) *Handler {
	return &Handler{Sessions: sessions, Store: store, Docs: docs, Log: log}
}

// CreateDraft opens a signing session, pre-filled from the agreement link
// query parameters when present.
// POST /api/agreements/drafts
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	d := h.Sessions.Create(ParamsFromQuery(r.URL.Query()))
	writeJSON(w, http.StatusCreated, d.View())
}

// GetDraft returns the draft's current state, derived fields included.
// GET /api/agreements/drafts/{id}
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Draft not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ApplyField mutates one form field. The response always carries a freshly
// recomputed summary; no stale derived value is ever visible.
// PATCH /api/agreements/drafts/{id}/fields
func (h *Handler) ApplyField(w http.ResponseWriter, r *http.Request) {
	var req FieldChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON")
		return
	}
	view, err := h.Sessions.Update(mux.Vars(r)["id"], func(d *Draft) error {
		return d.ApplyFieldChange(req.Field, req.Value)
	})
	if err != nil {
		h.writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AddStroke records one completed signature stroke.
// POST /api/agreements/drafts/{id}/signature/strokes
func (h *Handler) AddStroke(w http.ResponseWriter, r *http.Request) {
	var req StrokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON")
		return
	}
	view, err := h.Sessions.Update(mux.Vars(r)["id"], func(d *Draft) error {
		return d.Pad.AddStroke(req.Points, req.DisplayWidth, req.DisplayHeight)
	})
	if err != nil {
		h.writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ClearSignature wipes the signature surface.
// DELETE /api/agreements/drafts/{id}/signature
func (h *Handler) ClearSignature(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Update(mux.Vars(r)["id"], func(d *Draft) error {
		d.Pad.Clear()
		return nil
	})
	if err != nil {
		h.writeDraftError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Submit validates the draft, persists the record and responds with the PDF.
// Persistence failure is logged and flagged but never blocks the document:
// the client walks away with a signed agreement even when the backing store
// is unreachable. A render failure fails the attempt and returns the draft to
// the editing state with all values retained.
// POST /api/agreements/drafts/{id}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, err := h.Sessions.BeginSubmit(id)
	if err != nil {
		h.writeDraftError(w, err)
		return
	}

	if err := d.Validate(); err != nil {
		h.Sessions.FinishSubmit(id, false)
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	persisted := true
	if err := h.Store.Create(d.Record()); err != nil {
		persisted = false
		h.Log.Warn("agreement persistence failed",
			zap.String("agreementNumber", d.AgreementNumber),
			zap.Error(err))
	}

	pdf, err := h.Docs.Render(documentData(d))
	if err != nil {
		h.Sessions.FinishSubmit(id, false)
		h.Log.Error("document generation failed",
			zap.String("agreementNumber", d.AgreementNumber),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate agreement document")
		return
	}
	h.Sessions.FinishSubmit(id, true)

	filename := document.Filename(d.ClientBusinessName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Agreement-Number", d.AgreementNumber)
	w.Header().Set("X-Persisted", fmt.Sprintf("%t", persisted))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// ListMine returns the authenticated user's own agreements.
// GET /api/portal/agreements
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := auth.EmailFromContext(r.Context())
	if email == "" {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	list, err := h.Store.ListByEmail(email)
	if err != nil {
		h.Log.Error("agreement list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to list agreements")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func documentData(d *Draft) document.Agreement {
	label := "Custom"
	priceRange := "Custom Price"
	if def, ok := tier.Get(d.SelectedTier); ok {
		label = def.Label
		priceRange = def.PriceRange
	}
	return document.Agreement{
		Number:            d.AgreementNumber,
		Date:              d.AgreementDate,
		BusinessName:      d.ClientBusinessName,
		ContactName:       d.ClientContactName,
		Email:             d.ClientEmail,
		Phone:             d.ClientPhone,
		Title:             d.ClientTitle,
		TierKey:           d.SelectedTier,
		TierLabel:         label,
		TierPriceRange:    priceRange,
		BuildFee:          d.Summary.BuildFee,
		MonthlyFeeDisplay: d.Summary.MonthlyFeeDisplay,
		DepositDue:        d.Summary.DepositDue,
		Description:       d.CustomBuildDescription,
		SignaturePNG:      d.Pad.ExportPNG(),
	}
}

func (h *Handler) writeDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		writeError(w, http.StatusNotFound, "Draft not found")
	case errors.Is(err, ErrDraftSubmitting):
		writeError(w, http.StatusConflict, "Draft submission already in progress")
	case errors.Is(err, ErrUnknownField), errors.Is(err, ErrDerivedField):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
