package checkout

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lmwlabs/api-agreements/internal/tier"
)

// Request initiates a deposit payment. Amount is in major currency units.
type Request struct {
	Tier          string  `json:"tier" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	CustomerEmail string  `json:"customerEmail" validate:"omitempty,email"`
	CustomerName  string  `json:"customerName"`
}

// Response carries the redirect URL for the created session.
type Response struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Handler creates payment sessions for agreement deposits. A failure here is
// isolated: the already-finalized agreement is unaffected and the caller may
// retry or pay later.
type Handler struct {
	Creator  SessionCreator
	BaseURL  string
	Log      *zap.Logger
	validate *validator.Validate
}

func NewHandler(creator SessionCreator, baseURL string, log *zap.Logger) *Handler {
	return &Handler{
		Creator:  creator,
		BaseURL:  baseURL,
		Log:      log,
		validate: validator.New(),
	}
}

// Create handles POST /api/checkout.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Creator == nil {
		writeError(w, http.StatusInternalServerError, "Payment service not configured")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment request")
		return
	}

	def, ok := tier.Get(req.Tier)
	if !ok || def.SetupMaxCents == 0 {
		writeError(w, http.StatusBadRequest, "Invalid tier specified")
		return
	}

	// The deposit is half the build fee, so the lower bound is half the
	// tier's setup minimum.
	amountCents := int64(math.Round(req.Amount * 100))
	if amountCents < def.SetupMinCents/2 || amountCents > def.SetupMaxCents {
		writeError(w, http.StatusBadRequest, "Amount outside valid range for this tier")
		return
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = h.BaseURL
	}

	sess, err := h.Creator.CreateSession(r.Context(), SessionParams{
		TierKey:         req.Tier,
		TierName:        def.Label,
		TierDescription: def.Description,
		AmountCents:     amountCents,
		SetupAmount:     strconv.FormatFloat(req.Amount, 'f', -1, 64),
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		Origin:          origin,
	})
	if err != nil {
		h.Log.Error("checkout session creation failed",
			zap.String("tier", req.Tier),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	writeJSON(w, http.StatusOK, Response{SessionID: sess.ID, URL: sess.URL})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
