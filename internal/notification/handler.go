package notification

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lmwlabs/api-agreements/internal/pricing"
	"github.com/lmwlabs/api-agreements/internal/tier"
)

const fromAddress = "LMW Labs <noreply@lmwlabs.faith>"

// Request asks for a quote or agreement email to be sent to a client.
type Request struct {
	ClientEmail   string `json:"clientEmail" validate:"required,email"`
	ClientName    string `json:"clientName"`
	BusinessName  string `json:"businessName"`
	AgreementLink string `json:"agreementLink" validate:"required"`
	Mode          string `json:"mode"` // "quote" or "agreement"
	Tier          string `json:"tier"`
	Amount        string `json:"amount"`
}

// Handler sends agreement/quote emails on behalf of the admin dashboard.
type Handler struct {
	Sender   EmailSender
	Log      *zap.Logger
	validate *validator.Validate
}

func NewHandler(sender EmailSender, log *zap.Logger) *Handler {
	return &Handler{Sender: sender, Log: log, validate: validator.New()}
}

// SendAgreement handles POST /api/send-agreement.
func (h *Handler) SendAgreement(w http.ResponseWriter, r *http.Request) {
	if h.Sender == nil {
		writeError(w, http.StatusInternalServerError,
			"Email service not configured. Please add RESEND_API_KEY to environment variables.")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest,
			"Missing required fields: clientEmail and agreementLink are required")
		return
	}

	email := buildEmail(req)
	id, err := h.Sender.Send(r.Context(), email)
	if err != nil {
		h.Log.Error("agreement email failed",
			zap.String("clientEmail", req.ClientEmail),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	documentType := documentTypeFor(req.Mode)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"messageId": id,
		"message":   fmt.Sprintf("%s email sent successfully to %s", documentType, req.ClientEmail),
	})
}

func documentTypeFor(mode string) string {
	if mode == "quote" {
		return "Quote"
	}
	return "Agreement"
}

func tierDisplay(key string) string {
	if def, ok := tier.Get(key); ok {
		return def.Label
	}
	return key
}

func buildEmail(req Request) Email {
	isQuote := req.Mode == "quote"
	documentType := documentTypeFor(req.Mode)

	subject := "Website Project Agreement Ready for Signature - LMW Labs"
	if isQuote {
		subject = "Your Website Project Quote from LMW Labs"
	}

	greetingName := req.ClientName
	if greetingName == "" {
		greetingName = "there"
	}

	intro := "Your website project agreement is ready for review and signature. " +
		"Please take a moment to review the details and sign when you're ready to proceed."
	cta := "Review & Sign Agreement"
	closing := "If you have any questions before signing, please don't hesitate to reach out."
	if isQuote {
		project := "website project"
		if req.BusinessName != "" {
			project = req.BusinessName + " website project"
		}
		intro = fmt.Sprintf("Thank you for your interest in working with LMW Labs! "+
			"We've prepared a detailed quote for your %s.", project)
		cta = "View Your Quote"
		closing = "This quote is valid for 30 days. If you have any questions, feel free to reply to this email."
	}

	amountLine := ""
	amountHTML := ""
	if v, err := strconv.ParseFloat(req.Amount, 64); err == nil && v > 0 {
		amountLine = "Investment: " + pricing.FormatUSD(v) + "\n"
		amountHTML = fmt.Sprintf(`<p style="margin: 4px 0; color: #22c55e;">Investment: <strong>%s</strong></p>`,
			pricing.FormatUSD(v))
	}

	display := tierDisplay(req.Tier)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 24px; background-color: #0a0a0f; font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; color: #d1d5db;">
  <div style="max-width: 600px; margin: 0 auto;">
    <h1 style="color: #ffffff; font-size: 28px;"><span style="color: #5f6ff1;">LMW</span> Labs</h1>
    <div style="background: linear-gradient(135deg, rgba(26,26,46,0.9), rgba(30,30,75,0.9)); border-radius: 16px; padding: 32px; border: 1px solid rgba(127,149,248,0.2);">
      <h2 style="color: #ffffff; margin-top: 0;">Hi %s,</h2>
      <p style="line-height: 1.6;">%s</p>
      <div style="background-color: rgba(95,111,241,0.1); border-radius: 12px; padding: 16px; margin: 16px 0;">
        <p style="margin: 4px 0;">Package: <strong style="color: #fbbf24;">%s</strong></p>
        %s
        <p style="margin: 4px 0;">Document Type: <strong style="color: #ffffff;">%s</strong></p>
      </div>
      <p style="text-align: center; margin: 24px 0;">
        <a href="%s" style="display: inline-block; background: linear-gradient(135deg, #fbbf24, #f59e0b); color: #1e1e4b; font-weight: 600; text-decoration: none; padding: 14px 32px; border-radius: 8px;">%s</a>
      </p>
      <p style="color: #9ca3af; font-size: 14px; text-align: center;">%s</p>
    </div>
    <p style="color: #6b7280; font-size: 14px; text-align: center; margin-top: 24px;">
      LMW Labs LLC &bull; Brandon, Mississippi<br>
      <a href="https://lmwlabs.faith" style="color: #7f95f8;">lmwlabs.faith</a> &bull;
      <a href="mailto:info@lmwlabs.faith" style="color: #7f95f8;">info@lmwlabs.faith</a>
    </p>
  </div>
</body>
</html>`, greetingName, intro, display, amountHTML, documentType, req.AgreementLink, cta, closing)

	text := fmt.Sprintf(`Hi %s,

%s

Package: %s
%sDocument Type: %s

%s: %s

%s

---
LMW Labs LLC
Brandon, Mississippi
https://lmwlabs.faith
info@lmwlabs.faith
`, greetingName, intro, display, amountLine, documentType, cta, req.AgreementLink, closing)

	return Email{
		From:    fromAddress,
		To:      []string{req.ClientEmail},
		Subject: subject,
		HTML:    html,
		Text:    text,
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
