package agreement

import (
	"net/url"

	"github.com/lmwlabs/api-agreements/internal/pricing"
	"github.com/lmwlabs/api-agreements/internal/signature"
)

// DraftParams are the optional pre-fill values carried on an agreement link.
// The parameter names must stay in lockstep with the admin link generator.
type DraftParams struct {
	Business    string
	Contact     string
	Email       string
	Phone       string
	ClientID    string
	Tier        string
	Mode        string
	Amount      string
	Description string
	ProjectURL  string
}

// ParamsFromQuery reads the pre-fill parameters from an agreement link query.
// Absent parameters leave fields empty.
func ParamsFromQuery(q url.Values) DraftParams {
	return DraftParams{
		Business:    q.Get("business"),
		Contact:     q.Get("contact"),
		Email:       q.Get("email"),
		Phone:       q.Get("phone"),
		ClientID:    q.Get("clientId"),
		Tier:        q.Get("tier"),
		Mode:        q.Get("mode"),
		Amount:      q.Get("amount"),
		Description: q.Get("description"),
		ProjectURL:  q.Get("projectUrl"),
	}
}

// FieldChangeRequest is one field edit on a draft.
type FieldChangeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// StrokeRequest is one completed signature stroke in display coordinates.
type StrokeRequest struct {
	Points        []signature.Point `json:"points"`
	DisplayWidth  float64           `json:"displayWidth"`
	DisplayHeight float64           `json:"displayHeight"`
}

// DraftView is the JSON representation of a draft returned to the client.
type DraftView struct {
	ID              string `json:"id"`
	AgreementNumber string `json:"agreementNumber"`
	AgreementDate   string `json:"agreementDate"`

	ClientBusinessName string `json:"clientBusinessName"`
	ClientContactName  string `json:"clientContactName"`
	ClientEmail        string `json:"clientEmail"`
	ClientPhone        string `json:"clientPhone"`
	ClientTitle        string `json:"clientTitle"`
	ClientID           string `json:"clientId"`

	SelectedTier           string `json:"selectedTier"`
	CustomBuildFee         string `json:"customBuildFee"`
	CustomBuildDescription string `json:"customBuildDescription"`
	SelectedRevShare       string `json:"selectedRevShare"`
	SelectedMaintenance    string `json:"selectedMaintenance"`

	Mode           string          `json:"mode"`
	ProjectURL     string          `json:"projectUrl"`
	Acknowledgment bool            `json:"acknowledgment"`
	Summary        pricing.Summary `json:"summary"`
	HasSignature   bool            `json:"hasSignature"`
}

// View snapshots the draft for the client.
func (d *Draft) View() DraftView {
	return DraftView{
		ID:              d.ID,
		AgreementNumber: d.AgreementNumber,
		AgreementDate:   d.AgreementDate,

		ClientBusinessName: d.ClientBusinessName,
		ClientContactName:  d.ClientContactName,
		ClientEmail:        d.ClientEmail,
		ClientPhone:        d.ClientPhone,
		ClientTitle:        d.ClientTitle,
		ClientID:           d.ClientID,

		SelectedTier:           d.SelectedTier,
		CustomBuildFee:         d.CustomBuildFee,
		CustomBuildDescription: d.CustomBuildDescription,
		SelectedRevShare:       d.SelectedRevShare,
		SelectedMaintenance:    d.SelectedMaintenance,

		Mode:           d.Mode,
		ProjectURL:     d.ProjectURL,
		Acknowledgment: d.Acknowledgment,
		Summary:        d.Summary,
		HasSignature:   d.Pad.HasSignature(),
	}
}
