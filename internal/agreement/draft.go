package agreement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lmwlabs/api-agreements/internal/pricing"
	"github.com/lmwlabs/api-agreements/internal/signature"
	"github.com/lmwlabs/api-agreements/internal/tier"
)

// NumberPrefix heads every agreement number.
const NumberPrefix = "LMW"

// Document modes an admin can send a link for.
const (
	ModeQuote     = "quote"
	ModeAgreement = "agreement"
)

// Draft is the in-progress form state for one signing session. It is mutated
// only through ApplyFieldChange and the signature pad; the Summary is
// recomputed synchronously after every edit so derived values are never stale.
type Draft struct {
	ID              string
	AgreementNumber string
	AgreementDate   string

	ClientBusinessName string
	ClientContactName  string
	ClientEmail        string
	ClientPhone        string
	ClientTitle        string
	ClientID           string

	SelectedTier           string
	CustomBuildFee         string
	CustomBuildDescription string
	SelectedRevShare       string
	SelectedMaintenance    string

	Mode       string
	ProjectURL string

	Acknowledgment bool

	Summary pricing.Summary
	Pad     *signature.Pad

	submitting bool
}

// NewDraft creates a draft for a fresh signing session, optionally
// pre-populated from admin link parameters. The agreement number is generated
// once, from the session start time.
func NewDraft(id string, p DraftParams, now time.Time) *Draft {
	d := &Draft{
		ID:              id,
		AgreementNumber: newAgreementNumber(now),
		AgreementDate:   now.Format("2006-01-02"),

		ClientBusinessName: p.Business,
		ClientContactName:  p.Contact,
		ClientEmail:        p.Email,
		ClientPhone:        p.Phone,
		ClientID:           p.ClientID,

		SelectedTier:           p.Tier,
		CustomBuildFee:         p.Amount,
		CustomBuildDescription: p.Description,
		SelectedRevShare:       tier.KeyGrowth,

		Mode:       p.Mode,
		ProjectURL: p.ProjectURL,

		Pad: signature.NewPad(),
	}
	if def, ok := tier.Get(p.Tier); ok {
		d.SelectedRevShare = def.RevShare
	}
	d.recompute()
	return d
}

func newAgreementNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", NumberPrefix, now.Format("20060102"), now.Format("150405"))
}

// Field names accepted by ApplyFieldChange.
const (
	FieldBusinessName   = "clientBusinessName"
	FieldContactName    = "clientContactName"
	FieldEmail          = "clientEmail"
	FieldPhone          = "clientPhone"
	FieldTitle          = "clientTitle"
	FieldSelectedTier   = "selectedTier"
	FieldCustomFee      = "customBuildFee"
	FieldDescription    = "customBuildDescription"
	FieldMaintenance    = "selectedMaintenance"
	FieldAcknowledgment = "acknowledgment"
)

// ApplyFieldChange mutates one field and re-runs the pricing derivation before
// returning. Changing the tier away from custom clears any typed custom fee;
// changing to custom preserves it. The summary fields are not settable.
func (d *Draft) ApplyFieldChange(field, value string) error {
	switch field {
	case FieldBusinessName:
		d.ClientBusinessName = value
	case FieldContactName:
		d.ClientContactName = value
	case FieldEmail:
		d.ClientEmail = value
	case FieldPhone:
		d.ClientPhone = value
	case FieldTitle:
		d.ClientTitle = value
	case FieldDescription:
		d.CustomBuildDescription = value
	case FieldMaintenance:
		d.SelectedMaintenance = value
	case FieldCustomFee:
		d.CustomBuildFee = value
	case FieldAcknowledgment:
		ack, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("acknowledgment must be a boolean: %w", err)
		}
		d.Acknowledgment = ack
	case FieldSelectedTier:
		d.applyTierChange(value)
	case "buildFeeDisplay", "monthlyFeeDisplay", "depositDue", "summary":
		return ErrDerivedField
	default:
		return ErrUnknownField
	}
	d.recompute()
	return nil
}

func (d *Draft) applyTierChange(value string) {
	d.SelectedTier = value
	if value == tier.KeyCustom {
		// Keep whatever custom fee was already typed.
		d.SelectedRevShare = tier.RevShareCustom
		return
	}
	d.CustomBuildFee = ""
	if def, ok := tier.Get(value); ok {
		d.SelectedRevShare = def.RevShare
	} else {
		d.SelectedRevShare = tier.KeyGrowth
	}
}

func (d *Draft) recompute() {
	d.Summary = pricing.ComputeSummary(d.SelectedTier, d.CustomBuildFee, d.SelectedMaintenance)
}

// Validate runs the submission checks in order and returns the first failure:
// signature, acknowledgment, required client fields, tier selection, and the
// custom fee when the tier is custom (or unknown, which is treated as custom).
func (d *Draft) Validate() error {
	if !d.Pad.HasSignature() {
		return &ValidationError{Field: "signature", Message: "Please provide your signature"}
	}
	if !d.Acknowledgment {
		return &ValidationError{Field: FieldAcknowledgment, Message: "Please acknowledge the terms and conditions"}
	}

	required := []struct {
		field, value, label string
	}{
		{FieldBusinessName, d.ClientBusinessName, "business name"},
		{FieldContactName, d.ClientContactName, "contact name"},
		{FieldEmail, d.ClientEmail, "email"},
		{FieldPhone, d.ClientPhone, "phone"},
	}
	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			return &ValidationError{Field: req.field, Message: "Please enter your " + req.label}
		}
	}

	if d.SelectedTier == "" {
		return &ValidationError{Field: FieldSelectedTier, Message: "Please select a website package"}
	}
	def, known := tier.Get(d.SelectedTier)
	if !known || def.Key == tier.KeyCustom {
		if _, ok := parsedCustomFee(d.CustomBuildFee); !ok {
			return &ValidationError{Field: FieldCustomFee, Message: "Please enter a positive custom build amount"}
		}
	}
	return nil
}

func parsedCustomFee(input string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Record flattens the draft into the row persisted at submission time. The
// stored build fee is the resolved one, not the raw input.
func (d *Draft) Record() *Record {
	return &Record{
		AgreementNumber:        d.AgreementNumber,
		AgreementDate:          d.AgreementDate,
		ClientBusinessName:     d.ClientBusinessName,
		ClientContactName:      d.ClientContactName,
		ClientEmail:            d.ClientEmail,
		ClientPhone:            d.ClientPhone,
		ClientTitle:            d.ClientTitle,
		ClientID:               d.ClientID,
		SelectedPackage:        d.SelectedTier,
		CustomBuildFee:         d.Summary.BuildFee,
		CustomBuildDescription: d.CustomBuildDescription,
		SelectedRevShare:       d.SelectedRevShare,
		SelectedMaintenance:    d.SelectedMaintenance,
		TotalDueAtSigning:      d.Summary.DepositDue,
		SignatureData:          d.Pad.DataURI(),
		Status:                 StatusSigned,
	}
}
