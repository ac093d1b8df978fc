package agreement

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmwlabs/api-agreements/internal/signature"
	"github.com/lmwlabs/api-agreements/internal/tier"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestDraft(p DraftParams) *Draft {
	return NewDraft("draft-1", p, fixedNow)
}

func sign(t *testing.T, d *Draft) {
	t.Helper()
	err := d.Pad.AddStroke([]signature.Point{{X: 10, Y: 10}, {X: 60, Y: 40}}, signature.SurfaceWidth, signature.SurfaceHeight)
	require.NoError(t, err)
}

func TestNewDraftNumberAndDate(t *testing.T) {
	d := newTestDraft(DraftParams{})

	assert.Equal(t, "LMW-20250314-092653", d.AgreementNumber)
	assert.Regexp(t, regexp.MustCompile(`^LMW-\d{8}-\d{6}$`), d.AgreementNumber)
	assert.Equal(t, "2025-03-14", d.AgreementDate)
}

func TestNewDraftPrefill(t *testing.T) {
	d := newTestDraft(DraftParams{
		Business: "Acme Roofing Co.",
		Contact:  "Jo Smith",
		Email:    "jo@acme.test",
		Phone:    "601-555-0101",
		ClientID: "7",
		Tier:     tier.KeyAuthority,
		Mode:     ModeAgreement,
		Amount:   "800",
	})

	assert.Equal(t, "Acme Roofing Co.", d.ClientBusinessName)
	assert.Equal(t, tier.KeyAuthority, d.SelectedTier)
	assert.Equal(t, tier.RevShareProvider, d.SelectedRevShare)
	assert.Equal(t, ModeAgreement, d.Mode)
	assert.Equal(t, 800.0, d.Summary.BuildFee)
	assert.Equal(t, 400.0, d.Summary.DepositDue)
}

func TestNewDraftDefaultRevShare(t *testing.T) {
	// No tier pre-filled: nothing is selected yet, but the rev-share label
	// starts on the growth split.
	d := newTestDraft(DraftParams{})
	assert.Empty(t, d.SelectedTier)
	assert.Equal(t, tier.KeyGrowth, d.SelectedRevShare)
}

func TestApplyFieldChangeRecomputesSummary(t *testing.T) {
	d := newTestDraft(DraftParams{})

	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyGrowth))
	assert.Equal(t, 1500.0, d.Summary.BuildFee)
	assert.Equal(t, "$100/mo", d.Summary.MonthlyFeeDisplay)

	require.NoError(t, d.ApplyFieldChange(FieldMaintenance, tier.MaintenanceHourly))
	assert.Equal(t, "$100/hr", d.Summary.MonthlyFeeDisplay)
}

func TestTierChangeSideEffects(t *testing.T) {
	d := newTestDraft(DraftParams{})

	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyCustom))
	require.NoError(t, d.ApplyFieldChange(FieldCustomFee, "9000"))
	assert.Equal(t, 9000.0, d.Summary.BuildFee)
	assert.Equal(t, tier.RevShareCustom, d.SelectedRevShare)

	// Leaving custom clears the typed fee and restores the tier's split.
	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyGrowth))
	assert.Empty(t, d.CustomBuildFee)
	assert.Equal(t, tier.RevShareSplit, d.SelectedRevShare)
	assert.Equal(t, 1500.0, d.Summary.BuildFee)

	// Coming back to custom does not resurrect the cleared fee.
	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyCustom))
	assert.Empty(t, d.CustomBuildFee)
	assert.Equal(t, 0.0, d.Summary.BuildFee)
}

func TestCustomTierPreservesTypedFee(t *testing.T) {
	d := newTestDraft(DraftParams{})
	require.NoError(t, d.ApplyFieldChange(FieldCustomFee, "4200"))
	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyCustom))
	assert.Equal(t, "4200", d.CustomBuildFee)
	assert.Equal(t, 4200.0, d.Summary.BuildFee)
}

func TestDerivedFieldsAreRejected(t *testing.T) {
	d := newTestDraft(DraftParams{})
	for _, field := range []string{"buildFeeDisplay", "monthlyFeeDisplay", "depositDue", "summary"} {
		err := d.ApplyFieldChange(field, "1")
		assert.ErrorIs(t, err, ErrDerivedField, field)
	}
	assert.ErrorIs(t, d.ApplyFieldChange("nonsense", "1"), ErrUnknownField)
}

func TestAcknowledgmentParsing(t *testing.T) {
	d := newTestDraft(DraftParams{})
	require.NoError(t, d.ApplyFieldChange(FieldAcknowledgment, "true"))
	assert.True(t, d.Acknowledgment)
	require.NoError(t, d.ApplyFieldChange(FieldAcknowledgment, "false"))
	assert.False(t, d.Acknowledgment)
	assert.Error(t, d.ApplyFieldChange(FieldAcknowledgment, "yes please"))
}

func completeDraft(t *testing.T) *Draft {
	t.Helper()
	d := newTestDraft(DraftParams{
		Business: "Acme Roofing Co.",
		Contact:  "Jo Smith",
		Email:    "jo@acme.test",
		Phone:    "601-555-0101",
		Tier:     tier.KeyGrowth,
	})
	sign(t, d)
	require.NoError(t, d.ApplyFieldChange(FieldAcknowledgment, "true"))
	return d
}

func TestValidateOrder(t *testing.T) {
	d := newTestDraft(DraftParams{})

	// Everything is missing: the signature check fires first.
	verr := requireValidationError(t, d.Validate())
	assert.Equal(t, "Please provide your signature", verr.Message)

	sign(t, d)
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please acknowledge the terms and conditions", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldAcknowledgment, "true"))
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter your business name", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldBusinessName, "Acme Roofing Co."))
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter your contact name", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldContactName, "Jo Smith"))
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter your email", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldEmail, "jo@acme.test"))
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter your phone", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldPhone, "601-555-0101"))
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please select a website package", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyGrowth))
	assert.NoError(t, d.Validate())
}

func TestValidateCustomFeeRequired(t *testing.T) {
	d := completeDraft(t)
	require.NoError(t, d.ApplyFieldChange(FieldSelectedTier, tier.KeyCustom))

	verr := requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter a positive custom build amount", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldCustomFee, "-10"))
	verr = requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter a positive custom build amount", verr.Message)

	require.NoError(t, d.ApplyFieldChange(FieldCustomFee, "5000"))
	assert.NoError(t, d.Validate())
}

func TestValidateWhitespaceOnlyFieldFails(t *testing.T) {
	d := completeDraft(t)
	require.NoError(t, d.ApplyFieldChange(FieldEmail, "   "))
	verr := requireValidationError(t, d.Validate())
	assert.Equal(t, "Please enter your email", verr.Message)
}

func TestRecordFlattensResolvedValues(t *testing.T) {
	d := completeDraft(t)
	rec := d.Record()

	assert.Equal(t, d.AgreementNumber, rec.AgreementNumber)
	assert.Equal(t, tier.KeyGrowth, rec.SelectedPackage)
	assert.Equal(t, 1500.0, rec.CustomBuildFee)
	assert.Equal(t, 750.0, rec.TotalDueAtSigning)
	assert.Equal(t, StatusSigned, rec.Status)
	assert.Contains(t, rec.SignatureData, "data:image/png;base64,")
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return verr
}
