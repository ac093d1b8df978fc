// Package document renders the signed agreement as a PDF. Section order,
// wording and coordinates are load-bearing: downstream consumers expect the
// same document for the same data every time.
package document

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/jung-kurt/gofpdf"

	"github.com/lmwlabs/api-agreements/internal/pricing"
	"github.com/lmwlabs/api-agreements/internal/tier"
)

const (
	providerName     = "LMW Labs LLC"
	providerLocation = "Brandon, Mississippi"
	providerEmail    = "info@lmwlabs.faith"

	documentTitle  = "WEBSITE SERVICES AGREEMENT"
	filenamePrefix = "LMW_Labs_Agreement_"

	pageMargin   = 20.0
	contentWidth = 170.0
	footerY      = 280.0

	signatureWidth  = 60.0
	signatureHeight = 25.0
)

var keyTerms = []string{
	"• Work begins upon receipt of deposit",
	"• Balance due upon project completion before launch",
	"• Monthly fees begin after website launch",
	"• 30-day written notice required for service cancellation",
	"• Client owns website content and branding",
	"• LMW Labs retains code ownership until full payment",
}

// Agreement carries everything the assembler needs, already resolved.
type Agreement struct {
	Number string
	Date   string

	BusinessName string
	ContactName  string
	Email        string
	Phone        string
	Title        string

	TierKey           string
	TierLabel         string
	TierPriceRange    string
	BuildFee          float64
	MonthlyFeeDisplay string
	DepositDue        float64
	Description       string

	SignaturePNG []byte
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Filename derives the exported artifact's name from the client business
// name, collapsing whitespace runs to single underscores so repeated
// downloads of the same agreement get the same filesystem-safe name.
func Filename(businessName string) string {
	return filenamePrefix + whitespaceRE.ReplaceAllString(businessName, "_") + ".pdf"
}

// Assembler renders agreements to PDF bytes.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Render produces the agreement PDF. Any failure here is fatal to the
// submission attempt: no artifact means the client has nothing signed.
func (a *Assembler) Render(doc Agreement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	y := 20.0

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 30, 75)
	pdf.Text(pageMargin, y, documentTitle)
	y += 8
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(pageMargin, y, providerName)
	y += 10

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFontSize(10)
	pdf.Text(pageMargin, y, "Agreement #: "+doc.Number)
	y += 6
	pdf.Text(pageMargin, y, "Agreement Date: "+doc.Date)
	y += 12

	y = a.sectionHeading(pdf, y, "PARTIES")
	pdf.Text(pageMargin, y, fmt.Sprintf("Provider: %s, %s", providerName, providerLocation))
	y += 6
	pdf.Text(pageMargin, y, "Client: "+doc.BusinessName)
	y += 6
	pdf.Text(pageMargin, y, "Contact: "+doc.ContactName)
	y += 6
	pdf.Text(pageMargin, y, fmt.Sprintf("Email: %s  |  Phone: %s", doc.Email, doc.Phone))
	y += 12

	y = a.sectionHeading(pdf, y, "SELECTED SERVICES")
	pdf.Text(pageMargin, y, fmt.Sprintf("Package: %s (%s)", doc.TierLabel, doc.TierPriceRange))
	y += 6
	pdf.Text(pageMargin, y, "Build Fee: "+pricing.FormatUSD(doc.BuildFee))
	y += 6
	pdf.Text(pageMargin, y, "Monthly Fee: "+orDefault(doc.MonthlyFeeDisplay, "N/A"))
	y += 6

	if doc.Description != "" {
		pdf.SetFont("Helvetica", "I", 10)
		for _, line := range pdf.SplitText("Services: "+doc.Description, contentWidth) {
			pdf.Text(pageMargin, y, line)
			y += 5
		}
		pdf.SetFont("Helvetica", "", 10)
		y += 2
	}

	y += 4
	pdf.Text(pageMargin, y, "Affiliate Revenue Split:")
	y += 6
	if sentence := affiliateSentence(doc.TierKey); sentence != "" {
		pdf.Text(pageMargin, y, "  "+sentence)
	}
	y += 12

	y = a.sectionHeading(pdf, y, "INVESTMENT SUMMARY")
	pdf.Text(pageMargin, y, "Total Build Fee: "+pricing.FormatUSD(doc.BuildFee))
	y += 6
	pdf.Text(pageMargin, y, "Monthly Fee: "+orDefault(doc.MonthlyFeeDisplay, "$0"))
	y += 8
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(pageMargin, y, "DEPOSIT DUE AT SIGNING (50%): "+pricing.FormatUSD(doc.DepositDue))
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pageMargin, y, "Balance due upon completion: "+pricing.FormatUSD(doc.BuildFee-doc.DepositDue))
	y += 15

	y = a.sectionHeading(pdf, y, "KEY TERMS")
	pdf.SetFontSize(9)
	for _, term := range keyTerms {
		pdf.Text(pageMargin, y, term)
		y += 5
	}
	y += 10

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 30, 75)
	pdf.Text(pageMargin, y, "CLIENT SIGNATURE")
	y += 10

	if len(doc.SignaturePNG) > 0 {
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("client-signature", opt, bytes.NewReader(doc.SignaturePNG))
		pdf.ImageOptions("client-signature", pageMargin, y, signatureWidth, signatureHeight, false, opt, 0, "")
		y += 30
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pageMargin, y, "Printed Name: "+doc.ContactName)
	y += 6
	pdf.Text(pageMargin, y, "Title: "+doc.Title)
	y += 6
	pdf.Text(pageMargin, y, "Business: "+doc.BusinessName)
	y += 6
	pdf.Text(pageMargin, y, "Date: "+doc.Date)

	// Footer
	pdf.SetFontSize(9)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(pageMargin, footerY, fmt.Sprintf("%s | %s | %s", providerName, providerLocation, providerEmail))

	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *Assembler) sectionHeading(pdf *gofpdf.Fpdf, y float64, title string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 30, 75)
	pdf.Text(pageMargin, y, title)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	return y + 7
}

// affiliateSentence maps the tier to its fixed affiliate-split sentence. The
// custom tier (and anything unknown) prints none: those deals are negotiated
// case by case.
func affiliateSentence(tierKey string) string {
	switch tierKey {
	case tier.KeySelfManaged:
		return "Client keeps 100% of affiliate revenue"
	case tier.KeyGrowth:
		return "70% LMW Labs / 30% Client"
	case tier.KeyAuthority:
		return "LMW Labs keeps 100% of affiliate revenue"
	}
	return ""
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
