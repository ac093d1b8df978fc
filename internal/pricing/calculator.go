package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lmwlabs/api-agreements/internal/tier"
)

// Summary holds the fields derived from the selected tier and the optional
// custom build fee. It is recomputed as a whole; individual fields are never
// set directly.
type Summary struct {
	BuildFee          float64 `json:"buildFee"`
	BuildFeeDisplay   string  `json:"buildFeeDisplay"`
	MonthlyFeeDisplay string  `json:"monthlyFeeDisplay"`
	DepositDue        float64 `json:"depositDue"`
}

// ComputeSummary derives the build fee, display strings and the 50% deposit
// from the selected tier, the raw custom fee input and the maintenance mode.
// A custom fee that does not parse as a finite positive number is treated as
// absent and the tier's minimum price is used instead. Pure: the same inputs
// always yield the same summary.
func ComputeSummary(tierKey, customFeeInput, maintenanceMode string) Summary {
	def, known := tier.Get(tierKey)

	buildFee := 0.0
	if fee, ok := parsePositiveAmount(customFeeInput); ok {
		buildFee = fee
	} else if known {
		buildFee = def.MinPrice
	}

	s := Summary{
		BuildFee:   buildFee,
		DepositDue: buildFee / 2,
	}
	if buildFee != 0 {
		s.BuildFeeDisplay = FormatUSD(buildFee)
	}

	switch {
	case maintenanceMode == tier.MaintenanceHourly:
		s.MonthlyFeeDisplay = fmt.Sprintf("$%d/hr", int64(tier.HourlyRate))
	case tierKey == tier.KeyCustom:
		s.MonthlyFeeDisplay = "TBD"
	case known:
		s.MonthlyFeeDisplay = def.MonthlyDisplay
	}

	return s
}

// parsePositiveAmount returns the parsed value only when the input is a
// finite number greater than zero. Zero and negative inputs count as absent.
func parsePositiveAmount(input string) (float64, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// FormatUSD renders an amount as "$" plus a thousands-grouped figure. Cents
// are rounded half-up and printed only when non-zero.
func FormatUSD(amount float64) string {
	cents := int64(math.Floor(amount*100 + 0.5))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	out := groupThousands(whole)
	if frac != 0 {
		out = fmt.Sprintf("%s.%02d", out, frac)
	}
	if neg {
		return "-$" + out
	}
	return "$" + out
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
