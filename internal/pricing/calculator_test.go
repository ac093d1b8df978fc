package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmwlabs/api-agreements/internal/tier"
)

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name        string
		tier        string
		customFee   string
		maintenance string
		want        Summary
	}{
		{
			name: "growth without custom fee uses tier minimum",
			tier: tier.KeyGrowth,
			want: Summary{
				BuildFee:          1500,
				BuildFeeDisplay:   "$1,500",
				MonthlyFeeDisplay: "$100/mo",
				DepositDue:        750,
			},
		},
		{
			name:      "custom tier with typed fee",
			tier:      tier.KeyCustom,
			customFee: "7500",
			want: Summary{
				BuildFee:          7500,
				BuildFeeDisplay:   "$7,500",
				MonthlyFeeDisplay: "TBD",
				DepositDue:        3750,
			},
		},
		{
			name:      "negative fee treated as absent",
			tier:      tier.KeyAuthority,
			customFee: "-50",
			want: Summary{
				BuildFee:          500,
				BuildFeeDisplay:   "$500",
				MonthlyFeeDisplay: "$150/mo",
				DepositDue:        250,
			},
		},
		{
			name:      "unparseable fee treated as absent",
			tier:      tier.KeySelfManaged,
			customFee: "a lot",
			want: Summary{
				BuildFee:          2500,
				BuildFeeDisplay:   "$2,500",
				MonthlyFeeDisplay: "$0/mo",
				DepositDue:        1250,
			},
		},
		{
			name:        "hourly maintenance overrides the tier monthly",
			tier:        tier.KeyGrowth,
			maintenance: tier.MaintenanceHourly,
			want: Summary{
				BuildFee:          1500,
				BuildFeeDisplay:   "$1,500",
				MonthlyFeeDisplay: "$100/hr",
				DepositDue:        750,
			},
		},
		{
			name: "custom tier without fee has zero build fee",
			tier: tier.KeyCustom,
			want: Summary{
				BuildFee:          0,
				BuildFeeDisplay:   "",
				MonthlyFeeDisplay: "TBD",
				DepositDue:        0,
			},
		},
		{
			name: "no tier selected yields empty summary",
			want: Summary{},
		},
		{
			name:      "unknown tier with fee behaves like custom pricing",
			tier:      "enterprise",
			customFee: "12000",
			want: Summary{
				BuildFee:        12000,
				BuildFeeDisplay: "$12,000",
				DepositDue:      6000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSummary(tt.tier, tt.customFee, tt.maintenance)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeSummaryIsPure(t *testing.T) {
	first := ComputeSummary(tier.KeyGrowth, "2000", tier.MaintenanceIncluded)
	second := ComputeSummary(tier.KeyGrowth, "2000", tier.MaintenanceIncluded)
	assert.Equal(t, first, second)
}

func TestDepositIsHalfTheBuildFee(t *testing.T) {
	for _, def := range tier.All() {
		s := ComputeSummary(def.Key, "", "")
		assert.Equal(t, s.BuildFee, s.DepositDue*2, "tier %s", def.Key)
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{500, "$500"},
		{1500, "$1,500"},
		{2500.5, "$2,500.50"},
		{1234567, "$1,234,567"},
		{749.999, "$750"},
		{0.1, "$0.10"},
		{-1250, "-$1,250"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatUSD(tt.amount), "amount %v", tt.amount)
	}
}
