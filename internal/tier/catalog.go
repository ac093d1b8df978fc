package tier

// Tier keys. The catalog is closed: exactly one Definition exists per key and
// the table is fixed at build time.
const (
	KeySelfManaged = "self-managed"
	KeyGrowth      = "growth"
	KeyAuthority   = "authority"
	KeyCustom      = "custom"
)

// Affiliate revenue split labels carried on agreements.
const (
	RevShareNone     = "none"   // client keeps 100%
	RevShareSplit    = "70/30"  // 70% LMW Labs / 30% client
	RevShareProvider = "100/0"  // LMW Labs keeps 100%
	RevShareCustom   = "custom" // negotiated case by case
)

// Maintenance billing modes.
const (
	MaintenanceIncluded = "included"
	MaintenanceHourly   = "hourly"
)

// HourlyRate is the as-needed maintenance rate in dollars per hour.
const HourlyRate = 100.0

// Definition describes one service tier. MinPrice/MaxPrice are whole-dollar
// build fee bounds; SetupMinCents/SetupMaxCents mirror them in cents for the
// payment provider. The custom tier has no price bounds and is not directly
// purchasable through checkout.
type Definition struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	PriceRange     string  `json:"priceRange"`
	MinPrice       float64 `json:"minPrice"`
	MaxPrice       float64 `json:"maxPrice"`
	MonthlyDisplay string  `json:"monthly"`
	MonthlyCents   int64   `json:"monthlyCents"`
	SetupMinCents  int64   `json:"setupMinCents"`
	SetupMaxCents  int64   `json:"setupMaxCents"`
	Description    string  `json:"description"`
	RevShare       string  `json:"revShare"`
}

var catalog = []Definition{
	{
		Key:            KeySelfManaged,
		Label:          "Self-Managed",
		PriceRange:     "$2,500 - $4,000",
		MinPrice:       2500,
		MaxPrice:       4000,
		MonthlyDisplay: "$0/mo",
		MonthlyCents:   0,
		SetupMinCents:  250000,
		SetupMaxCents:  400000,
		Description:    "Full ownership website package",
		RevShare:       RevShareNone,
	},
	{
		Key:            KeyGrowth,
		Label:          "Growth",
		PriceRange:     "$1,500 - $2,500",
		MinPrice:       1500,
		MaxPrice:       2500,
		MonthlyDisplay: "$100/mo",
		MonthlyCents:   10000,
		SetupMinCents:  150000,
		SetupMaxCents:  250000,
		Description:    "Shared success website package with monthly service",
		RevShare:       RevShareSplit,
	},
	{
		Key:            KeyAuthority,
		Label:          "Authority",
		PriceRange:     "$500 - $1,000",
		MinPrice:       500,
		MaxPrice:       1000,
		MonthlyDisplay: "$150/mo",
		MonthlyCents:   15000,
		SetupMinCents:  50000,
		SetupMaxCents:  100000,
		Description:    "Full service website package with monthly service",
		RevShare:       RevShareProvider,
	},
	{
		Key:            KeyCustom,
		Label:          "Custom Build",
		PriceRange:     "Custom Price",
		MonthlyDisplay: "TBD",
		Description:    "Custom project with negotiated pricing and scope",
		RevShare:       RevShareCustom,
	},
}

// Get looks up a tier by key. Callers must treat a miss as custom/unknown,
// never as a fatal condition.
func Get(key string) (Definition, bool) {
	for _, d := range catalog {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// All returns the catalog in display order.
func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
