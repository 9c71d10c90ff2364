package tariffs

// Billing constants
const (
	// BillingDays is the length of the billing period used by the calculator
	BillingDays = 30
	// ElectricityTaxFactor applies the electricity tax (5.11269632%)
	ElectricityTaxFactor = 1.0511269632
	// VATFactor applies VAT (21%)
	VATFactor = 1.21
	// DefaultPeakSharePercent is the share of consumption assumed in the peak
	// band when the customer does not provide one
	DefaultPeakSharePercent = 50.0
	// MonthsPerYear converts monthly amounts to yearly ones
	MonthsPerYear = 12
)

// Internet tariff types
const (
	InternetTypeFiber       = "fibra"
	InternetTypeMobile      = "movil"
	InternetTypeFiberMobile = "fibra_movil"
	InternetTypeADSL        = "adsl"
)

// Comparison sort keys
const (
	SortByPrice = "price"
	SortBySpeed = "speed"
)
