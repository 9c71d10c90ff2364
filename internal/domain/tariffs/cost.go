package tariffs

import "github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"

// ElectricityCost estimates the monthly bill of tariff t for usage u:
// fixed term plus energy term, less the tariff discount, with electricity
// tax and VAT applied. Every amount is rounded to two decimals; Total is
// computed unrounded and rounded once.
func ElectricityCost(t *ElectricityTariff, u ElectricityUsage) CostBreakdown {
	fixed := t.FixedRate * u.ContractedPowerKW * BillingDays
	energy := t.EnergyRate(u.peakShare()) * u.MonthlyConsumptionKWh

	base := fixed + energy
	subtotal := base * (1 - valueOr(t.DiscountPercent)/100)
	withTax := subtotal * ElectricityTaxFactor
	total := withTax * VATFactor

	return CostBreakdown{
		FixedTerm:      utils.Round2(fixed),
		EnergyTerm:     utils.Round2(energy),
		Discount:       utils.Round2(base - subtotal),
		ElectricityTax: utils.Round2(withTax - subtotal),
		VAT:            utils.Round2(total - withTax),
		Total:          utils.Round2(total),
	}
}

// AnnualSavings is the yearly difference between two monthly amounts.
// A negative result means the new amount is more expensive.
func AnnualSavings(oldMonthly, newMonthly float64) float64 {
	return utils.Round2((oldMonthly - newMonthly) * MonthsPerYear)
}
