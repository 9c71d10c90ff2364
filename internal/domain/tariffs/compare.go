package tariffs

import (
	"sort"
	"strings"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"
)

// ElectricityComparisonRequest selects and ranks electricity tariffs
type ElectricityComparisonRequest struct {
	Usage ElectricityUsage
	// CurrentMonthlyBill enables savings figures on every quote
	CurrentMonthlyBill *float64
	// TimeDiscrimination keeps only time-of-use tariffs when true and only
	// flat tariffs when false
	TimeDiscrimination *bool
	GreenOnly          bool
	Limit              int
}

// ElectricityQuote is one ranked tariff
type ElectricityQuote struct {
	Tariff         *ElectricityTariff
	Cost           CostBreakdown
	MonthlySavings *float64
	AnnualSavings  *float64
}

// CompareElectricity prices every tariff for the request usage and returns
// the matching ones cheapest first
func CompareElectricity(catalog []*ElectricityTariff, req ElectricityComparisonRequest) []ElectricityQuote {
	quotes := make([]ElectricityQuote, 0, len(catalog))
	for _, t := range catalog {
		if req.GreenOnly && !t.GreenEnergy {
			continue
		}
		if req.TimeDiscrimination != nil && t.HasTimeDiscrimination() != *req.TimeDiscrimination {
			continue
		}

		quote := ElectricityQuote{Tariff: t, Cost: ElectricityCost(t, req.Usage)}
		if req.CurrentMonthlyBill != nil {
			monthly := utils.Round2(*req.CurrentMonthlyBill - quote.Cost.Total)
			annual := AnnualSavings(*req.CurrentMonthlyBill, quote.Cost.Total)
			quote.MonthlySavings = &monthly
			quote.AnnualSavings = &annual
		}
		quotes = append(quotes, quote)
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].Cost.Total != quotes[j].Cost.Total {
			return quotes[i].Cost.Total < quotes[j].Cost.Total
		}
		return lessByName(quotes[i].Tariff.Provider, quotes[i].Tariff.Name, quotes[j].Tariff.Provider, quotes[j].Tariff.Name)
	})

	return limit(quotes, req.Limit)
}

// InternetComparisonRequest selects and ranks internet tariffs
type InternetComparisonRequest struct {
	Type         string
	MinSpeedMbps int
	// MaxPrice bounds the effective monthly price; zero means no bound
	MaxPrice float64
	SortBy   string
	// CurrentMonthlyPrice enables first-year savings on every quote
	CurrentMonthlyPrice *float64
	Limit               int
}

// InternetQuote is one ranked tariff
type InternetQuote struct {
	Tariff         *InternetTariff
	EffectivePrice float64
	FirstYearCost  float64
	AnnualSavings  *float64
}

// CompareInternet filters the catalog and ranks it by effective price
// (cheapest first, the default) or by speed (fastest first)
func CompareInternet(catalog []*InternetTariff, req InternetComparisonRequest) []InternetQuote {
	quotes := make([]InternetQuote, 0, len(catalog))
	for _, t := range catalog {
		if req.Type != "" && t.Type != req.Type {
			continue
		}
		if t.SpeedMbps < req.MinSpeedMbps {
			continue
		}
		price := t.EffectivePrice()
		if req.MaxPrice > 0 && price > req.MaxPrice {
			continue
		}

		quote := InternetQuote{Tariff: t, EffectivePrice: price, FirstYearCost: t.FirstYearCost()}
		if req.CurrentMonthlyPrice != nil {
			savings := utils.Round2(*req.CurrentMonthlyPrice*MonthsPerYear - quote.FirstYearCost)
			quote.AnnualSavings = &savings
		}
		quotes = append(quotes, quote)
	}

	bySpeed := req.SortBy == SortBySpeed
	sort.SliceStable(quotes, func(i, j int) bool {
		a, b := quotes[i], quotes[j]
		if bySpeed && a.Tariff.SpeedMbps != b.Tariff.SpeedMbps {
			return a.Tariff.SpeedMbps > b.Tariff.SpeedMbps
		}
		if a.EffectivePrice != b.EffectivePrice {
			return a.EffectivePrice < b.EffectivePrice
		}
		return lessByName(a.Tariff.Provider, a.Tariff.Name, b.Tariff.Provider, b.Tariff.Name)
	})

	return limit(quotes, req.Limit)
}

func lessByName(providerA, nameA, providerB, nameB string) bool {
	if c := strings.Compare(providerA, providerB); c != 0 {
		return c < 0
	}
	return nameA < nameB
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
