// Package seed loads the built-in catalogs shipped with the binary: the
// tariff catalog used to populate an empty database and the security
// catalog used when the provider API is unreachable.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed security.yaml
var securityYAML []byte

type yamlElectricityTariff struct {
	Provider         string   `yaml:"provider"`
	Name             string   `yaml:"name"`
	FixedRate        float64  `yaml:"fixed_rate"`
	FlatRate         *float64 `yaml:"flat_rate,omitempty"`
	PeakRate         *float64 `yaml:"peak_rate,omitempty"`
	OffPeakRate      *float64 `yaml:"off_peak_rate,omitempty"`
	DiscountPercent  *float64 `yaml:"discount_percent,omitempty"`
	PermanenceMonths int      `yaml:"permanence_months,omitempty"`
	GreenEnergy      bool     `yaml:"green_energy,omitempty"`
}

type yamlInternetTariff struct {
	Provider         string   `yaml:"provider"`
	Name             string   `yaml:"name"`
	Type             string   `yaml:"type"`
	SpeedMbps        int      `yaml:"speed_mbps,omitempty"`
	MobileDataGB     int      `yaml:"mobile_data_gb,omitempty"`
	UnlimitedData    bool     `yaml:"unlimited_data,omitempty"`
	MonthlyPrice     float64  `yaml:"monthly_price"`
	PromoPrice       *float64 `yaml:"promo_price,omitempty"`
	PromoMonths      int      `yaml:"promo_months,omitempty"`
	PermanenceMonths int      `yaml:"permanence_months,omitempty"`
}

type yamlCatalog struct {
	Electricity []yamlElectricityTariff `yaml:"electricity"`
	Internet    []yamlInternetTariff    `yaml:"internet"`
}

type yamlSecuritySystem struct {
	Provider          string   `yaml:"provider"`
	Name              string   `yaml:"name"`
	Type              string   `yaml:"type"`
	InstallationPrice float64  `yaml:"installation_price"`
	MonthlyFee        float64  `yaml:"monthly_fee"`
	Rating            float64  `yaml:"rating"`
	Features          []string `yaml:"features"`
}

type yamlProvider struct {
	Name             string `yaml:"name"`
	InstallationDays int    `yaml:"installation_days"`
}

type yamlSecurity struct {
	Systems           []yamlSecuritySystem `yaml:"systems"`
	NationalProviders []yamlProvider       `yaml:"national_providers"`
}

// TariffCatalog is the parsed tariff seed
type TariffCatalog struct {
	Electricity []*tariffs.ElectricityTariff
	Internet    []*tariffs.InternetTariff
}

// SecurityCatalog is the parsed security seed
type SecurityCatalog struct {
	Systems           []*security.SecuritySystem
	NationalProviders []security.CoverageProvider
}

// Tariffs parses the embedded tariff catalog
func Tariffs() (*TariffCatalog, error) {
	return ParseTariffs(bytes.NewReader(catalogYAML))
}

// Security parses the embedded security catalog
func Security() (*SecurityCatalog, error) {
	return ParseSecurity(bytes.NewReader(securityYAML))
}

// ParseTariffs reads a tariff catalog from YAML and validates every entry.
// Each call assigns fresh IDs.
func ParseTariffs(r io.Reader) (*TariffCatalog, error) {
	var yc yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&yc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	now := time.Now().UTC()
	catalog := &TariffCatalog{
		Electricity: make([]*tariffs.ElectricityTariff, 0, len(yc.Electricity)),
		Internet:    make([]*tariffs.InternetTariff, 0, len(yc.Internet)),
	}

	for _, ye := range yc.Electricity {
		tariff := &tariffs.ElectricityTariff{
			ID:               uuid.NewString(),
			Provider:         ye.Provider,
			Name:             ye.Name,
			FixedRate:        ye.FixedRate,
			FlatRate:         ye.FlatRate,
			PeakRate:         ye.PeakRate,
			OffPeakRate:      ye.OffPeakRate,
			DiscountPercent:  ye.DiscountPercent,
			PermanenceMonths: ye.PermanenceMonths,
			GreenEnergy:      ye.GreenEnergy,
			DateTimeCreated:  now,
		}
		if err := tariff.Validate(); err != nil {
			return nil, fmt.Errorf("electricity tariff %s/%s: %w", ye.Provider, ye.Name, err)
		}
		catalog.Electricity = append(catalog.Electricity, tariff)
	}

	for _, yi := range yc.Internet {
		tariff := &tariffs.InternetTariff{
			ID:               uuid.NewString(),
			Provider:         yi.Provider,
			Name:             yi.Name,
			Type:             yi.Type,
			SpeedMbps:        yi.SpeedMbps,
			MobileDataGB:     yi.MobileDataGB,
			UnlimitedData:    yi.UnlimitedData,
			MonthlyPrice:     yi.MonthlyPrice,
			PromoPrice:       yi.PromoPrice,
			PromoMonths:      yi.PromoMonths,
			PermanenceMonths: yi.PermanenceMonths,
			DateTimeCreated:  now,
		}
		if err := tariff.Validate(); err != nil {
			return nil, fmt.Errorf("internet tariff %s/%s: %w", yi.Provider, yi.Name, err)
		}
		catalog.Internet = append(catalog.Internet, tariff)
	}

	return catalog, nil
}

// ParseSecurity reads a security catalog from YAML and validates every entry
func ParseSecurity(r io.Reader) (*SecurityCatalog, error) {
	var ys yamlSecurity
	if err := yaml.NewDecoder(r).Decode(&ys); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	now := time.Now().UTC()
	catalog := &SecurityCatalog{
		Systems:           make([]*security.SecuritySystem, 0, len(ys.Systems)),
		NationalProviders: make([]security.CoverageProvider, 0, len(ys.NationalProviders)),
	}

	for _, s := range ys.Systems {
		system := &security.SecuritySystem{
			ID:                uuid.NewString(),
			Provider:          s.Provider,
			Name:              s.Name,
			Type:              s.Type,
			InstallationPrice: s.InstallationPrice,
			MonthlyFee:        s.MonthlyFee,
			Features:          s.Features,
			Rating:            s.Rating,
			DateTimeCreated:   now,
		}
		if err := system.Validate(); err != nil {
			return nil, fmt.Errorf("security system %s/%s: %w", s.Provider, s.Name, err)
		}
		catalog.Systems = append(catalog.Systems, system)
	}

	for _, p := range ys.NationalProviders {
		catalog.NationalProviders = append(catalog.NationalProviders, security.CoverageProvider{
			Name:             p.Name,
			Available:        true,
			InstallationDays: p.InstallationDays,
		})
	}

	return catalog, nil
}
