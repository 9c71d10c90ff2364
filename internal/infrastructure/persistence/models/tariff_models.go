package models

import (
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
)

// ElectricityTariffModel is the GORM database model for electricity tariffs
type ElectricityTariffModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	Provider         string    `gorm:"not null;index;type:varchar(100)"`
	Name             string    `gorm:"not null;type:varchar(150)"`
	FixedRate        float64   `gorm:"not null"`
	FlatRate         *float64
	PeakRate         *float64
	OffPeakRate      *float64
	DiscountPercent  *float64
	PermanenceMonths int       `gorm:"not null;default:0"`
	GreenEnergy      bool      `gorm:"not null;default:false;index"`
	DateTimeCreated  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ElectricityTariffModel) TableName() string {
	return "electricity_tariffs"
}

// ToDomain converts GORM model to domain entity
func (m *ElectricityTariffModel) ToDomain() *tariffs.ElectricityTariff {
	return &tariffs.ElectricityTariff{
		ID:               m.ID,
		Provider:         m.Provider,
		Name:             m.Name,
		FixedRate:        m.FixedRate,
		FlatRate:         m.FlatRate,
		PeakRate:         m.PeakRate,
		OffPeakRate:      m.OffPeakRate,
		DiscountPercent:  m.DiscountPercent,
		PermanenceMonths: m.PermanenceMonths,
		GreenEnergy:      m.GreenEnergy,
		DateTimeCreated:  m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ElectricityTariffModel) FromDomain(t *tariffs.ElectricityTariff) {
	m.ID = t.ID
	m.Provider = t.Provider
	m.Name = t.Name
	m.FixedRate = t.FixedRate
	m.FlatRate = t.FlatRate
	m.PeakRate = t.PeakRate
	m.OffPeakRate = t.OffPeakRate
	m.DiscountPercent = t.DiscountPercent
	m.PermanenceMonths = t.PermanenceMonths
	m.GreenEnergy = t.GreenEnergy
	m.DateTimeCreated = t.DateTimeCreated
}

// InternetTariffModel is the GORM database model for internet tariffs
type InternetTariffModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	Provider         string    `gorm:"not null;index;type:varchar(100)"`
	Name             string    `gorm:"not null;type:varchar(150)"`
	Type             string    `gorm:"not null;index;type:varchar(20)"`
	SpeedMbps        int       `gorm:"not null;default:0"`
	MobileDataGB     int       `gorm:"not null;default:0"`
	UnlimitedData    bool      `gorm:"not null;default:false"`
	MonthlyPrice     float64   `gorm:"not null"`
	PromoPrice       *float64
	PromoMonths      int       `gorm:"not null;default:0"`
	PermanenceMonths int       `gorm:"not null;default:0"`
	DateTimeCreated  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (InternetTariffModel) TableName() string {
	return "internet_tariffs"
}

// ToDomain converts GORM model to domain entity
func (m *InternetTariffModel) ToDomain() *tariffs.InternetTariff {
	return &tariffs.InternetTariff{
		ID:               m.ID,
		Provider:         m.Provider,
		Name:             m.Name,
		Type:             m.Type,
		SpeedMbps:        m.SpeedMbps,
		MobileDataGB:     m.MobileDataGB,
		UnlimitedData:    m.UnlimitedData,
		MonthlyPrice:     m.MonthlyPrice,
		PromoPrice:       m.PromoPrice,
		PromoMonths:      m.PromoMonths,
		PermanenceMonths: m.PermanenceMonths,
		DateTimeCreated:  m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *InternetTariffModel) FromDomain(t *tariffs.InternetTariff) {
	m.ID = t.ID
	m.Provider = t.Provider
	m.Name = t.Name
	m.Type = t.Type
	m.SpeedMbps = t.SpeedMbps
	m.MobileDataGB = t.MobileDataGB
	m.UnlimitedData = t.UnlimitedData
	m.MonthlyPrice = t.MonthlyPrice
	m.PromoPrice = t.PromoPrice
	m.PromoMonths = t.PromoMonths
	m.PermanenceMonths = t.PermanenceMonths
	m.DateTimeCreated = t.DateTimeCreated
}
