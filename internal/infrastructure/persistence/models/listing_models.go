package models

import (
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
)

// PropertyModel is the GORM database model for real-estate listings
type PropertyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	OwnerID         string    `gorm:"not null;index;type:uuid"`
	Title           string    `gorm:"not null;type:varchar(200)"`
	Description     string    `gorm:"type:text"`
	Operation       string    `gorm:"not null;index;type:varchar(10)"`
	PropertyType    string    `gorm:"not null;index;type:varchar(10)"`
	Price           float64   `gorm:"not null;index"`
	AreaM2          float64   `gorm:"not null"`
	Rooms           int       `gorm:"not null;default:0"`
	Bathrooms       int       `gorm:"not null;default:0"`
	PostalCode      string    `gorm:"not null;index;type:varchar(5)"`
	City            string    `gorm:"not null;index;type:varchar(100)"`
	EnergyRating    string    `gorm:"type:varchar(1)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts GORM model to domain entity
func (m *PropertyModel) ToDomain() *properties.Property {
	return &properties.Property{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description,
		Operation:       m.Operation,
		PropertyType:    m.PropertyType,
		Price:           m.Price,
		AreaM2:          m.AreaM2,
		Rooms:           m.Rooms,
		Bathrooms:       m.Bathrooms,
		PostalCode:      m.PostalCode,
		City:            m.City,
		EnergyRating:    m.EnergyRating,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PropertyModel) FromDomain(p *properties.Property) {
	m.ID = p.ID
	m.OwnerID = p.OwnerID
	m.Title = p.Title
	m.Description = p.Description
	m.Operation = p.Operation
	m.PropertyType = p.PropertyType
	m.Price = p.Price
	m.AreaM2 = p.AreaM2
	m.Rooms = p.Rooms
	m.Bathrooms = p.Bathrooms
	m.PostalCode = p.PostalCode
	m.City = p.City
	m.EnergyRating = p.EnergyRating
	m.DateTimeCreated = p.DateTimeCreated
}

// SecuritySystemModel is the GORM database model for the security catalog
type SecuritySystemModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	Provider          string    `gorm:"not null;index;type:varchar(100)"`
	Name              string    `gorm:"not null;type:varchar(150)"`
	Type              string    `gorm:"not null;index;type:varchar(10)"`
	InstallationPrice float64   `gorm:"not null"`
	MonthlyFee        float64   `gorm:"not null;index"`
	Features          []string  `gorm:"serializer:json;type:text"`
	Rating            float64   `gorm:"not null;default:0"`
	DateTimeCreated   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SecuritySystemModel) TableName() string {
	return "security_systems"
}

// ToDomain converts GORM model to domain entity
func (m *SecuritySystemModel) ToDomain() *security.SecuritySystem {
	return &security.SecuritySystem{
		ID:                m.ID,
		Provider:          m.Provider,
		Name:              m.Name,
		Type:              m.Type,
		InstallationPrice: m.InstallationPrice,
		MonthlyFee:        m.MonthlyFee,
		Features:          m.Features,
		Rating:            m.Rating,
		DateTimeCreated:   m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SecuritySystemModel) FromDomain(s *security.SecuritySystem) {
	m.ID = s.ID
	m.Provider = s.Provider
	m.Name = s.Name
	m.Type = s.Type
	m.InstallationPrice = s.InstallationPrice
	m.MonthlyFee = s.MonthlyFee
	m.Features = s.Features
	m.Rating = s.Rating
	m.DateTimeCreated = s.DateTimeCreated
}
