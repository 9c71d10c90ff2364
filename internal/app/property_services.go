package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// propertyService implements the PropertyService interface
type propertyService struct {
	propertyRepo properties.PropertyRepository
	logger       logger.Logger
}

// NewPropertyService creates a new propertyService instance
func NewPropertyService(propertyRepo properties.PropertyRepository, logger logger.Logger) (properties.PropertyService, error) {
	return &propertyService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}, nil
}

func (s *propertyService) Create(ctx context.Context, ownerID string, property *properties.Property) (*properties.Property, error) {
	property.ID = uuid.New().String()
	property.OwnerID = ownerID
	property.DateTimeCreated = time.Now().UTC()

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

func (s *propertyService) Search(ctx context.Context, query *properties.PropertyQuery) ([]*properties.Property, error) {
	list, err := s.propertyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return list, nil
}

func (s *propertyService) GetByID(ctx context.Context, propertyID string) (*properties.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (s *propertyService) DeleteByID(ctx context.Context, propertyID, userID string) error {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to get property: %w", err)
	}
	if property.OwnerID != userID {
		return fmt.Errorf("property %s: %w", propertyID, domain.ErrForbidden)
	}

	if err := s.propertyRepo.DeleteByID(ctx, propertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	s.logger.Info("Deleted property ", propertyID)
	return nil
}
