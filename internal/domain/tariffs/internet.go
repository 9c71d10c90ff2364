package tariffs

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/utils"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// InternetTariff is a priced broadband and/or mobile plan
type InternetTariff struct {
	ID               string    `validate:"required,uuid4"`
	Provider         string    `validate:"required,min=1,max=100"`
	Name             string    `validate:"required,min=1,max=150"`
	Type             string    `validate:"required,oneof=fibra movil fibra_movil adsl"`
	SpeedMbps        int       `validate:"gte=0,lte=100000"`
	MobileDataGB     int       `validate:"gte=0"`
	UnlimitedData    bool
	MonthlyPrice     float64   `validate:"gt=0"`
	PromoPrice       *float64  `validate:"omitempty,gte=0"`
	PromoMonths      int       `validate:"gte=0,lte=24"`
	PermanenceMonths int       `validate:"gte=0,lte=36"`
	DateTimeCreated  time.Time `validate:"required"`
}

// Validate for validating InternetTariff struct
func (t *InternetTariff) Validate() error {
	if err := validators.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// EffectivePrice is the monthly price a new customer pays first
func (t *InternetTariff) EffectivePrice() float64 {
	if t.PromoPrice != nil && t.PromoMonths > 0 {
		return *t.PromoPrice
	}
	return t.MonthlyPrice
}

// FirstYearCost adds up the first twelve monthly payments, promotion included
func (t *InternetTariff) FirstYearCost() float64 {
	promoMonths := 0
	if t.PromoPrice != nil {
		promoMonths = min(t.PromoMonths, MonthsPerYear)
	}
	return utils.Round2(valueOr(t.PromoPrice)*float64(promoMonths) + t.MonthlyPrice*float64(MonthsPerYear-promoMonths))
}
