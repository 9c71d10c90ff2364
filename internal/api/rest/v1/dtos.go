package v1

import (
	"fmt"
	"time"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/blog"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/forum"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/indicators"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/news"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/properties"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/security"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/tariffs"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/validators"
)

// ErrorResponse is returned with every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain confirmation message
type InfoResponse struct {
	Message string `json:"message"`
}

func validate(v interface{}) error {
	if err := validators.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ElectricityTariffRequest creates an electricity tariff or prices one inline
type ElectricityTariffRequest struct {
	Provider         string   `json:"provider" validate:"required,min=1,max=100"`
	Name             string   `json:"name" validate:"required,min=1,max=150"`
	FixedRate        float64  `json:"fixed_rate" validate:"gte=0"`
	FlatRate         *float64 `json:"flat_rate" validate:"omitempty,gte=0"`
	PeakRate         *float64 `json:"peak_rate" validate:"omitempty,gte=0"`
	OffPeakRate      *float64 `json:"off_peak_rate" validate:"omitempty,gte=0"`
	DiscountPercent  *float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	PermanenceMonths int      `json:"permanence_months" validate:"gte=0,lte=36"`
	GreenEnergy      bool     `json:"green_energy"`
}

// Validate for validating ElectricityTariffRequest struct
func (r *ElectricityTariffRequest) Validate() error {
	return validate(r)
}

// ToDomain converts the request into an entity without ID
func (r *ElectricityTariffRequest) ToDomain() *tariffs.ElectricityTariff {
	return &tariffs.ElectricityTariff{
		Provider:         r.Provider,
		Name:             r.Name,
		FixedRate:        r.FixedRate,
		FlatRate:         r.FlatRate,
		PeakRate:         r.PeakRate,
		OffPeakRate:      r.OffPeakRate,
		DiscountPercent:  r.DiscountPercent,
		PermanenceMonths: r.PermanenceMonths,
		GreenEnergy:      r.GreenEnergy,
	}
}

// ElectricityTariffResponse represents a stored electricity tariff
type ElectricityTariffResponse struct {
	ID                 string    `json:"id"`
	Provider           string    `json:"provider"`
	Name               string    `json:"name"`
	FixedRate          float64   `json:"fixed_rate"`
	FlatRate           *float64  `json:"flat_rate,omitempty"`
	PeakRate           *float64  `json:"peak_rate,omitempty"`
	OffPeakRate        *float64  `json:"off_peak_rate,omitempty"`
	DiscountPercent    *float64  `json:"discount_percent,omitempty"`
	PermanenceMonths   int       `json:"permanence_months"`
	GreenEnergy        bool      `json:"green_energy"`
	TimeDiscrimination bool      `json:"time_discrimination"`
	DateTimeCreated    time.Time `json:"date_time_created"`
}

func newElectricityTariffResponse(t *tariffs.ElectricityTariff) ElectricityTariffResponse {
	return ElectricityTariffResponse{
		ID:                 t.ID,
		Provider:           t.Provider,
		Name:               t.Name,
		FixedRate:          t.FixedRate,
		FlatRate:           t.FlatRate,
		PeakRate:           t.PeakRate,
		OffPeakRate:        t.OffPeakRate,
		DiscountPercent:    t.DiscountPercent,
		PermanenceMonths:   t.PermanenceMonths,
		GreenEnergy:        t.GreenEnergy,
		TimeDiscrimination: t.HasTimeDiscrimination(),
		DateTimeCreated:    t.DateTimeCreated,
	}
}

// InternetTariffRequest creates an internet tariff
type InternetTariffRequest struct {
	Provider         string   `json:"provider" validate:"required,min=1,max=100"`
	Name             string   `json:"name" validate:"required,min=1,max=150"`
	Type             string   `json:"type" validate:"required,oneof=fibra movil fibra_movil adsl"`
	SpeedMbps        int      `json:"speed_mbps" validate:"gte=0,lte=100000"`
	MobileDataGB     int      `json:"mobile_data_gb" validate:"gte=0"`
	UnlimitedData    bool     `json:"unlimited_data"`
	MonthlyPrice     float64  `json:"monthly_price" validate:"gt=0"`
	PromoPrice       *float64 `json:"promo_price" validate:"omitempty,gte=0"`
	PromoMonths      int      `json:"promo_months" validate:"gte=0,lte=24"`
	PermanenceMonths int      `json:"permanence_months" validate:"gte=0,lte=36"`
}

// Validate for validating InternetTariffRequest struct
func (r *InternetTariffRequest) Validate() error {
	return validate(r)
}

// ToDomain converts the request into an entity without ID
func (r *InternetTariffRequest) ToDomain() *tariffs.InternetTariff {
	return &tariffs.InternetTariff{
		Provider:         r.Provider,
		Name:             r.Name,
		Type:             r.Type,
		SpeedMbps:        r.SpeedMbps,
		MobileDataGB:     r.MobileDataGB,
		UnlimitedData:    r.UnlimitedData,
		MonthlyPrice:     r.MonthlyPrice,
		PromoPrice:       r.PromoPrice,
		PromoMonths:      r.PromoMonths,
		PermanenceMonths: r.PermanenceMonths,
	}
}

// InternetTariffResponse represents a stored internet tariff
type InternetTariffResponse struct {
	ID               string    `json:"id"`
	Provider         string    `json:"provider"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	SpeedMbps        int       `json:"speed_mbps"`
	MobileDataGB     int       `json:"mobile_data_gb"`
	UnlimitedData    bool      `json:"unlimited_data"`
	MonthlyPrice     float64   `json:"monthly_price"`
	PromoPrice       *float64  `json:"promo_price,omitempty"`
	PromoMonths      int       `json:"promo_months"`
	PermanenceMonths int       `json:"permanence_months"`
	DateTimeCreated  time.Time `json:"date_time_created"`
}

func newInternetTariffResponse(t *tariffs.InternetTariff) InternetTariffResponse {
	return InternetTariffResponse{
		ID:               t.ID,
		Provider:         t.Provider,
		Name:             t.Name,
		Type:             t.Type,
		SpeedMbps:        t.SpeedMbps,
		MobileDataGB:     t.MobileDataGB,
		UnlimitedData:    t.UnlimitedData,
		MonthlyPrice:     t.MonthlyPrice,
		PromoPrice:       t.PromoPrice,
		PromoMonths:      t.PromoMonths,
		PermanenceMonths: t.PermanenceMonths,
		DateTimeCreated:  t.DateTimeCreated,
	}
}

// UsageRequest describes a household's monthly electricity usage
type UsageRequest struct {
	ContractedPowerKW     float64  `json:"contracted_power_kw" validate:"gt=0,lte=100"`
	MonthlyConsumptionKWh float64  `json:"monthly_consumption_kwh" validate:"gte=0,lte=100000"`
	PeakSharePercent      *float64 `json:"peak_share_percent" validate:"omitempty,gte=0,lte=100"`
}

func (u UsageRequest) toDomain() tariffs.ElectricityUsage {
	return tariffs.ElectricityUsage{
		ContractedPowerKW:     u.ContractedPowerKW,
		MonthlyConsumptionKWh: u.MonthlyConsumptionKWh,
		PeakSharePercent:      u.PeakSharePercent,
	}
}

// ElectricityComparisonRequest ranks the stored electricity catalog
type ElectricityComparisonRequest struct {
	UsageRequest
	CurrentMonthlyBill *float64 `json:"current_monthly_bill" validate:"omitempty,gte=0"`
	TimeDiscrimination *bool    `json:"time_discrimination"`
	GreenOnly          bool     `json:"green_only"`
	Limit              int      `json:"limit" validate:"gte=0,lte=100"`
}

// Validate for validating ElectricityComparisonRequest struct
func (r *ElectricityComparisonRequest) Validate() error {
	return validate(r)
}

// ToDomain converts the request for the comparator
func (r *ElectricityComparisonRequest) ToDomain() tariffs.ElectricityComparisonRequest {
	return tariffs.ElectricityComparisonRequest{
		Usage:              r.UsageRequest.toDomain(),
		CurrentMonthlyBill: r.CurrentMonthlyBill,
		TimeDiscrimination: r.TimeDiscrimination,
		GreenOnly:          r.GreenOnly,
		Limit:              r.Limit,
	}
}

// CostRequest prices an inline tariff for a usage
type CostRequest struct {
	Tariff ElectricityTariffRequest `json:"tariff"`
	Usage  UsageRequest             `json:"usage"`
}

// Validate for validating CostRequest struct
func (r *CostRequest) Validate() error {
	return validate(r)
}

// CostBreakdownResponse is the monthly bill of a tariff
type CostBreakdownResponse struct {
	FixedTerm      float64 `json:"fixed_term"`
	EnergyTerm     float64 `json:"energy_term"`
	Discount       float64 `json:"discount"`
	ElectricityTax float64 `json:"electricity_tax"`
	VAT            float64 `json:"vat"`
	Total          float64 `json:"total"`
}

func newCostBreakdownResponse(c tariffs.CostBreakdown) CostBreakdownResponse {
	return CostBreakdownResponse{
		FixedTerm:      c.FixedTerm,
		EnergyTerm:     c.EnergyTerm,
		Discount:       c.Discount,
		ElectricityTax: c.ElectricityTax,
		VAT:            c.VAT,
		Total:          c.Total,
	}
}

// ElectricityQuoteResponse is one ranked electricity tariff
type ElectricityQuoteResponse struct {
	Tariff         ElectricityTariffResponse `json:"tariff"`
	Cost           CostBreakdownResponse     `json:"cost"`
	MonthlySavings *float64                  `json:"monthly_savings,omitempty"`
	AnnualSavings  *float64                  `json:"annual_savings,omitempty"`
}

func newElectricityQuoteResponses(quotes []tariffs.ElectricityQuote) []ElectricityQuoteResponse {
	resp := make([]ElectricityQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, ElectricityQuoteResponse{
			Tariff:         newElectricityTariffResponse(q.Tariff),
			Cost:           newCostBreakdownResponse(q.Cost),
			MonthlySavings: q.MonthlySavings,
			AnnualSavings:  q.AnnualSavings,
		})
	}
	return resp
}

// InternetComparisonRequest ranks the stored internet catalog
type InternetComparisonRequest struct {
	Type                string   `json:"type" validate:"omitempty,oneof=fibra movil fibra_movil adsl"`
	MinSpeedMbps        int      `json:"min_speed_mbps" validate:"gte=0"`
	MaxPrice            float64  `json:"max_price" validate:"gte=0"`
	SortBy              string   `json:"sort_by" validate:"omitempty,oneof=price speed"`
	CurrentMonthlyPrice *float64 `json:"current_monthly_price" validate:"omitempty,gte=0"`
	Limit               int      `json:"limit" validate:"gte=0,lte=100"`
}

// Validate for validating InternetComparisonRequest struct
func (r *InternetComparisonRequest) Validate() error {
	return validate(r)
}

// ToDomain converts the request for the comparator
func (r *InternetComparisonRequest) ToDomain() tariffs.InternetComparisonRequest {
	return tariffs.InternetComparisonRequest{
		Type:                r.Type,
		MinSpeedMbps:        r.MinSpeedMbps,
		MaxPrice:            r.MaxPrice,
		SortBy:              r.SortBy,
		CurrentMonthlyPrice: r.CurrentMonthlyPrice,
		Limit:               r.Limit,
	}
}

// InternetQuoteResponse is one ranked internet tariff
type InternetQuoteResponse struct {
	Tariff         InternetTariffResponse `json:"tariff"`
	EffectivePrice float64                `json:"effective_price"`
	FirstYearCost  float64                `json:"first_year_cost"`
	AnnualSavings  *float64               `json:"annual_savings,omitempty"`
}

func newInternetQuoteResponses(quotes []tariffs.InternetQuote) []InternetQuoteResponse {
	resp := make([]InternetQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		resp = append(resp, InternetQuoteResponse{
			Tariff:         newInternetTariffResponse(q.Tariff),
			EffectivePrice: q.EffectivePrice,
			FirstYearCost:  q.FirstYearCost,
			AnnualSavings:  q.AnnualSavings,
		})
	}
	return resp
}

// SavingsRequest compares the current and a new monthly bill
type SavingsRequest struct {
	CurrentMonthlyCost float64 `json:"current_monthly_cost" validate:"gte=0"`
	NewMonthlyCost     float64 `json:"new_monthly_cost" validate:"gte=0"`
}

// Validate for validating SavingsRequest struct
func (r *SavingsRequest) Validate() error {
	return validate(r)
}

// SavingsResponse reports monthly and yearly savings
type SavingsResponse struct {
	MonthlySavings float64 `json:"monthly_savings"`
	AnnualSavings  float64 `json:"annual_savings"`
}

// HourlyPriceResponse is the price of one hour
type HourlyPriceResponse struct {
	Hour     int     `json:"hour"`
	PriceKWh float64 `json:"price_kwh"`
}

// DailyPricesResponse lists the grid prices of a day
type DailyPricesResponse struct {
	Date          string                `json:"date"`
	Hours         []HourlyPriceResponse `json:"hours"`
	Average       float64               `json:"average"`
	Cheapest      HourlyPriceResponse   `json:"cheapest"`
	MostExpensive HourlyPriceResponse   `json:"most_expensive"`
}

func newDailyPricesResponse(d *indicators.DailyPrices) DailyPricesResponse {
	hours := make([]HourlyPriceResponse, 0, len(d.Hours))
	for _, h := range d.Hours {
		hours = append(hours, HourlyPriceResponse(h))
	}
	return DailyPricesResponse{
		Date:          d.Date.Format(time.DateOnly),
		Hours:         hours,
		Average:       d.Average,
		Cheapest:      HourlyPriceResponse(d.Cheapest),
		MostExpensive: HourlyPriceResponse(d.MostExpensive),
	}
}

// ProviderSpeedResponse is the measured speed of one provider
type ProviderSpeedResponse struct {
	Provider     string  `json:"provider"`
	DownloadMbps float64 `json:"download_mbps"`
	UploadMbps   float64 `json:"upload_mbps"`
	Samples      int     `json:"samples"`
}

// SpeedReportResponse lists provider speeds in a postal code
type SpeedReportResponse struct {
	PostalCode string                  `json:"postal_code"`
	Providers  []ProviderSpeedResponse `json:"providers"`
}

func newSpeedReportResponse(r *indicators.SpeedReport) SpeedReportResponse {
	providers := make([]ProviderSpeedResponse, 0, len(r.Providers))
	for _, p := range r.Providers {
		providers = append(providers, ProviderSpeedResponse(p))
	}
	return SpeedReportResponse{PostalCode: r.PostalCode, Providers: providers}
}

// NewsItemResponse represents a stored news item
type NewsItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
}

func newNewsItemResponse(n *news.NewsItem) NewsItemResponse {
	return NewsItemResponse{
		ID:          n.ID,
		Title:       n.Title,
		Summary:     n.Summary,
		URL:         n.URL,
		ImageURL:    n.ImageURL,
		Source:      n.Source,
		Category:    n.Category,
		PublishedAt: n.PublishedAt,
	}
}

// AggregationResponse summarizes an aggregation run
type AggregationResponse struct {
	Fetched          int      `json:"fetched"`
	Stored           int      `json:"stored"`
	Duplicates       int      `json:"duplicates"`
	FailedCategories []string `json:"failed_categories"`
}

// BlogPostRequest publishes a blog post
type BlogPostRequest struct {
	Title   string   `json:"title" validate:"required,min=1,max=200"`
	Slug    string   `json:"slug" validate:"omitempty,max=200"`
	Summary string   `json:"summary" validate:"max=500"`
	Content string   `json:"content" validate:"required,min=1"`
	Tags    []string `json:"tags" validate:"max=10,dive,min=1,max=40"`
}

// Validate for validating BlogPostRequest struct
func (r *BlogPostRequest) Validate() error {
	return validate(r)
}

// BlogPostResponse represents a published blog post
type BlogPostResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"published_at"`
}

func newBlogPostResponse(p *blog.BlogPost) BlogPostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogPostResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Summary:     p.Summary,
		Content:     p.Content,
		AuthorID:    p.AuthorID,
		Tags:        tags,
		PublishedAt: p.PublishedAt,
	}
}

// ForumPostRequest opens a forum thread
type ForumPostRequest struct {
	Category string `json:"category" validate:"omitempty,oneof=luz internet inmuebles seguridad general"`
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Content  string `json:"content" validate:"required,min=1,max=10000"`
}

// Validate for validating ForumPostRequest struct
func (r *ForumPostRequest) Validate() error {
	return validate(r)
}

// ForumReplyRequest answers a forum thread
type ForumReplyRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}

// Validate for validating ForumReplyRequest struct
func (r *ForumReplyRequest) Validate() error {
	return validate(r)
}

// ForumPostResponse represents a forum post
type ForumPostResponse struct {
	ID              string    `json:"id"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	ReplyCount      int       `json:"reply_count"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newForumPostResponse(p *forum.ForumPost) ForumPostResponse {
	return ForumPostResponse{
		ID:              p.ID,
		AuthorID:        p.AuthorID,
		AuthorName:      p.AuthorName,
		Category:        p.Category,
		Title:           p.Title,
		Content:         p.Content,
		ReplyCount:      p.ReplyCount,
		DateTimeCreated: p.DateTimeCreated,
	}
}

// ForumReplyResponse represents a reply
type ForumReplyResponse struct {
	ID              string    `json:"id"`
	PostID          string    `json:"post_id"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name"`
	Content         string    `json:"content"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newForumReplyResponse(r *forum.ForumReply) ForumReplyResponse {
	return ForumReplyResponse{
		ID:              r.ID,
		PostID:          r.PostID,
		AuthorID:        r.AuthorID,
		AuthorName:      r.AuthorName,
		Content:         r.Content,
		DateTimeCreated: r.DateTimeCreated,
	}
}

// ThreadResponse is a post with its replies
type ThreadResponse struct {
	Post    ForumPostResponse    `json:"post"`
	Replies []ForumReplyResponse `json:"replies"`
}

// PropertyRequest publishes a listing
type PropertyRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"max=5000"`
	Operation    string  `json:"operation" validate:"required,oneof=venta alquiler"`
	PropertyType string  `json:"property_type" validate:"required,oneof=piso casa chalet local oficina garaje"`
	Price        float64 `json:"price" validate:"gt=0"`
	AreaM2       float64 `json:"area_m2" validate:"gt=0,lte=100000"`
	Rooms        int     `json:"rooms" validate:"gte=0,lte=50"`
	Bathrooms    int     `json:"bathrooms" validate:"gte=0,lte=20"`
	PostalCode   string  `json:"postal_code" validate:"required,postalcode"`
	City         string  `json:"city" validate:"required,min=1,max=100"`
	EnergyRating string  `json:"energy_rating" validate:"omitempty,oneof=A B C D E F G"`
}

// Validate for validating PropertyRequest struct
func (r *PropertyRequest) Validate() error {
	return validate(r)
}

// ToDomain converts the request into an entity without ID and owner
func (r *PropertyRequest) ToDomain() *properties.Property {
	return &properties.Property{
		Title:        r.Title,
		Description:  r.Description,
		Operation:    r.Operation,
		PropertyType: r.PropertyType,
		Price:        r.Price,
		AreaM2:       r.AreaM2,
		Rooms:        r.Rooms,
		Bathrooms:    r.Bathrooms,
		PostalCode:   r.PostalCode,
		City:         r.City,
		EnergyRating: r.EnergyRating,
	}
}

// PropertyResponse represents a listing
type PropertyResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Operation       string    `json:"operation"`
	PropertyType    string    `json:"property_type"`
	Price           float64   `json:"price"`
	PricePerM2      float64   `json:"price_per_m2"`
	AreaM2          float64   `json:"area_m2"`
	Rooms           int       `json:"rooms"`
	Bathrooms       int       `json:"bathrooms"`
	PostalCode      string    `json:"postal_code"`
	City            string    `json:"city"`
	EnergyRating    string    `json:"energy_rating,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newPropertyResponse(p *properties.Property) PropertyResponse {
	return PropertyResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		Description:     p.Description,
		Operation:       p.Operation,
		PropertyType:    p.PropertyType,
		Price:           p.Price,
		PricePerM2:      p.PricePerM2(),
		AreaM2:          p.AreaM2,
		Rooms:           p.Rooms,
		Bathrooms:       p.Bathrooms,
		PostalCode:      p.PostalCode,
		City:            p.City,
		EnergyRating:    p.EnergyRating,
		DateTimeCreated: p.DateTimeCreated,
	}
}

// SecuritySystemResponse represents an alarm or camera offer
type SecuritySystemResponse struct {
	ID                string   `json:"id"`
	Provider          string   `json:"provider"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	InstallationPrice float64  `json:"installation_price"`
	MonthlyFee        float64  `json:"monthly_fee"`
	Features          []string `json:"features"`
	Rating            float64  `json:"rating"`
}

func newSecuritySystemResponse(s *security.SecuritySystem) SecuritySystemResponse {
	features := s.Features
	if features == nil {
		features = []string{}
	}
	return SecuritySystemResponse{
		ID:                s.ID,
		Provider:          s.Provider,
		Name:              s.Name,
		Type:              s.Type,
		InstallationPrice: s.InstallationPrice,
		MonthlyFee:        s.MonthlyFee,
		Features:          features,
		Rating:            s.Rating,
	}
}

// CoverageProviderResponse is one provider in a coverage answer
type CoverageProviderResponse struct {
	Name             string `json:"name"`
	Available        bool   `json:"available"`
	InstallationDays int    `json:"installation_days"`
}

// CoverageResponse lists providers serving a postal code
type CoverageResponse struct {
	PostalCode string                     `json:"postal_code"`
	Providers  []CoverageProviderResponse `json:"providers"`
	Source     string                     `json:"source"`
}

func newCoverageResponse(c *security.Coverage) CoverageResponse {
	providers := make([]CoverageProviderResponse, 0, len(c.Providers))
	for _, p := range c.Providers {
		providers = append(providers, CoverageProviderResponse(p))
	}
	return CoverageResponse{PostalCode: c.PostalCode, Providers: providers, Source: c.Source}
}

// SyncResponse reports a catalog synchronization
type SyncResponse struct {
	Count  int    `json:"count"`
	Source string `json:"source"`
}

// RegisterRequest creates an account
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	PostalCode  string `json:"postal_code"`
}

// ToDomain converts the request; validation happens in the auth service
func (r *RegisterRequest) ToDomain() *accounts.Registration {
	return &accounts.Registration{
		Email:       r.Email,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		PostalCode:  r.PostalCode,
	}
}

// LoginRequest opens a session
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validate(r)
}

// SessionResponse carries an issued bearer token
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProfileUpdateRequest changes the editable profile fields
type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	PostalCode  *string `json:"postal_code"`
	Phone       *string `json:"phone"`
	CUPS        *string `json:"cups"`
}

// ToDomain converts the request; validation happens in the profile service
func (r *ProfileUpdateRequest) ToDomain() *accounts.ProfileUpdate {
	return &accounts.ProfileUpdate{
		DisplayName: r.DisplayName,
		PostalCode:  r.PostalCode,
		Phone:       r.Phone,
		CUPS:        r.CUPS,
	}
}

// UserResponse represents a profile. The password hash is never exposed.
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	PostalCode      string    `json:"postal_code,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	CUPS            string    `json:"cups,omitempty"`
	HasAvatar       bool      `json:"has_avatar"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newUserResponse(u *accounts.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		PostalCode:      u.PostalCode,
		Phone:           u.Phone,
		CUPS:            u.CUPS,
		HasAvatar:       u.AvatarBlob != nil,
		DateTimeCreated: u.DateTimeCreated,
	}
}
