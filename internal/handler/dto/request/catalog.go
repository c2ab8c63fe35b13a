package request

import (
	"time"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/product"

	"github.com/shopspring/decimal"
)

type LocalizedText struct {
	PL string `json:"pl" binding:"required"`
	EN string `json:"en"`
}

type FAQ struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type MasterclassRequest struct {
	Title          LocalizedText   `json:"title" binding:"required"`
	Description    LocalizedText   `json:"description" binding:"required"`
	Location       LocalizedText   `json:"location" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	DateEnd        *time.Time      `json:"dateEnd,omitempty"`
	DateType       string          `json:"dateType" binding:"required,oneof=single range"`
	City           string          `json:"city" binding:"required"`
	HourStart      string          `json:"hourStart,omitempty"`
	HourEnd        string          `json:"hourEnd,omitempty"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	AvailableSlots int             `json:"availableSlots" binding:"min=0"`
	PickedSlots    int             `json:"pickedSlots" binding:"min=0"`
	FAQsPL         []FAQ           `json:"faqsPl,omitempty"`
	FAQsEN         []FAQ           `json:"faqsEn,omitempty"`
}

func (r MasterclassRequest) ToDomain(id string) (*masterclass.Masterclass, error) {
	dateType, err := masterclass.NewDateType(r.DateType)
	if err != nil {
		return nil, err
	}

	return &masterclass.Masterclass{
		ID:             id,
		Title:          masterclass.LocalizedText(r.Title),
		Description:    masterclass.LocalizedText(r.Description),
		Location:       masterclass.LocalizedText(r.Location),
		Date:           r.Date,
		DateEnd:        r.DateEnd,
		DateType:       dateType,
		City:           r.City,
		HourStart:      r.HourStart,
		HourEnd:        r.HourEnd,
		Price:          r.Price,
		AvailableSlots: r.AvailableSlots,
		PickedSlots:    r.PickedSlots,
		FAQs: masterclass.LocalizedFAQs{
			PL: toDomainFAQs(r.FAQsPL),
			EN: toDomainFAQs(r.FAQsEN),
		},
	}, nil
}

func toDomainFAQs(faqs []FAQ) []masterclass.FAQ {
	if len(faqs) == 0 {
		return nil
	}
	out := make([]masterclass.FAQ, len(faqs))
	for i, f := range faqs {
		out[i] = masterclass.FAQ(f)
	}
	return out
}

type ProductRequest struct {
	Type        string          `json:"type" binding:"required,oneof=course consultation recipe"`
	Title       LocalizedText   `json:"title" binding:"required"`
	Description LocalizedText   `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Photo       string          `json:"photo,omitempty"`
}

func (r ProductRequest) ToDomain(id string) (*product.OnlineProduct, error) {
	typ, err := product.NewType(r.Type)
	if err != nil {
		return nil, err
	}

	return &product.OnlineProduct{
		ID:          id,
		Type:        typ,
		Title:       masterclass.LocalizedText(r.Title),
		Description: masterclass.LocalizedText(r.Description),
		Price:       r.Price,
		Photo:       r.Photo,
	}, nil
}

type PartnerRequest struct {
	Name        string        `json:"name" binding:"required"`
	Logo        string        `json:"logo,omitempty"`
	URL         string        `json:"url,omitempty" binding:"omitempty,url"`
	Description LocalizedText `json:"description,omitempty"`
}

func (r PartnerRequest) ToDomain(id string) *catalog.Partner {
	return &catalog.Partner{
		ID:          id,
		Name:        r.Name,
		Logo:        r.Logo,
		URL:         r.URL,
		Description: masterclass.LocalizedText(r.Description),
	}
}

type MapLocationRequest struct {
	Name      string  `json:"name" binding:"required"`
	City      string  `json:"city" binding:"required"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude" binding:"required,latitude"`
	Longitude float64 `json:"longitude" binding:"required,longitude"`
}

func (r MapLocationRequest) ToDomain(id string) *catalog.MapLocation {
	return &catalog.MapLocation{
		ID:        id,
		Name:      r.Name,
		City:      r.City,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}
