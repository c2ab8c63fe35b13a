package response

import (
	"time"

	"smakownia-backend/internal/domain/catalog"
	"smakownia-backend/internal/domain/masterclass"
	"smakownia-backend/internal/domain/product"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type LocalizedText struct {
	PL string `json:"pl"`
	EN string `json:"en"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type MasterclassResponse struct {
	ID             string          `json:"id"`
	Title          LocalizedText   `json:"title"`
	Description    LocalizedText   `json:"description"`
	Location       LocalizedText   `json:"location"`
	Date           time.Time       `json:"date"`
	DateEnd        *time.Time      `json:"dateEnd,omitempty"`
	DateType       string          `json:"dateType"`
	FormattedDate  string          `json:"formattedDate"`
	City           string          `json:"city"`
	HourStart      string          `json:"hourStart,omitempty"`
	HourEnd        string          `json:"hourEnd,omitempty"`
	Price          decimal.Decimal `json:"price"`
	AvailableSlots int             `json:"availableSlots"`
	PickedSlots    int             `json:"pickedSlots"`
	SoldOut        bool            `json:"soldOut"`
	FAQsPL         []FAQ           `json:"faqsPl,omitempty"`
	FAQsEN         []FAQ           `json:"faqsEn,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromMasterclass(m *masterclass.Masterclass) *MasterclassResponse {
	var resp MasterclassResponse
	// Field-for-field copy of the flat attributes; the derived and nested
	// fields are filled in below.
	_ = copier.Copy(&resp, m)
	resp.DateType = string(m.DateType)
	resp.FormattedDate = m.FormattedDate()
	resp.SoldOut = m.AvailableSlots <= 0
	resp.FAQsPL = fromDomainFAQs(m.FAQs.PL)
	resp.FAQsEN = fromDomainFAQs(m.FAQs.EN)
	return &resp
}

func FromMasterclassList(list []*masterclass.Masterclass) []*MasterclassResponse {
	out := make([]*MasterclassResponse, len(list))
	for i, m := range list {
		out[i] = FromMasterclass(m)
	}
	return out
}

func fromDomainFAQs(faqs []masterclass.FAQ) []FAQ {
	if len(faqs) == 0 {
		return nil
	}
	out := make([]FAQ, len(faqs))
	for i, f := range faqs {
		out[i] = FAQ(f)
	}
	return out
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       LocalizedText   `json:"title"`
	Description LocalizedText   `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Photo       string          `json:"photo,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromProduct(p *product.OnlineProduct) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Type:        string(p.Type),
		Title:       LocalizedText(p.Title),
		Description: LocalizedText(p.Description),
		Price:       p.Price,
		Photo:       p.Photo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProductList(list []*product.OnlineProduct) []*ProductResponse {
	out := make([]*ProductResponse, len(list))
	for i, p := range list {
		out[i] = FromProduct(p)
	}
	return out
}

type PartnerResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Logo        string        `json:"logo,omitempty"`
	URL         string        `json:"url,omitempty"`
	Description LocalizedText `json:"description"`
}

func FromPartner(p *catalog.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:          p.ID,
		Name:        p.Name,
		Logo:        p.Logo,
		URL:         p.URL,
		Description: LocalizedText(p.Description),
	}
}

func FromPartnerList(list []*catalog.Partner) []*PartnerResponse {
	out := make([]*PartnerResponse, len(list))
	for i, p := range list {
		out[i] = FromPartner(p)
	}
	return out
}

type MapLocationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func FromLocation(l *catalog.MapLocation) *MapLocationResponse {
	return &MapLocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		City:      l.City,
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

func FromLocationList(list []*catalog.MapLocation) []*MapLocationResponse {
	out := make([]*MapLocationResponse, len(list))
	for i, l := range list {
		out[i] = FromLocation(l)
	}
	return out
}
