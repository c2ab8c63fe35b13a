package masterclass

import (
	"time"

	"github.com/shopspring/decimal"
)

// Masterclass is one bookable culinary workshop. availableSlots is remaining
// capacity, pickedSlots the running count of fulfilled bookings. The two are
// edited independently by an administrator, so their sum is not a fixed total.
type Masterclass struct {
	ID             string
	Title          LocalizedText
	Description    LocalizedText
	Location       LocalizedText
	Date           time.Time
	DateEnd        *time.Time
	DateType       DateType
	City           string
	HourStart      string
	HourEnd        string
	Price          decimal.Decimal
	AvailableSlots int
	PickedSlots    int
	FAQs           LocalizedFAQs
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FormattedDate renders the workshop date per its date type.
func (m *Masterclass) FormattedDate() string {
	return FormatDate(m.DateType, m.Date, m.DateEnd)
}

// TimeWindow returns the "HH:MM - HH:MM" window when both hours are known,
// otherwise an empty string.
func (m *Masterclass) TimeWindow() string {
	if m.HourStart == "" || m.HourEnd == "" {
		return ""
	}
	return m.HourStart + " - " + m.HourEnd
}
