package masterclass

import (
	"errors"
	"time"
)

var ErrInvalidDateType = errors.New("invalid date type")

// LocalizedText is a pl/en string pair. The site is bilingual and every
// human-readable catalog field is stored in both locales.
type LocalizedText struct {
	PL string `json:"pl"`
	EN string `json:"en"`
}

func (t LocalizedText) ForLocale(locale string) string {
	if locale == "en" && t.EN != "" {
		return t.EN
	}
	return t.PL
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type LocalizedFAQs struct {
	PL []FAQ `json:"pl"`
	EN []FAQ `json:"en"`
}

type DateType string

const (
	DateSingle DateType = "single"
	DateRange  DateType = "range"
)

func NewDateType(s string) (DateType, error) {
	switch DateType(s) {
	case DateSingle, DateRange:
		return DateType(s), nil
	default:
		return "", ErrInvalidDateType
	}
}

const dateLayout = "02.01.2006"

// FormatDate renders a workshop date the way the confirmation emails and the
// gateway statement show it: a single day or a day range.
func FormatDate(dateType DateType, date time.Time, dateEnd *time.Time) string {
	if dateType == DateRange && dateEnd != nil {
		return date.Format(dateLayout) + " - " + dateEnd.Format(dateLayout)
	}
	return date.Format(dateLayout)
}
