package product

import (
	"errors"
	"time"

	"smakownia-backend/internal/domain/masterclass"

	"github.com/shopspring/decimal"
)

var ErrInvalidProductType = errors.New("invalid product type")

type Type string

const (
	TypeCourse       Type = "course"
	TypeConsultation Type = "consultation"
	TypeRecipe       Type = "recipe"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeCourse, TypeConsultation, TypeRecipe:
		return Type(s), nil
	default:
		return "", ErrInvalidProductType
	}
}

// OnlineProduct is a digital catalog item: a video course, a consultation or
// a recipe pack. Purchases have no inventory effect.
type OnlineProduct struct {
	ID          string
	Type        Type
	Title       masterclass.LocalizedText
	Description masterclass.LocalizedText
	Price       decimal.Decimal
	Photo       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
