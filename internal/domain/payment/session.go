package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvoiceDataIncomplete = errors.New("invoice requested but company data incomplete")
	ErrInvalidConsent        = errors.New("invalid image consent value")
)

type ItemType string

const (
	ItemMasterclass   ItemType = "masterclass"
	ItemOnlineProduct ItemType = "online-product"
)

func (t ItemType) Valid() bool {
	return t == ItemMasterclass || t == ItemOnlineProduct
}

type ImageConsent string

const (
	ConsentAgree    ImageConsent = "agree"
	ConsentDisagree ImageConsent = "disagree"
	ConsentUnset    ImageConsent = ""
)

// Session carries buyer-submitted form data across the redirect to the
// gateway's hosted checkout, which does not round-trip arbitrary metadata.
// Created at initiation, consumed exactly once at confirmation. A retried
// payment always gets a brand-new Session with a brand-new ID.
type Session struct {
	ID             string
	ItemType       ItemType
	ItemID         string
	FullName       string
	Email          string
	Phone          string
	City           string
	ImageConsent   ImageConsent
	InvoiceNeeded  bool
	CompanyName    string
	NIP            string
	CompanyAddress string
	CreatedAt      time.Time
}

func (s *Session) Validate() error {
	switch s.ImageConsent {
	case ConsentAgree, ConsentDisagree, ConsentUnset:
	default:
		return ErrInvalidConsent
	}
	if s.InvoiceNeeded {
		if s.CompanyName == "" || s.NIP == "" || s.CompanyAddress == "" {
			return ErrInvoiceDataIncomplete
		}
	}
	return nil
}

// NewSessionID mints the opaque identifier correlating a purchase across the
// gateway redirect: {itemType}_{itemId}_{timestamp}. The timestamp is
// nanosecond-resolution so a retry always produces a fresh identity.
func NewSessionID(itemType ItemType, itemID string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%d", itemType, itemID, now.UnixNano())
}

// ExtractMasterclassID tolerates the item id arriving with a "masterclass-"
// prefix, which the storefront sometimes sends.
func ExtractMasterclassID(itemID string) string {
	return strings.TrimPrefix(itemID, "masterclass-")
}
