package request

import (
	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest mirrors the storefront checkout form. Amount is whole
// złoty; conversion to grosz happens in the command layer.
type CreatePaymentRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	ItemType       string          `json:"itemType" binding:"required,oneof=masterclass online-product"`
	ItemID         string          `json:"itemId" binding:"required"`
	SessionID      string          `json:"sessionId,omitempty"`
	FullName       string          `json:"fullName" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Phone          string          `json:"phone,omitempty"`
	Whatsapp       string          `json:"whatsapp,omitempty"`
	City           string          `json:"city,omitempty"`
	ImageConsent   string          `json:"imageConsent,omitempty" binding:"omitempty,oneof=agree disagree"`
	InvoiceNeeded  bool            `json:"invoiceNeeded,omitempty"`
	CompanyName    string          `json:"companyName,omitempty"`
	NIP            string          `json:"nip,omitempty"`
	CompanyAddress string          `json:"companyAddress,omitempty"`
}

func (r CreatePaymentRequest) ToParams() commands.CreatePaymentParams {
	// Older storefront builds send the contact number as "whatsapp".
	phone := r.Phone
	if phone == "" {
		phone = r.Whatsapp
	}
	return commands.CreatePaymentParams{
		Amount:         r.Amount,
		ItemType:       payment.ItemType(r.ItemType),
		ItemID:         r.ItemID,
		SessionID:      r.SessionID,
		FullName:       r.FullName,
		Email:          r.Email,
		Phone:          phone,
		City:           r.City,
		ImageConsent:   payment.ImageConsent(r.ImageConsent),
		InvoiceNeeded:  r.InvoiceNeeded,
		CompanyName:    r.CompanyName,
		NIP:            r.NIP,
		CompanyAddress: r.CompanyAddress,
	}
}

// ProcessPaymentRequest is the buyer-return notification from the
// storefront. OrderID is only present when the gateway included it in the
// return redirect.
type ProcessPaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	OrderID   int64  `json:"orderId,omitempty"`
}
