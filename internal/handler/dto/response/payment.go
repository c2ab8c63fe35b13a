package response

import (
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/usecase/queries"
)

type CreatePaymentResponse struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"sessionId"`
	Token      string `json:"token"`
	PaymentURL string `json:"paymentUrl"`
}

func FromRegisterResult(r *przelewy24.RegisterResult) *CreatePaymentResponse {
	return &CreatePaymentResponse{
		Success:    true,
		SessionID:  r.SessionID,
		Token:      r.Token,
		PaymentURL: r.PaymentURL,
	}
}

type PaymentStatusResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
	OrderID   int64  `json:"orderId,omitempty"`
	Fulfilled bool   `json:"fulfilled"`
}

func FromStatusResult(r *queries.StatusResult) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		Success:   true,
		SessionID: r.SessionID,
		Status:    r.Status.String(),
		OrderID:   r.OrderID,
		Fulfilled: r.Fulfilled,
	}
}
