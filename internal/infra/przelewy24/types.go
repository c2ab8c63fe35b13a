package przelewy24

import (
	"errors"
	"fmt"
)

// ErrTransactionNotFound means the gateway has no record for the session.
// The reconciler maps this to the not_found status, it is not a failure.
var ErrTransactionNotFound = errors.New("transaction not found at gateway")

// RegistrationError carries the gateway's raw error payload so a failed
// registration can be diagnosed from the logs. A token is never synthesized.
type RegistrationError struct {
	StatusCode int
	RawBody    []byte
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("gateway registration failed (HTTP %d): %s", e.StatusCode, string(e.RawBody))
}

// RegisterParams is everything the registration call needs beyond the
// merchant configuration.
type RegisterParams struct {
	SessionID   string
	Amount      int64 // minor units (grosz)
	Description string
	Email       string
	ClientName  string
	Phone       string
	Country     string
	Language    string
}

// RegisterResult is the redirect handle returned on success.
type RegisterResult struct {
	SessionID  string
	Token      string
	PaymentURL string
}

type registerRequest struct {
	MerchantID  int    `json:"merchantId"`
	PosID       int    `json:"posId"`
	SessionID   string `json:"sessionId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Client      string `json:"client,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Country     string `json:"country"`
	Language    string `json:"language"`
	URLReturn   string `json:"urlReturn"`
	URLStatus   string `json:"urlStatus"`
	TimeLimit   int    `json:"timeLimit"`
	Sign        string `json:"sign"`
}

type registerResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
	ResponseCode int `json:"responseCode"`
}

type transactionResponse struct {
	Data struct {
		Statement   string `json:"statement"`
		OrderID     int64  `json:"orderId"`
		SessionID   string `json:"sessionId"`
		Status      int    `json:"status"`
		Amount      int64  `json:"amount"`
		Currency    string `json:"currency"`
		ClientName  string `json:"clientName"`
		ClientEmail string `json:"clientEmail"`
		ClientPhone string `json:"clientPhone"`
	} `json:"data"`
}

type verifyRequest struct {
	MerchantID int    `json:"merchantId"`
	PosID      int    `json:"posId"`
	SessionID  string `json:"sessionId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	OrderID    int64  `json:"orderId"`
	Sign       string `json:"sign"`
}

type verifyResponse struct {
	Data struct {
		Status string `json:"status"`
	} `json:"data"`
	ResponseCode int `json:"responseCode"`
}
