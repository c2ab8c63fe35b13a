package przelewy24

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
)

// The gateway authenticates API calls by re-deriving a SHA-384 digest over a
// canonical JSON object. Determinism matters: struct marshalling keeps the
// declared key order and emits no extraneous whitespace, so two calls with
// identical inputs always produce byte-identical signatures.

type registrationSignPayload struct {
	SessionID  string `json:"sessionId"`
	MerchantID int    `json:"merchantId"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	CRC        string `json:"crc"`
}

type verifySignPayload struct {
	SessionID string `json:"sessionId"`
	OrderID   int64  `json:"orderId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CRC       string `json:"crc"`
}

type notificationSignPayload struct {
	MerchantID   int    `json:"merchantId"`
	PosID        int    `json:"posId"`
	SessionID    string `json:"sessionId"`
	Amount       int64  `json:"amount"`
	OriginAmount int64  `json:"originAmount"`
	Currency     string `json:"currency"`
	OrderID      int64  `json:"orderId"`
	MethodID     int    `json:"methodId"`
	Statement    string `json:"statement"`
	CRC          string `json:"crc"`
}

func signPayload(payload any) string {
	data, _ := json.Marshal(payload)
	sum := sha512.Sum384(data)
	return hex.EncodeToString(sum[:])
}

// RegistrationSign computes the signature for a transaction-registration call.
func RegistrationSign(sessionID string, merchantID int, amount int64, currency, crc string) string {
	return signPayload(registrationSignPayload{
		SessionID:  sessionID,
		MerchantID: merchantID,
		Amount:     amount,
		Currency:   currency,
		CRC:        crc,
	})
}

// VerifySign computes the signature for the authoritative verify call, which
// uses the gateway-assigned orderId in place of the merchant identifier.
func VerifySign(sessionID string, orderID, amount int64, currency, crc string) string {
	return signPayload(verifySignPayload{
		SessionID: sessionID,
		OrderID:   orderID,
		Amount:    amount,
		Currency:  currency,
		CRC:       crc,
	})
}
