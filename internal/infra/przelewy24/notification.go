package przelewy24

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"smakownia-backend/internal/domain/payment"
	"smakownia-backend/internal/pkg/errs"
)

type notificationWire struct {
	MerchantID   int    `json:"merchantId"`
	PosID        int    `json:"posId"`
	SessionID    string `json:"sessionId"`
	Amount       int64  `json:"amount"`
	OriginAmount int64  `json:"originAmount"`
	Currency     string `json:"currency"`
	OrderID      int64  `json:"orderId"`
	MethodID     int    `json:"methodId"`
	Statement    string `json:"statement"`
	Sign         string `json:"sign"`
	ClientName   string `json:"clientName"`
	ClientEmail  string `json:"clientEmail"`
	ClientPhone  string `json:"clientPhone"`
}

// ParseNotification normalizes both webhook encodings the gateway is known to
// send (JSON and form-urlencoded) into one typed event before any business
// logic sees it.
func ParseNotification(contentType string, body []byte) (payment.Notification, error) {
	if strings.Contains(contentType, "application/json") || looksLikeJSON(body) {
		return parseJSONNotification(body)
	}
	return parseFormNotification(body)
}

func looksLikeJSON(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	return strings.HasPrefix(trimmed, "{")
}

func parseJSONNotification(body []byte) (payment.Notification, error) {
	var wire notificationWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return payment.Notification{}, errs.Wrap(err, "malformed JSON notification")
	}
	if wire.SessionID == "" {
		return payment.Notification{}, errs.New("notification missing sessionId")
	}
	return payment.Notification{
		MerchantID:   wire.MerchantID,
		PosID:        wire.PosID,
		SessionID:    wire.SessionID,
		Amount:       wire.Amount,
		OriginAmount: wire.OriginAmount,
		Currency:     wire.Currency,
		OrderID:      wire.OrderID,
		MethodID:     wire.MethodID,
		Statement:    wire.Statement,
		Sign:         wire.Sign,
		ClientName:   wire.ClientName,
		ClientEmail:  wire.ClientEmail,
		ClientPhone:  wire.ClientPhone,
	}, nil
}

func parseFormNotification(body []byte) (payment.Notification, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return payment.Notification{}, errs.Wrap(err, "malformed form notification")
	}
	sessionID := values.Get("p24_session_id")
	if sessionID == "" {
		sessionID = values.Get("sessionId")
	}
	if sessionID == "" {
		return payment.Notification{}, errs.New("notification missing sessionId")
	}

	return payment.Notification{
		MerchantID:   formInt(values, "p24_merchant_id", "merchantId"),
		PosID:        formInt(values, "p24_pos_id", "posId"),
		SessionID:    sessionID,
		Amount:       formInt64(values, "p24_amount", "amount"),
		OriginAmount: formInt64(values, "p24_origin_amount", "originAmount"),
		Currency:     formString(values, "p24_currency", "currency"),
		OrderID:      formInt64(values, "p24_order_id", "orderId"),
		MethodID:     formInt(values, "p24_method", "methodId"),
		Statement:    formString(values, "p24_statement", "statement"),
		Sign:         formString(values, "p24_sign", "sign"),
		ClientName:   formString(values, "p24_client_name", "clientName"),
		ClientEmail:  formString(values, "p24_email", "clientEmail"),
		ClientPhone:  formString(values, "p24_phone", "clientPhone"),
	}, nil
}

func formString(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := values.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func formInt(values url.Values, keys ...string) int {
	n, _ := strconv.Atoi(formString(values, keys...))
	return n
}

func formInt64(values url.Values, keys ...string) int64 {
	n, _ := strconv.ParseInt(formString(values, keys...), 10, 64)
	return n
}
