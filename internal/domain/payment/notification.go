package payment

// Notification is the single strongly-typed event both webhook encodings
// (JSON and form-urlencoded) are normalized into before any business logic
// runs. Amounts are in minor units, as reported by the gateway.
type Notification struct {
	MerchantID   int
	PosID        int
	SessionID    string
	Amount       int64
	OriginAmount int64
	Currency     string
	OrderID      int64
	MethodID     int
	Statement    string
	Sign         string

	// Buyer fields the gateway reports alongside the transaction; used as a
	// fallback when the local session is already consumed or never existed.
	ClientName  string
	ClientEmail string
	ClientPhone string
}

// TransactionInfo is the reconciler's view of a gateway transaction record.
type TransactionInfo struct {
	SessionID   string
	OrderID     int64
	StatusCode  int
	Amount      int64
	Currency    string
	ClientName  string
	ClientEmail string
	ClientPhone string
}
