package payment

// Status is a read-time projection of the gateway's numeric transaction
// status code. It is never persisted.
type Status string

const (
	StatusCreated    Status = "created"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
	StatusReversed   Status = "reversed"
	StatusNotFound   Status = "not_found"
	StatusUnknown    Status = "unknown"
)

// StatusFromGatewayCode maps the gateway's numeric transaction status to the
// internal enum. The mapping is total: unrecognized codes come back as
// StatusUnknown, never as an error.
func StatusFromGatewayCode(code int) Status {
	switch code {
	case 0, 1:
		return StatusCreated
	case 2:
		return StatusProcessing
	case 3, 4:
		return StatusFailure
	case 5:
		return StatusSuccess
	case 6:
		return StatusReversed
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	return string(s)
}

// IsPending reports whether the gateway may still settle this transaction,
// i.e. whether a verify call or a bounded re-poll is worth attempting.
func (s Status) IsPending() bool {
	return s == StatusCreated || s == StatusProcessing
}
