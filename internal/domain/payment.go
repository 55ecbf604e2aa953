package domain

// PaymentRequest initializes a payment with the backend.
type PaymentRequest struct {
	Email               string `json:"email"`
	NumberOfRegistrants int    `json:"numberOfRegistrants"`
	ZoneID              int64  `json:"zoneId"`
}

// PaymentSession is what a successful initialization yields: the opaque
// reference correlating payment and registrants, and the external URL the
// visitor is sent to.
type PaymentSession struct {
	Reference        string
	AuthorizationURL string
}
