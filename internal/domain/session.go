package domain

// FlowSession is the transient state one visitor accumulates while walking the
// registration flow. It lives in the session store under the visitor's session
// ID and is cleared when the flow completes or is abandoned.
type FlowSession struct {
	Email               string `json:"email"`
	PaymentReference    string `json:"paymentReference"`
	NumberOfRegistrants int    `json:"numberOfRegistrants"`
	SelectedZoneID      int64  `json:"selectedZoneId"`
	PaymentVerified     bool   `json:"paymentVerified"`
}

// PaymentOptions is what the payment step presents: the captured email and the
// zones to choose from.
type PaymentOptions struct {
	Email string `json:"email"`
	Zones []Zone `json:"zones"`
}

// RegistrationContext is the state the registration step resumes from. The
// current index is derived from what the backend already holds for the payment
// reference, so a reload never duplicates or loses a registrant.
type RegistrationContext struct {
	Zones               []Zone `json:"zones"`
	ZoneID              int64  `json:"zoneId"`
	CurrentIndex        int    `json:"currentIndex"`
	NumberOfRegistrants int    `json:"numberOfRegistrants"`
	Submitted           int    `json:"submitted"`
}

// SubmitResult reports where the flow stands after one registrant was accepted.
type SubmitResult struct {
	Completed bool `json:"completed"`
	NextIndex int  `json:"nextIndex"`
	Submitted int  `json:"submitted"`
}
