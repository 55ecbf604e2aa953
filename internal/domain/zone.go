package domain

// Zone is a pricing category for registrants. Amounts are in minor currency
// units, fixed per registrant. The list order is whatever the backend returns.
type Zone struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	AmountPerRegistrant int64  `json:"amountPerRegistrant"`
}
