package domain

import "time"

// Registrant is one child being registered under a shared payment.
type Registrant struct {
	FirstTimeAttendingCamp string `json:"firstTimeAttendingCamp"`
	RegistrationType       string `json:"registrationType"`
	ChildName              string `json:"childName"`
	Age                    int    `json:"age"`
	TCCenter               string `json:"tcCenter"`
	ZoneID                 int64  `json:"zoneId"`
	Address                string `json:"address"`
	ParentName             string `json:"parentName"`
	ParentPhone            string `json:"parentPhone"`
	Allergy                string `json:"allergy"`
	ConsentGiven           bool   `json:"consentGiven"`
}

// RegistrationSubmission ties a registrant to the payment it was bought under.
type RegistrationSubmission struct {
	Registrant
	PaymentReference string `json:"paymentReference"`
}

// Registration is the persisted projection the backend returns for admin
// reporting: the registrant fields plus payment bookkeeping.
type Registration struct {
	ID int64 `json:"id"`
	Registrant
	PaymentEmail     string    `json:"paymentEmail"`
	TotalAmount      int64     `json:"totalAmount"`
	PaymentStatus    string    `json:"paymentStatus"`
	PaymentReference string    `json:"paymentReference"`
	CreatedAt        time.Time `json:"createdAt"`
	PaymentCreatedAt time.Time `json:"paymentCreatedAt"`
}

// RegistrationFilter narrows the admin listing. Zero values mean "no filter".
type RegistrationFilter struct {
	ZoneID    int64
	StartDate time.Time
	EndDate   time.Time
}

type Stats struct {
	TotalRegistrations int64 `json:"totalRegistrations"`
	TotalPayments      int64 `json:"totalPayments"`
	TotalRevenue       int64 `json:"totalRevenue"`
}
