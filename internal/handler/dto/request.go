package dto

import "github.com/campreg/campreg/internal/domain"

type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type InitializePaymentRequest struct {
	ZoneID              int64 `json:"zoneId"`
	NumberOfRegistrants int   `json:"numberOfRegistrants"`
}

// RegistrantRequest carries every field of the registration form. Validation
// lives in the flow service so the first failing field is reported in form
// order; binding tags here would preempt that with a generic message.
type RegistrantRequest struct {
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

func (r RegistrantRequest) ToDomain() domain.Registrant {
	return domain.Registrant{
		FirstTimeAttendingCamp: r.FirstTimeAttendingCamp,
		RegistrationType:       r.RegistrationType,
		ChildName:              r.ChildName,
		Age:                    r.Age,
		TCCenter:               r.TCCenter,
		ZoneID:                 r.ZoneID,
		Address:                r.Address,
		ParentName:             r.ParentName,
		ParentPhone:            r.ParentPhone,
		Allergy:                r.Allergy,
		ConsentGiven:           r.ConsentGiven,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
