package dto

import (
	"time"

	"github.com/campreg/campreg/internal/domain"
)

type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
}

type SubmitResponse struct {
	Completed bool   `json:"completed"`
	NextIndex int    `json:"nextIndex"`
	Submitted int    `json:"submitted"`
	Message   string `json:"message"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

type RegistrationResponse struct {
	ID                     int64  `json:"id"`
	ChildName              string `json:"childName"`
	Age                    int    `json:"age"`
	RegistrationType       string `json:"registrationType"`
	FirstTimeAttendingCamp string `json:"firstTimeAttendingCamp"`
	TCCenter               string `json:"tcCenter"`
	ZoneID                 int64  `json:"zoneId"`
	Address                string `json:"address"`
	ParentName             string `json:"parentName"`
	ParentPhone            string `json:"parentPhone"`
	Allergy                string `json:"allergy"`
	ConsentGiven           bool   `json:"consentGiven"`
	PaymentEmail           string `json:"paymentEmail"`
	TotalAmount            int64  `json:"totalAmount"`
	PaymentStatus          string `json:"paymentStatus"`
	PaymentReference       string `json:"paymentReference"`
	CreatedAt              string `json:"createdAt"`
}

type ErrorResponse struct {
	Error    string `json:"error,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func ToRegistrationResponse(r domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                     r.ID,
		ChildName:              r.ChildName,
		Age:                    r.Age,
		RegistrationType:       r.RegistrationType,
		FirstTimeAttendingCamp: r.FirstTimeAttendingCamp,
		TCCenter:               r.TCCenter,
		ZoneID:                 r.ZoneID,
		Address:                r.Address,
		ParentName:             r.ParentName,
		ParentPhone:            r.ParentPhone,
		Allergy:                r.Allergy,
		ConsentGiven:           r.ConsentGiven,
		PaymentEmail:           r.PaymentEmail,
		TotalAmount:            r.TotalAmount,
		PaymentStatus:          r.PaymentStatus,
		PaymentReference:       r.PaymentReference,
		CreatedAt:              r.CreatedAt.Format(time.RFC3339),
	}
}
