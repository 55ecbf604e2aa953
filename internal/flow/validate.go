package flow

import (
	"fmt"
	"strings"

	"github.com/campreg/campreg/internal/domain"
)

// ValidateEmail applies the minimal syntactic check the flow start needs.
// Deliverability is the backend's problem.
func ValidateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}
	return nil
}

// MinRegistrants and MaxRegistrants bound one payment.
const (
	MinRegistrants = 1
	MaxRegistrants = 10
)

func ValidateRegistrantCount(n int) error {
	if n < MinRegistrants || n > MaxRegistrants {
		return fmt.Errorf("%w: number of registrants must be between %d and %d",
			domain.ErrValidation, MinRegistrants, MaxRegistrants)
	}
	return nil
}

// ValidateRegistrant checks the draft field by field in a fixed order and
// stops at the first failure, so exactly one message surfaces at a time.
func ValidateRegistrant(r domain.Registrant) error {
	switch {
	case r.FirstTimeAttendingCamp == "":
		return fmt.Errorf("%w: please select if this is your first time attending camp", domain.ErrValidation)
	case r.RegistrationType == "":
		return fmt.Errorf("%w: registration type is required", domain.ErrValidation)
	case strings.TrimSpace(r.ChildName) == "":
		return fmt.Errorf("%w: child name is required", domain.ErrValidation)
	case r.Age < 1:
		return fmt.Errorf("%w: age is required and must be at least 1", domain.ErrValidation)
	case strings.TrimSpace(r.TCCenter) == "":
		return fmt.Errorf("%w: TC center is required", domain.ErrValidation)
	case r.ZoneID <= 0:
		return fmt.Errorf("%w: zone is required", domain.ErrValidation)
	case strings.TrimSpace(r.Address) == "":
		return fmt.Errorf("%w: address is required", domain.ErrValidation)
	case strings.TrimSpace(r.ParentName) == "":
		return fmt.Errorf("%w: parent name is required", domain.ErrValidation)
	case strings.TrimSpace(r.ParentPhone) == "":
		return fmt.Errorf("%w: parent phone number is required", domain.ErrValidation)
	case strings.TrimSpace(r.Allergy) == "":
		return fmt.Errorf("%w: allergy information is required (enter 'None' if there are no allergies)", domain.ErrValidation)
	case !r.ConsentGiven:
		return fmt.Errorf("%w: consent is required to submit a registration", domain.ErrValidation)
	}
	return nil
}
