// Package flow is the registration flow state machine: the five steps a
// visitor walks through, the legal transitions between them and the entry
// guards that decide whether a step may be served or the visitor has to be
// sent back to the start. Everything here is pure so the protocol can be
// tested without a store or an HTTP stack.
package flow

import (
	"errors"

	"github.com/campreg/campreg/internal/domain"
)

type Step string

const (
	StepEmail        Step = "email"
	StepPayment      Step = "payment"
	StepCallback     Step = "callback"
	StepRegistration Step = "registration"
	StepCompletion   Step = "completion"
)

type Event string

const (
	EventEmailCaptured       Event = "email_captured"
	EventPaymentInitialized  Event = "payment_initialized"
	EventPaymentVerified     Event = "payment_verified"
	EventVerificationFailed  Event = "verification_failed"
	EventRetryPayment        Event = "retry_payment"
	EventReferenceRejected   Event = "reference_rejected"
	EventRegistrantSubmitted Event = "registrant_submitted"
	EventAllSubmitted        Event = "all_submitted"
	EventFlowReset           Event = "flow_reset"
)

var ErrIllegalTransition = errors.New("illegal flow transition")

// transitions is the full table. A verification failure keeps the flow in the
// callback step (its error sub-state); recovery from there is the explicit
// retry back to payment, never automatic.
var transitions = map[Step]map[Event]Step{
	StepEmail: {
		EventEmailCaptured: StepPayment,
	},
	StepPayment: {
		EventPaymentInitialized: StepCallback,
	},
	StepCallback: {
		EventPaymentVerified:    StepRegistration,
		EventVerificationFailed: StepCallback,
		EventRetryPayment:       StepPayment,
	},
	StepRegistration: {
		EventRegistrantSubmitted: StepRegistration,
		EventAllSubmitted:        StepCompletion,
		EventReferenceRejected:   StepEmail,
	},
	StepCompletion: {
		EventFlowReset: StepEmail,
	},
}

// Next returns the step that follows event from step.
func Next(step Step, event Event) (Step, error) {
	next, ok := transitions[step][event]
	if !ok {
		return step, ErrIllegalTransition
	}
	return next, nil
}

// GuardEntry re-evaluates a step request against the session, treating direct
// URL entry and browser history as untrusted. It returns the step that may
// actually be served: the requested one when its prerequisites hold, the
// flow start otherwise.
func GuardEntry(requested Step, s *domain.FlowSession) Step {
	switch requested {
	case StepEmail, StepCallback:
		// Always reachable: email is the start, the callback carries its
		// reference in the request itself.
		return requested
	case StepPayment:
		if s != nil && s.Email != "" {
			return StepPayment
		}
	case StepRegistration, StepCompletion:
		if s != nil && s.PaymentReference != "" && s.PaymentVerified {
			return requested
		}
	}
	return StepEmail
}

// Current derives the deepest step the session has legitimately reached.
func Current(s *domain.FlowSession) Step {
	switch {
	case s == nil || s.Email == "":
		return StepEmail
	case s.PaymentReference != "" && s.PaymentVerified:
		return StepRegistration
	case s.PaymentReference != "":
		return StepCallback
	default:
		return StepPayment
	}
}

// Total is the derived payment amount. It is never stored.
func Total(zone domain.Zone, numberOfRegistrants int) int64 {
	return zone.AmountPerRegistrant * int64(numberOfRegistrants)
}
