package ports

import "context"

// FlowNotifier tells an operator that every registrant paid for under a
// reference has been submitted.
type FlowNotifier interface {
	NotifyFlowCompleted(ctx context.Context, email, reference string, registrants int)
}
