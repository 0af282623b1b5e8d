package event

import "time"

// Event types consumed by the back-office notification service.
const (
	TypeIssuanceCreated = "issuance.created"
	TypeIssuanceVoided  = "issuance.voided"
	TypeCollectionPaid  = "collection.paid"
)

// WorkflowEvent is the envelope for all workflow notifications.
type WorkflowEvent struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

const WorkflowEventQueue string = "insurance_workflow_events"
