package event

import (
	"time"

	"github.com/google/uuid"
)

type BorrowerEventType string

const (
	BorrowerCreated BorrowerEventType = "borrower.created"
	BorrowerUpdated BorrowerEventType = "borrower.updated"
	BorrowerDeleted BorrowerEventType = "borrower.deleted"
)

type BorrowerEventPayload struct {
	BorrowerID int64  `json:"borrowerId"`
	CustomerID string `json:"customerId,omitempty"`
	RefNo      string `json:"refNo,omitempty"`
	FullName   string `json:"fullName,omitempty"`
}

type BorrowerEvent struct {
	ID        string               `json:"id"`
	Type      BorrowerEventType    `json:"type"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   BorrowerEventPayload `json:"payload"`
}

func NewBorrowerEvent(t BorrowerEventType, payload BorrowerEventPayload) BorrowerEvent {
	return BorrowerEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
