package models

import (
	"errors"
	"fmt"
	"time"
)

// TicketRecord is an immutable snapshot of a confirmed booking. Records
// are only ever appended to the session ledger; they are never updated
// or removed for the lifetime of the session.
type TicketRecord struct {
	ID         string    `json:"id"`
	EventName  string    `json:"event_name"`
	EventDate  string    `json:"event_date"`
	EventTime  string    `json:"event_time"`
	TicketType string    `json:"ticket_type"`
	Quantity   int       `json:"quantity"`
	TotalPrice int       `json:"total_price"` // in cents
	BookedAt   time.Time `json:"booked_at"`
}

// Validate validates the ticket record data
func (t *TicketRecord) Validate() error {
	if t.EventName == "" {
		return errors.New("event name is required")
	}

	if t.TicketType == "" {
		return errors.New("ticket type is required")
	}

	if t.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	if t.TotalPrice < 0 {
		return errors.New("total price cannot be negative")
	}

	return nil
}

// ExportKey returns the stable key a record is addressed by for the
// lifetime of the session: event name, ticket type, and the record's
// position in the ledger.
func (t *TicketRecord) ExportKey(index int) string {
	return fmt.Sprintf("%s-%s-%d", t.EventName, t.TicketType, index)
}

// DisplayTotal returns the total price label for the record
func (t *TicketRecord) DisplayTotal() string {
	if t.TotalPrice == 0 {
		return "Free"
	}
	return FormatPrice(t.TotalPrice)
}
