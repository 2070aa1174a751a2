package models

import (
	"time"

	"github.com/google/uuid"
)

// SelectionState represents where a booking selection is in the
// type-then-quantity workflow
type SelectionState string

const (
	// SelectionOpened means the selector is open but no ticket type
	// has been chosen yet
	SelectionOpened SelectionState = "opened"
	// SelectionTypeChosen means a ticket type is chosen and the
	// quantity still holds its default
	SelectionTypeChosen SelectionState = "type_chosen"
	// SelectionReady means both a ticket type and a valid quantity
	// are set and the booking can be confirmed
	SelectionReady SelectionState = "ready"
	// SelectionConfirmed means the booking was written to the ledger
	SelectionConfirmed SelectionState = "confirmed"
)

// Selection is the transient in-progress choice of ticket type and
// quantity for one event. Exactly one selection is active per session;
// it lives in the session the way a shopping cart does and is discarded
// on cancel or confirm.
type Selection struct {
	EventID     int            `json:"event_id"`
	EventName   string         `json:"event_name"`
	EventDate   string         `json:"event_date"`
	EventTime   string         `json:"event_time"`
	TicketTypes []TicketType   `json:"ticket_types"`
	TicketType  string         `json:"ticket_type"`
	Quantity    int            `json:"quantity"`
	State       SelectionState `json:"state"`
}

// NewSelection opens a selection for the given event. The quantity
// always starts at 1 and no ticket type is chosen yet.
func NewSelection(event *Event) *Selection {
	return &Selection{
		EventID:     event.ID,
		EventName:   event.Name,
		EventDate:   event.Date,
		EventTime:   event.Time,
		TicketTypes: event.TicketTypes,
		Quantity:    1,
		State:       SelectionOpened,
	}
}

// ChooseTicketType picks one of the event's ticket types. Choosing a
// type always resets the quantity to 1, even when re-choosing the
// current type.
func (s *Selection) ChooseTicketType(name string) error {
	if s.State == SelectionConfirmed {
		return ErrSelectionNotReady
	}

	if s.ticketTypeByName(name) == nil {
		return ErrUnknownTicketType
	}

	s.TicketType = name
	s.Quantity = 1
	s.State = SelectionTypeChosen
	return nil
}

// SetQuantity sets the number of tickets to book. A value below 1 is
// rejected and the current quantity is retained. The chosen type's
// available count is a soft cap on input only; confirmed bookings never
// decrement it.
func (s *Selection) SetQuantity(quantity int) error {
	if s.State == SelectionOpened || s.State == SelectionConfirmed || s.TicketType == "" {
		return ErrSelectionNotReady
	}

	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if tt := s.ticketTypeByName(s.TicketType); tt != nil && quantity > tt.Available {
		return ErrQuantityExceedsAvailable
	}

	s.Quantity = quantity
	s.State = SelectionReady
	return nil
}

// UnitPrice returns the price in cents of the chosen ticket type, or 0
// when no type is chosen
func (s *Selection) UnitPrice() int {
	tt := s.ticketTypeByName(s.TicketType)
	if tt == nil {
		return 0
	}
	return tt.Price
}

// TotalPrice returns the derived total in cents for the current
// selection
func (s *Selection) TotalPrice() int {
	return s.UnitPrice() * s.Quantity
}

// CanConfirm returns true if the booking can be confirmed: a ticket
// type is chosen and the quantity is a valid positive integer
func (s *Selection) CanConfirm() bool {
	return s.State == SelectionReady && s.TicketType != "" && s.Quantity >= 1
}

// Confirm builds the immutable ticket record for the selection and
// marks it confirmed. Confirming is only possible from the ready state.
func (s *Selection) Confirm() (*TicketRecord, error) {
	if !s.CanConfirm() {
		return nil, ErrSelectionNotReady
	}

	record := &TicketRecord{
		ID:         uuid.NewString(),
		EventName:  s.EventName,
		EventDate:  s.EventDate,
		EventTime:  s.EventTime,
		TicketType: s.TicketType,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice(),
		BookedAt:   time.Now(),
	}

	s.State = SelectionConfirmed
	return record, nil
}

// DisplayTotal returns the total price label for the current selection
func (s *Selection) DisplayTotal() string {
	if s.TotalPrice() == 0 {
		return "Free"
	}
	return FormatPrice(s.TotalPrice())
}

// ticketTypeByName returns the snapshot ticket type with the given
// name, or nil
func (s *Selection) ticketTypeByName(name string) *TicketType {
	for i := range s.TicketTypes {
		if s.TicketTypes[i].Type == name {
			return &s.TicketTypes[i]
		}
	}
	return nil
}
