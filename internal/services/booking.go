package services

import (
	"log"

	"ticketier/internal/models"
)

// NavigationGate routes the user after a confirmed booking. It receives
// no payload beyond the fact that a booking happened and answers with
// the path to continue on.
type NavigationGate interface {
	BookingConfirmed() string
}

// StaticGate is a NavigationGate that always routes to the same target
type StaticGate struct {
	Target string
}

// BookingConfirmed returns the configured target path
func (g StaticGate) BookingConfirmed() string {
	return g.Target
}

// BookingService drives the two-step selection workflow for one event
// at a time and writes confirmed bookings to the session's ledger
type BookingService struct {
	catalog *CatalogService
	ledgers *LedgerStore
	gate    NavigationGate
}

// NewBookingService creates a new booking service
func NewBookingService(catalog *CatalogService, ledgers *LedgerStore, gate NavigationGate) *BookingService {
	return &BookingService{
		catalog: catalog,
		ledgers: ledgers,
		gate:    gate,
	}
}

// Open starts a selection for the given event, discarding any previous
// in-flight selection. The quantity resets to 1 and no ticket type is
// chosen yet. Opening an event without ticket types succeeds; such a
// selection can never reach the ready state.
func (s *BookingService) Open(eventID int) (*models.Selection, error) {
	event, err := s.catalog.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}

	return models.NewSelection(event), nil
}

// ChooseTicketType picks a ticket type on the active selection
func (s *BookingService) ChooseTicketType(sel *models.Selection, name string) error {
	return sel.ChooseTicketType(name)
}

// SetQuantity sets the quantity on the active selection. On rejection
// the selection keeps its prior valid quantity.
func (s *BookingService) SetQuantity(sel *models.Selection, quantity int) error {
	return sel.SetQuantity(quantity)
}

// Confirm finalizes the selection: it builds the immutable ticket
// record, appends it to the session's ledger, and signals the
// navigation gate. It returns the record and the path the gate chose.
func (s *BookingService) Confirm(sessionID string, sel *models.Selection) (*models.TicketRecord, string, error) {
	record, err := sel.Confirm()
	if err != nil {
		return nil, "", err
	}

	s.ledgers.Ledger(sessionID).Append(*record)

	log.Printf("booking confirmed: %q x%d (%s) for session %s",
		record.EventName, record.Quantity, record.TicketType, sessionID)

	return record, s.gate.BookingConfirmed(), nil
}

// Tickets returns the session's ledger snapshot in booking order
func (s *BookingService) Tickets(sessionID string) []models.TicketRecord {
	return s.ledgers.Ledger(sessionID).All()
}

// TicketByKey returns the session's ticket record addressed by an
// export key
func (s *BookingService) TicketByKey(sessionID, key string) (models.TicketRecord, error) {
	record, ok := s.ledgers.Ledger(sessionID).FindByKey(key)
	if !ok {
		return models.TicketRecord{}, models.ErrTicketNotFound
	}
	return record, nil
}
