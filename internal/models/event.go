package models

import (
	"errors"
	"fmt"
	"strings"
)

// TicketType represents a named, priced admission tier within an event
type TicketType struct {
	Type      string `json:"type"`
	Price     int    `json:"price"` // Price in cents
	Available int    `json:"available"`
}

// Event represents a bookable event in the catalog
type Event struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Category    string       `json:"category"`
	Keywords    []string     `json:"keywords"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	TicketTypes []TicketType `json:"ticket_types"`
}

// Validate validates the event data
func (e *Event) Validate() error {
	if err := e.validateName(); err != nil {
		return err
	}

	if err := e.validateLocation(); err != nil {
		return err
	}

	if err := e.validateCategory(); err != nil {
		return err
	}

	if err := e.validateTicketTypes(); err != nil {
		return err
	}

	return nil
}

// validateName validates the event name
func (e *Event) validateName() error {
	return validateEventName(e.Name)
}

// validateLocation validates the event location
func (e *Event) validateLocation() error {
	return validateEventLocation(e.Location)
}

// validateCategory validates the event category
func (e *Event) validateCategory() error {
	return validateEventCategory(e.Category)
}

// validateTicketTypes validates the event ticket types
func (e *Event) validateTicketTypes() error {
	return validateEventTicketTypes(e.TicketTypes)
}

// validateEventName validates an event name
func validateEventName(name string) error {
	if name == "" {
		return errors.New("event name is required")
	}

	if len(name) > 255 {
		return errors.New("event name must be less than 255 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("event name cannot be only whitespace")
	}

	return nil
}

// validateEventLocation validates an event location
func validateEventLocation(location string) error {
	if location == "" {
		return errors.New("event location is required")
	}

	if len(location) > 255 {
		return errors.New("event location must be less than 255 characters")
	}

	return nil
}

// validateEventCategory validates an event category
func validateEventCategory(category string) error {
	if category == "" {
		return errors.New("event category is required")
	}

	if len(category) > 100 {
		return errors.New("event category must be less than 100 characters")
	}

	return nil
}

// validateEventTicketTypes validates an event's ticket types. An empty
// sequence is valid: the event is simply not bookable.
func validateEventTicketTypes(ticketTypes []TicketType) error {
	seen := make(map[string]bool, len(ticketTypes))

	for _, tt := range ticketTypes {
		if tt.Type == "" {
			return errors.New("ticket type name is required")
		}

		if seen[tt.Type] {
			return errors.New("ticket type names must be unique within an event")
		}
		seen[tt.Type] = true

		if tt.Price < 0 {
			return errors.New("ticket price cannot be negative")
		}

		if tt.Available < 0 {
			return errors.New("ticket availability cannot be negative")
		}
	}

	return nil
}

// MatchesSearch returns true if the event matches the search term
// case-insensitively against its name, location, or any keyword.
// An empty term matches every event.
func (e *Event) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)

	if strings.Contains(strings.ToLower(e.Name), needle) {
		return true
	}

	if strings.Contains(strings.ToLower(e.Location), needle) {
		return true
	}

	for _, keyword := range e.Keywords {
		if strings.Contains(strings.ToLower(keyword), needle) {
			return true
		}
	}

	return false
}

// HasTicketTypes returns true if the event has at least one ticket type
func (e *Event) HasTicketTypes() bool {
	return len(e.TicketTypes) > 0
}

// IsBookable returns true if a booking can be started for the event.
// Events without ticket types display as "Free" and cannot be booked.
func (e *Event) IsBookable() bool {
	return e.HasTicketTypes()
}

// TicketTypeByName returns the ticket type with the given name, or nil
// if the event has no such type
func (e *Event) TicketTypeByName(name string) *TicketType {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].Type == name {
			return &e.TicketTypes[i]
		}
	}
	return nil
}

// MinPrice returns the lowest ticket price in cents, or 0 when the
// event has no ticket types
func (e *Event) MinPrice() int {
	if len(e.TicketTypes) == 0 {
		return 0
	}

	min := e.TicketTypes[0].Price
	for _, tt := range e.TicketTypes[1:] {
		if tt.Price < min {
			min = tt.Price
		}
	}
	return min
}

// DisplayPrice returns the price label shown on event listings
func (e *Event) DisplayPrice() string {
	if !e.HasTicketTypes() {
		return "Free"
	}
	return fmt.Sprintf("From %s", FormatPrice(e.MinPrice()))
}

// PriceInCurrency returns the ticket price in the main currency as a float
func (tt *TicketType) PriceInCurrency() float64 {
	return float64(tt.Price) / 100.0
}

// IsSoldOut returns true if no tickets of this type are advertised as available
func (tt *TicketType) IsSoldOut() bool {
	return tt.Available <= 0
}

// FormatPrice formats a price in cents for display
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
