package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound            = errors.New("event not found")
	ErrTicketNotFound           = errors.New("ticket not found")
	ErrUnknownTicketType        = errors.New("ticket type does not belong to this event")
	ErrInvalidQuantity          = errors.New("quantity must be a positive integer")
	ErrQuantityExceedsAvailable = errors.New("quantity exceeds available tickets")
	ErrSelectionNotReady        = errors.New("selection is not ready to confirm")
)
