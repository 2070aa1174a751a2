package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"ticketier/internal/middleware"
	"ticketier/internal/models"
	"ticketier/internal/services"
)

// selectionKey holds the active selection inside the session values
const selectionKey = "selection"

// BookingHandler handles the ticket selection and confirmation workflow
type BookingHandler struct {
	booking *services.BookingService
	store   sessions.Store
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(booking *services.BookingService, store sessions.Store) *BookingHandler {
	return &BookingHandler{
		booking: booking,
		store:   store,
	}
}

// selectionView is the JSON shape of the active selection
type selectionView struct {
	EventID      int                   `json:"event_id"`
	EventName    string                `json:"event_name"`
	EventDate    string                `json:"event_date"`
	EventTime    string                `json:"event_time"`
	TicketTypes  []models.TicketType   `json:"ticket_types"`
	TicketType   string                `json:"ticket_type,omitempty"`
	Quantity     int                   `json:"quantity"`
	State        models.SelectionState `json:"state"`
	UnitPrice    int                   `json:"unit_price"`
	TotalPrice   int                   `json:"total_price"`
	DisplayTotal string                `json:"display_total"`
	CanConfirm   bool                  `json:"can_confirm"`
}

func newSelectionView(sel *models.Selection) selectionView {
	return selectionView{
		EventID:      sel.EventID,
		EventName:    sel.EventName,
		EventDate:    sel.EventDate,
		EventTime:    sel.EventTime,
		TicketTypes:  sel.TicketTypes,
		TicketType:   sel.TicketType,
		Quantity:     sel.Quantity,
		State:        sel.State,
		UnitPrice:    sel.UnitPrice(),
		TotalPrice:   sel.TotalPrice(),
		DisplayTotal: sel.DisplayTotal(),
		CanConfirm:   sel.CanConfirm(),
	}
}

// OpenSelector starts a booking selection for an event. Any in-flight
// selection for another event is discarded.
func (h *BookingHandler) OpenSelector(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	sel, err := h.booking.Open(eventID)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "Event not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to open booking")
		return
	}

	session.Values[selectionKey] = sel
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	respondJSON(w, http.StatusCreated, newSelectionView(sel))
}

// GetSelection returns the active selection state
func (h *BookingHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	sel := selectionFromSession(session)
	if sel == nil {
		respondError(w, http.StatusNotFound, "No active booking")
		return
	}

	respondJSON(w, http.StatusOK, newSelectionView(sel))
}

// ChooseTicketType picks a ticket type on the active selection. The
// quantity resets to 1 whenever the type changes.
func (h *BookingHandler) ChooseTicketType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TicketType string `json:"ticket_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	sel := selectionFromSession(session)
	if sel == nil {
		respondError(w, http.StatusNotFound, "No active booking")
		return
	}

	if err := h.booking.ChooseTicketType(sel, req.TicketType); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	session.Values[selectionKey] = sel
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	respondJSON(w, http.StatusOK, newSelectionView(sel))
}

// SetQuantity sets the ticket quantity on the active selection.
// Non-numeric and non-positive input is rejected and the prior valid
// quantity is retained.
func (h *BookingHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Accept the quantity as either a JSON number or a string, the way
	// a quantity input field submits it
	quantity, err := strconv.Atoi(strings.Trim(string(req.Quantity), `" `))
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Quantity must be a whole number")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	sel := selectionFromSession(session)
	if sel == nil {
		respondError(w, http.StatusNotFound, "No active booking")
		return
	}

	if err := h.booking.SetQuantity(sel, quantity); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	session.Values[selectionKey] = sel
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	respondJSON(w, http.StatusOK, newSelectionView(sel))
}

// Confirm finalizes the active selection: the ticket record is appended
// to the session's ledger, the selection is cleared, and the response
// carries the path the navigation gate chose.
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	sel := selectionFromSession(session)
	if sel == nil {
		respondError(w, http.StatusNotFound, "No active booking")
		return
	}

	sessionID := middleware.SessionID(session)

	record, next, err := h.booking.Confirm(sessionID, sel)
	if err != nil {
		if errors.Is(err, models.ErrSelectionNotReady) {
			respondError(w, http.StatusConflict, "Booking is not ready to confirm")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}

	delete(session.Values, selectionKey)
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	index := len(h.booking.Tickets(sessionID)) - 1
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"ticket": newTicketView(*record, index),
		"next":   next,
	})
}

// Cancel closes the active selection with no side effects and no
// ledger write. Cancelling when nothing is open is a no-op.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	delete(session.Values, selectionKey)
	if err := session.Save(r, w); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// selectionFromSession returns the active selection stored in the
// session, or nil when no selector is open
func selectionFromSession(session *sessions.Session) *models.Selection {
	sel, _ := session.Values[selectionKey].(*models.Selection)
	return sel
}
