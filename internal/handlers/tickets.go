package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"ticketier/internal/middleware"
	"ticketier/internal/models"
	"ticketier/internal/services"
)

// TicketHandler handles booked-ticket views and ticket downloads
type TicketHandler struct {
	booking *services.BookingService
	export  *services.ExportService
	store   sessions.Store
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(booking *services.BookingService, export *services.ExportService, store sessions.Store) *TicketHandler {
	return &TicketHandler{
		booking: booking,
		export:  export,
		store:   store,
	}
}

// ticketView is the JSON shape of a ledger record, including the stable
// key it can be downloaded under
type ticketView struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	EventName    string    `json:"event_name"`
	EventDate    string    `json:"event_date"`
	EventTime    string    `json:"event_time"`
	TicketType   string    `json:"ticket_type"`
	Quantity     int       `json:"quantity"`
	TotalPrice   int       `json:"total_price"`
	DisplayTotal string    `json:"display_total"`
	BookedAt     time.Time `json:"booked_at"`
}

func newTicketView(record models.TicketRecord, index int) ticketView {
	return ticketView{
		ID:           record.ID,
		Key:          record.ExportKey(index),
		EventName:    record.EventName,
		EventDate:    record.EventDate,
		EventTime:    record.EventTime,
		TicketType:   record.TicketType,
		Quantity:     record.Quantity,
		TotalPrice:   record.TotalPrice,
		DisplayTotal: record.DisplayTotal(),
		BookedAt:     record.BookedAt,
	}
}

// ListTickets returns the session's booked tickets in booking order
func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	records := h.booking.Tickets(middleware.SessionID(session))

	views := make([]ticketView, 0, len(records))
	for i, record := range records {
		views = append(views, newTicketView(record, i))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tickets": views,
		"count":   len(views),
	})
}

// DownloadTicket renders the ticket addressed by its export key as a
// PDF attachment
func (h *TicketHandler) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ticket key")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Session error")
		return
	}

	record, err := h.booking.TicketByKey(middleware.SessionID(session), key)
	if err != nil {
		if errors.Is(err, models.ErrTicketNotFound) {
			respondError(w, http.StatusNotFound, "Ticket not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load ticket")
		return
	}

	pdf, err := h.export.GenerateTicketPDF(record, key)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate ticket")
		return
	}

	filename := fmt.Sprintf("ticket-%s.pdf", strings.ReplaceAll(key, " ", "-"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
