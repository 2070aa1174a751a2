package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ticketier/internal/models"
	"ticketier/internal/services"
)

// EventHandler handles event catalog requests
type EventHandler struct {
	catalog *services.CatalogService
}

// NewEventHandler creates a new event handler
func NewEventHandler(catalog *services.CatalogService) *EventHandler {
	return &EventHandler{catalog: catalog}
}

// eventView is the JSON shape of an event in API responses
type eventView struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Location     string              `json:"location"`
	Category     string              `json:"category"`
	Keywords     []string            `json:"keywords"`
	Date         string              `json:"date"`
	Time         string              `json:"time"`
	Description  string              `json:"description"`
	Image        string              `json:"image"`
	TicketTypes  []models.TicketType `json:"ticket_types"`
	DisplayPrice string              `json:"display_price"`
	Bookable     bool                `json:"bookable"`
}

func newEventView(event *models.Event) eventView {
	return eventView{
		ID:           event.ID,
		Name:         event.Name,
		Location:     event.Location,
		Category:     event.Category,
		Keywords:     event.Keywords,
		Date:         event.Date,
		Time:         event.Time,
		Description:  event.Description,
		Image:        event.Image,
		TicketTypes:  event.TicketTypes,
		DisplayPrice: event.DisplayPrice(),
		Bookable:     event.IsBookable(),
	}
}

// ListEvents returns the catalog, optionally narrowed by a free-text
// search term or a category quick-filter. The quick-filter runs through
// the same search mechanism as free text.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var events []*models.Event

	if category := r.URL.Query().Get("category"); category != "" {
		events = h.catalog.FilterByCategory(category)
	} else {
		events = h.catalog.Search(r.URL.Query().Get("search"))
	}

	views := make([]eventView, 0, len(events))
	for _, event := range events {
		views = append(views, newEventView(event))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": views,
		"count":  len(views),
	})
}

// ListCategories returns the distinct event categories in first-seen order
func (h *EventHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}

// GetEvent returns a single event by ID
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.catalog.GetEventByID(id)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "Event not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load event")
		return
	}

	respondJSON(w, http.StatusOK, newEventView(event))
}
