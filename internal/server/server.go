package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"ticketier/internal/handlers"
	"ticketier/internal/middleware"
	"ticketier/internal/services"
)

// Server wires the booking services and handlers into an HTTP handler
type Server struct {
	router chi.Router
}

// New builds a server over the given services and session store
func New(
	catalog *services.CatalogService,
	booking *services.BookingService,
	export *services.ExportService,
	store sessions.Store,
) *Server {
	eventHandler := handlers.NewEventHandler(catalog)
	bookingHandler := handlers.NewBookingHandler(booking, store)
	ticketHandler := handlers.NewTicketHandler(booking, export, store)
	sessionMiddleware := middleware.NewSessionMiddleware(store)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(sessionMiddleware.EnsureSession)

		r.Get("/events", eventHandler.ListEvents)
		r.Get("/events/categories", eventHandler.ListCategories)
		r.Get("/events/{id}", eventHandler.GetEvent)
		r.Post("/events/{id}/booking", bookingHandler.OpenSelector)

		r.Get("/booking", bookingHandler.GetSelection)
		r.Put("/booking/ticket-type", bookingHandler.ChooseTicketType)
		r.Put("/booking/quantity", bookingHandler.SetQuantity)
		r.Post("/booking/confirm", bookingHandler.Confirm)
		r.Delete("/booking", bookingHandler.Cancel)

		r.Get("/tickets", ticketHandler.ListTickets)
		r.Get("/tickets/{key}/download", ticketHandler.DownloadTicket)
	})

	return &Server{router: r}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}
