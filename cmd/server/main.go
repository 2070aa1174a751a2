package main

import (
	"encoding/gob"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"ticketier/internal/config"
	"ticketier/internal/models"
	"ticketier/internal/server"
	"ticketier/internal/services"
)

func main() {
	// Register types for session serialization
	gob.Register(&models.Selection{})
	gob.Register(models.TicketType{})
	gob.Register([]models.TicketType{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Load the event catalog
	events := services.DefaultEvents()
	if cfg.Catalog.Path != "" {
		events, err = services.LoadEventsFromFile(cfg.Catalog.Path)
		if err != nil {
			log.Fatal("Failed to load catalog:", err)
		}
		log.Printf("Loaded %d events from %s", len(events), cfg.Catalog.Path)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize services
	catalogService := services.NewCatalogService(events)
	ledgerStore := services.NewLedgerStore()
	bookingService := services.NewBookingService(catalogService, ledgerStore, services.StaticGate{Target: "/mainapp/tickets"})
	exportService := services.NewExportService()

	srv := server.New(catalogService, bookingService, exportService, sessionStore)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal("Server failed:", err)
	}
}
