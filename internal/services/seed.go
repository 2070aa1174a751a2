package services

import "ticketier/internal/models"

// DefaultEvents returns the built-in event catalog used when no catalog
// file is configured
func DefaultEvents() []*models.Event {
	return []*models.Event{
		{
			ID:          1,
			Name:        "Jazz Night",
			Location:    "Austin",
			Category:    "Music",
			Keywords:    []string{"music", "jazz", "live"},
			Date:        "2026-09-12",
			Time:        "7:00 PM",
			Description: "An intimate evening of live jazz with a rotating lineup of local quartets.",
			Image:       "/images/jazz-night.jpg",
			TicketTypes: []models.TicketType{
				{Type: "General Admission", Price: 2500, Available: 120},
				{Type: "VIP", Price: 5000, Available: 10},
			},
		},
		{
			ID:          2,
			Name:        "Tech Expo",
			Location:    "Boston",
			Category:    "Technology",
			Keywords:    []string{"technology", "startups", "innovation"},
			Date:        "2026-10-03",
			Time:        "9:00 AM",
			Description: "Two floors of startup demos, hardware showcases, and founder talks.",
			Image:       "/images/tech-expo.jpg",
			TicketTypes: []models.TicketType{
				{Type: "General Admission", Price: 4000, Available: 500},
				{Type: "Student", Price: 1500, Available: 200},
				{Type: "VIP", Price: 9000, Available: 25},
			},
		},
		{
			ID:          3,
			Name:        "Downtown Art Walk",
			Location:    "Portland",
			Category:    "Art",
			Keywords:    []string{"art", "gallery", "exhibition"},
			Date:        "2026-09-20",
			Time:        "5:30 PM",
			Description: "A self-guided walk through twelve galleries with artists in attendance.",
			Image:       "/images/art-walk.jpg",
			TicketTypes: []models.TicketType{
				{Type: "General Admission", Price: 1000, Available: 300},
			},
		},
		{
			ID:          4,
			Name:        "Indie Music Festival",
			Location:    "Nashville",
			Category:    "Music",
			Keywords:    []string{"music", "festival", "indie"},
			Date:        "2026-11-07",
			Time:        "2:00 PM",
			Description: "An all-day outdoor festival featuring eighteen indie acts on three stages.",
			Image:       "/images/indie-festival.jpg",
			TicketTypes: []models.TicketType{
				{Type: "General Admission", Price: 6500, Available: 1000},
				{Type: "VIP", Price: 15000, Available: 50},
			},
		},
		{
			ID:          5,
			Name:        "Community Open Mic",
			Location:    "Austin",
			Category:    "Community",
			Keywords:    []string{"community", "open mic", "comedy", "poetry"},
			Date:        "2026-09-18",
			Time:        "8:00 PM",
			Description: "A free neighborhood open mic. No tickets required, just show up.",
			Image:       "/images/open-mic.jpg",
			TicketTypes: []models.TicketType{},
		},
	}
}
