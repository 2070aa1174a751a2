package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ticketier/internal/models"
)

// CatalogService holds the fixed event list for the session and answers
// search, filter, and category queries. Events are supplied once at
// startup and never mutated.
type CatalogService struct {
	events []*models.Event
}

// NewCatalogService creates a new catalog service over the given events
func NewCatalogService(events []*models.Event) *CatalogService {
	return &CatalogService{events: events}
}

// Events returns all catalog events in catalog order
func (s *CatalogService) Events() []*models.Event {
	out := make([]*models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// GetEventByID returns the event with the given ID
func (s *CatalogService) GetEventByID(id int) (*models.Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, models.ErrEventNotFound
}

// Search returns the events matching the term, in catalog order
func (s *CatalogService) Search(term string) []*models.Event {
	return SearchEvents(s.events, term)
}

// Categories returns the distinct event categories in first-seen order
func (s *CatalogService) Categories() []string {
	return EventCategories(s.events)
}

// FilterByCategory returns the events for a category quick-filter.
// This is deliberately the same mechanism as free-text search on the
// category's lowercase form, so a category name that also appears as a
// keyword on unrelated events will match those events too.
func (s *CatalogService) FilterByCategory(category string) []*models.Event {
	return SearchEvents(s.events, strings.ToLower(category))
}

// SearchEvents returns the events whose name, location, or keywords
// case-insensitively contain the term. An empty term matches every
// event. Matching is a plain substring test with no tokenization or
// ranking; result order matches input order.
func SearchEvents(events []*models.Event, term string) []*models.Event {
	matched := make([]*models.Event, 0, len(events))
	for _, event := range events {
		if event.MatchesSearch(term) {
			matched = append(matched, event)
		}
	}
	return matched
}

// EventCategories returns each distinct category exactly once, in order
// of first appearance
func EventCategories(events []*models.Event) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)

	for _, event := range events {
		if event.Category == "" || seen[event.Category] {
			continue
		}
		seen[event.Category] = true
		categories = append(categories, event.Category)
	}

	return categories
}

// LoadEventsFromFile reads a catalog from a JSON file. Malformed events
// are rejected up front so downstream code never has to re-validate.
func LoadEventsFromFile(path string) ([]*models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var events []*models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	for _, event := range events {
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("invalid event %q: %w", event.Name, err)
		}
	}

	return events, nil
}
