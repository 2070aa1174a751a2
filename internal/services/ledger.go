package services

import (
	"sync"

	"ticketier/internal/models"
)

// TicketLedger is the append-only, session-lifetime record of confirmed
// bookings. Records are never updated or removed; the ledger exists only
// in memory and dies with the session.
type TicketLedger struct {
	mu      sync.RWMutex
	records []models.TicketRecord
}

// NewTicketLedger creates an empty ledger
func NewTicketLedger() *TicketLedger {
	return &TicketLedger{}
}

// Append adds a record to the end of the ledger. Append always
// succeeds; the caller is responsible for handing over a well-formed
// record.
func (l *TicketLedger) Append(record models.TicketRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

// All returns a snapshot of the ledger in insertion order. The returned
// slice is a copy; mutating it does not affect the ledger.
func (l *TicketLedger) All() []models.TicketRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.TicketRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records in the ledger
func (l *TicketLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

// FindByKey returns the record addressed by an export key
// (eventName-ticketType-index). Keys are stable for the session because
// records are never removed or reordered.
func (l *TicketLedger) FindByKey(key string) (models.TicketRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i, record := range l.records {
		if record.ExportKey(i) == key {
			return record, true
		}
	}
	return models.TicketRecord{}, false
}

// LedgerStore hands out one ledger per session. Ledgers are created
// empty on first use and are dropped with the process; there is no
// durable storage behind them.
type LedgerStore struct {
	mu      sync.Mutex
	ledgers map[string]*TicketLedger
}

// NewLedgerStore creates a new ledger store
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		ledgers: make(map[string]*TicketLedger),
	}
}

// Ledger returns the ledger for the given session ID, creating it if
// the session has not booked anything yet
func (s *LedgerStore) Ledger(sessionID string) *TicketLedger {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[sessionID]
	if !ok {
		ledger = NewTicketLedger()
		s.ledgers[sessionID] = ledger
	}
	return ledger
}
