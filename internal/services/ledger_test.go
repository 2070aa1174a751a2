package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketier/internal/models"
	"ticketier/internal/services"
)

func sampleRecord(n int) models.TicketRecord {
	return models.TicketRecord{
		ID:         fmt.Sprintf("record-%d", n),
		EventName:  "Jazz Night",
		EventDate:  "2026-09-12",
		EventTime:  "7:00 PM",
		TicketType: "VIP",
		Quantity:   n,
		TotalPrice: 5000 * n,
	}
}

func TestTicketLedger_AppendIsMonotonic(t *testing.T) {
	ledger := services.NewTicketLedger()
	assert.Equal(t, 0, ledger.Len())

	for i := 1; i <= 5; i++ {
		ledger.Append(sampleRecord(i))
		assert.Equal(t, i, ledger.Len())
	}

	// Prior records never change
	records := ledger.All()
	require.Len(t, records, 5)
	for i, record := range records {
		assert.Equal(t, i+1, record.Quantity)
	}
}

func TestTicketLedger_AllReturnsCopy(t *testing.T) {
	ledger := services.NewTicketLedger()
	ledger.Append(sampleRecord(1))

	snapshot := ledger.All()
	snapshot[0].Quantity = 999

	again := ledger.All()
	assert.Equal(t, 1, again[0].Quantity)
}

func TestTicketLedger_FindByKey(t *testing.T) {
	ledger := services.NewTicketLedger()
	ledger.Append(sampleRecord(1))
	ledger.Append(sampleRecord(2))

	record, ok := ledger.FindByKey("Jazz Night-VIP-1")
	require.True(t, ok)
	assert.Equal(t, 2, record.Quantity)

	_, ok = ledger.FindByKey("Jazz Night-VIP-9")
	assert.False(t, ok)

	// Keys stay stable as the ledger grows
	ledger.Append(sampleRecord(3))
	record, ok = ledger.FindByKey("Jazz Night-VIP-1")
	require.True(t, ok)
	assert.Equal(t, 2, record.Quantity)
}

func TestLedgerStore_PerSessionIsolation(t *testing.T) {
	store := services.NewLedgerStore()

	store.Ledger("session-a").Append(sampleRecord(1))

	assert.Equal(t, 1, store.Ledger("session-a").Len())
	assert.Equal(t, 0, store.Ledger("session-b").Len())

	// The same session always gets the same ledger back
	store.Ledger("session-a").Append(sampleRecord(2))
	assert.Equal(t, 2, store.Ledger("session-a").Len())
}
