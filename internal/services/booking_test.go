package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketier/internal/models"
	"ticketier/internal/services"
)

// recordingGate counts confirmations so tests can assert the gate was
// signalled exactly once per booking
type recordingGate struct {
	signals int
	target  string
}

func (g *recordingGate) BookingConfirmed() string {
	g.signals++
	return g.target
}

func newBookingFixture() (*services.BookingService, *recordingGate, *services.LedgerStore) {
	catalog := services.NewCatalogService(services.DefaultEvents())
	ledgers := services.NewLedgerStore()
	gate := &recordingGate{target: "/mainapp/tickets"}
	return services.NewBookingService(catalog, ledgers, gate), gate, ledgers
}

func TestBookingService_Open(t *testing.T) {
	booking, _, _ := newBookingFixture()

	sel, err := booking.Open(1)
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", sel.EventName)
	assert.Equal(t, 1, sel.Quantity)
	assert.Equal(t, models.SelectionOpened, sel.State)

	_, err = booking.Open(99)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestBookingService_ConfirmFlow(t *testing.T) {
	booking, gate, _ := newBookingFixture()

	sel, err := booking.Open(1)
	require.NoError(t, err)

	require.NoError(t, booking.ChooseTicketType(sel, "VIP"))
	require.NoError(t, booking.SetQuantity(sel, 3))
	require.True(t, sel.CanConfirm())

	record, next, err := booking.Confirm("session-a", sel)
	require.NoError(t, err)

	assert.Equal(t, "Jazz Night", record.EventName)
	assert.Equal(t, "VIP", record.TicketType)
	assert.Equal(t, 3, record.Quantity)
	assert.Equal(t, 15000, record.TotalPrice)
	assert.Equal(t, "/mainapp/tickets", next)
	assert.Equal(t, 1, gate.signals)

	tickets := booking.Tickets("session-a")
	require.Len(t, tickets, 1)
	assert.Equal(t, record.ID, tickets[0].ID)

	// Other sessions see nothing
	assert.Empty(t, booking.Tickets("session-b"))
}

func TestBookingService_ConfirmNotReady(t *testing.T) {
	booking, gate, _ := newBookingFixture()

	sel, err := booking.Open(1)
	require.NoError(t, err)

	// No type chosen yet
	_, _, err = booking.Confirm("session-a", sel)
	assert.ErrorIs(t, err, models.ErrSelectionNotReady)
	assert.Zero(t, gate.signals)
	assert.Empty(t, booking.Tickets("session-a"))
}

func TestBookingService_InvalidQuantityRetainsPrior(t *testing.T) {
	booking, _, _ := newBookingFixture()

	sel, err := booking.Open(1)
	require.NoError(t, err)
	require.NoError(t, booking.ChooseTicketType(sel, "VIP"))
	require.NoError(t, booking.SetQuantity(sel, 2))

	assert.ErrorIs(t, booking.SetQuantity(sel, 0), models.ErrInvalidQuantity)
	assert.Equal(t, 2, sel.Quantity)
	assert.True(t, sel.CanConfirm())
}

func TestBookingService_AdvisoryAvailability(t *testing.T) {
	booking, _, _ := newBookingFixture()

	// The seed gives Jazz Night 10 VIP tickets. Booking all of them
	// repeatedly succeeds: availability caps a single selection's
	// input but is never decremented by a confirmed booking.
	for i := 0; i < 3; i++ {
		sel, err := booking.Open(1)
		require.NoError(t, err)
		require.NoError(t, booking.ChooseTicketType(sel, "VIP"))
		require.NoError(t, booking.SetQuantity(sel, 10))

		_, _, err = booking.Confirm("session-a", sel)
		require.NoError(t, err)
	}

	assert.Len(t, booking.Tickets("session-a"), 3)
}

func TestBookingService_TicketByKey(t *testing.T) {
	booking, _, _ := newBookingFixture()

	sel, err := booking.Open(1)
	require.NoError(t, err)
	require.NoError(t, booking.ChooseTicketType(sel, "VIP"))
	require.NoError(t, booking.SetQuantity(sel, 3))
	_, _, err = booking.Confirm("session-a", sel)
	require.NoError(t, err)

	record, err := booking.TicketByKey("session-a", "Jazz Night-VIP-0")
	require.NoError(t, err)
	assert.Equal(t, 3, record.Quantity)

	_, err = booking.TicketByKey("session-a", "Jazz Night-VIP-1")
	assert.ErrorIs(t, err, models.ErrTicketNotFound)

	// Keys are scoped to the session that booked them
	_, err = booking.TicketByKey("session-b", "Jazz Night-VIP-0")
	assert.ErrorIs(t, err, models.ErrTicketNotFound)
}
