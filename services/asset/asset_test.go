package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assetRepo "pcos/database/repository/asset"
	"pcos/models"
)

func newTestService(t *testing.T, now time.Time) *DefaultAssetService {
	t.Helper()
	svc := NewAssetService(assetRepo.NewMemoryAssetRepo())
	svc.Now = func() time.Time { return now }
	_, err := svc.Register(models.Asset{ID: "A1", Name: "Projector", Type: "equipment", Location: "LAB_2"})
	require.NoError(t, err)
	return svc
}

func interval(t *testing.T, start, end string) models.TimeInterval {
	t.Helper()
	iv, err := models.ParseBookingInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestRegisterDefaultsToAvailable(t *testing.T) {
	svc := newTestService(t, time.Now())
	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.AssetAvailable, a.Status)
}

func TestRegisterRejectsUnknownStatus(t *testing.T) {
	svc := NewAssetService(assetRepo.NewMemoryAssetRepo())
	_, err := svc.Register(models.Asset{ID: "A2", Name: "Room", Status: "BROKEN"})
	var invalid *InvalidStatusError
	assert.ErrorAs(t, err, &invalid)
}

func TestBookRejectsOverlapAcceptsBackToBack(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 10:00", "01-01-2025 11:00"))
	require.NoError(t, err)

	// Overlapping request is rejected with a conflict.
	_, err = svc.Book("A1", "U2", interval(t, "01-01-2025 10:30", "01-01-2025 11:30"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	// A slot sharing only the boundary instant is accepted.
	_, err = svc.Book("A1", "U2", interval(t, "01-01-2025 11:00", "01-01-2025 12:00"))
	require.NoError(t, err)
}

func TestBookDoesNotChangeAssetStatus(t *testing.T) {
	svc := newTestService(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)

	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.AssetAvailable, a.Status)
}

func TestBookingLifecycleScenario(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 45, 0, 0, time.UTC)
	svc := newTestService(t, now)

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)

	_, err = svc.Book("A1", "U2", interval(t, "01-01-2025 09:30", "01-01-2025 10:30"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, svc.CheckIn("A1", "U1"))
	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingOngoing, a.Bookings[0].Status)

	require.NoError(t, svc.CheckOut("A1", "U1", ""))
	a, err = svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, a.Bookings[0].Status)
	assert.Equal(t, "GOOD", a.Bookings[0].Condition)
	require.NotNil(t, a.Bookings[0].ReturnTime)
	assert.Equal(t, now, *a.Bookings[0].ReturnTime)

	// The completed booking no longer blocks the slot.
	_, err = svc.Book("A1", "U2", interval(t, "01-01-2025 09:30", "01-01-2025 10:30"))
	require.NoError(t, err)
}

func TestCheckInWithoutActiveBooking(t *testing.T) {
	svc := newTestService(t, time.Now())

	err := svc.CheckIn("A1", "U9")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	// Nothing was mutated.
	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Empty(t, a.Bookings)
	assert.Equal(t, models.AssetAvailable, a.Status)
}

func TestCheckOutRequiresOngoing(t *testing.T) {
	svc := newTestService(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)

	// Still ACTIVE; check-out needs an ONGOING booking.
	err = svc.CheckOut("A1", "U1", "GOOD")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCheckOutDerivesBookedFromUpcoming(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)
	_, err = svc.Book("A1", "U2", interval(t, "01-01-2025 14:00", "01-01-2025 15:00"))
	require.NoError(t, err)

	require.NoError(t, svc.CheckIn("A1", "U1"))
	require.NoError(t, svc.CheckOut("A1", "U1", "GOOD"))

	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.AssetBooked, a.Status)
}

func TestCheckOutKeepsAdministrativeOverride(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)
	require.NoError(t, svc.CheckIn("A1", "U1"))

	require.NoError(t, svc.SetStatus("A1", models.AssetMaintenance))
	require.NoError(t, svc.CheckOut("A1", "U1", "DAMAGED"))

	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.AssetMaintenance, a.Status)
	assert.Equal(t, models.BookingCompleted, a.Bookings[0].Status)
	assert.Equal(t, "DAMAGED", a.Bookings[0].Condition)
}

func TestMaintenanceBlocksBooking(t *testing.T) {
	svc := newTestService(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))

	require.NoError(t, svc.AddMaintenance("A1",
		interval(t, "02-01-2025 09:00", "02-01-2025 17:00"), "annual service"))

	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.AssetMaintenance, a.Status)

	// MAINTENANCE blocks everything, even outside the window.
	_, err = svc.Book("A1", "U1", interval(t, "03-01-2025 09:00", "03-01-2025 10:00"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	// Once the override clears, the window itself still blocks.
	require.NoError(t, svc.SetStatus("A1", models.AssetAvailable))
	_, err = svc.Book("A1", "U1", interval(t, "02-01-2025 10:00", "02-01-2025 11:00"))
	require.ErrorAs(t, err, &conflict)

	_, err = svc.Book("A1", "U1", interval(t, "03-01-2025 09:00", "03-01-2025 10:00"))
	require.NoError(t, err)
}

func TestSetStatusValidation(t *testing.T) {
	svc := newTestService(t, time.Now())

	var invalid *InvalidStatusError
	assert.ErrorAs(t, svc.SetStatus("A1", "LOST"), &invalid)

	require.NoError(t, svc.SetStatus("A1", models.AssetUnavailable))
	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.AssetUnavailable, a.Status)

	available, err := svc.IsAvailable("A1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)
	assert.False(t, available)
}

func TestOperationsOnUnknownAsset(t *testing.T) {
	svc := newTestService(t, time.Now())

	var notFound *NotFoundError
	_, err := svc.Book("A9", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, svc.CheckIn("A9", "U1"), &notFound)
	assert.ErrorAs(t, svc.CheckOut("A9", "U1", ""), &notFound)
	assert.ErrorAs(t, svc.SetStatus("A9", models.AssetAvailable), &notFound)
}

func TestQuoteBookingFee(t *testing.T) {
	svc := newTestService(t, time.Now())
	fee := svc.QuoteBookingFee(interval(t, "01-01-2025 09:00", "01-01-2025 11:30"), 200)
	assert.Equal(t, 500.0, fee)
}

func TestFirstMatchWinsAcrossBookings(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	_, err := svc.Book("A1", "U1", interval(t, "01-01-2025 09:00", "01-01-2025 10:00"))
	require.NoError(t, err)
	_, err = svc.Book("A1", "U1", interval(t, "01-01-2025 11:00", "01-01-2025 12:00"))
	require.NoError(t, err)

	// Check-in picks the earliest-inserted ACTIVE booking for the user.
	require.NoError(t, svc.CheckIn("A1", "U1"))
	a, err := svc.GetByID("A1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingOngoing, a.Bookings[0].Status)
	assert.Equal(t, models.BookingActive, a.Bookings[1].Status)
}
