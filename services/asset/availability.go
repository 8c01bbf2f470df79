package asset

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"pcos/models"
)

// assetFree reports whether the candidate interval can be booked on the
// asset. An administrative MAINTENANCE or UNAVAILABLE status blocks
// everything regardless of intervals. Otherwise the candidate must not
// overlap any ACTIVE or ONGOING booking nor any maintenance window,
// irrespective of where those windows sit relative to now. COMPLETED
// bookings never block.
func assetFree(a *models.Asset, interval models.TimeInterval) bool {
	if a.Status == models.AssetMaintenance || a.Status == models.AssetUnavailable {
		return false
	}
	for _, b := range a.Bookings {
		if b.Status != models.BookingActive && b.Status != models.BookingOngoing {
			continue
		}
		if interval.Overlaps(b.Interval) {
			return false
		}
	}
	for _, m := range a.MaintenanceRecords {
		if interval.Overlaps(m.Interval) {
			return false
		}
	}
	return true
}

// IsAvailable answers whether the asset can take a booking over interval.
func (s *DefaultAssetService) IsAvailable(assetID string, interval models.TimeInterval) (bool, error) {
	available := false
	err := s.Repo.Mutate(assetID, func(a *models.Asset) error {
		available = assetFree(a, interval)
		return nil
	})
	if err != nil {
		return false, NewNotFoundError(err.Error())
	}
	return available, nil
}

// Book reserves the asset for userID over interval. The availability check
// and the booking append run under the same repository lock, so concurrent
// requests for the same slot cannot both pass the check. Booking an asset
// does not change the asset's status; that only moves at check-out.
func (s *DefaultAssetService) Book(assetID, userID string, interval models.TimeInterval) (*models.Booking, error) {
	now := s.Now()
	var booked *models.Booking
	err := s.Repo.Mutate(assetID, func(a *models.Asset) error {
		if !assetFree(a, interval) {
			return NewConflictError(fmt.Sprintf("asset %s is not available from %s to %s",
				a.ID,
				interval.Start.Format(models.BookingTimeLayout),
				interval.End.Format(models.BookingTimeLayout)))
		}
		b := models.Booking{
			ID:        uuid.New().String(),
			UserID:    userID,
			Interval:  interval,
			Status:    models.BookingActive,
			CreatedAt: now,
		}
		a.Bookings = append(a.Bookings, b)
		booked = &a.Bookings[len(a.Bookings)-1]
		return nil
	})
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		return nil, NewNotFoundError(err.Error())
	}
	copied := *booked
	return &copied, nil
}

// QuoteBookingFee computes hours_between x rate for a booking interval.
func (s *DefaultAssetService) QuoteBookingFee(interval models.TimeInterval, ratePerHour float64) float64 {
	return interval.Hours() * ratePerHour
}
