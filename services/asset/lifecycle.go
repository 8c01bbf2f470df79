package asset

import (
	"errors"
	"fmt"

	"pcos/models"
)

// CheckIn transitions the first ACTIVE booking for userID to ONGOING.
// First-match-wins on the insertion-ordered booking list.
func (s *DefaultAssetService) CheckIn(assetID, userID string) error {
	err := s.Repo.Mutate(assetID, func(a *models.Asset) error {
		for i := range a.Bookings {
			b := &a.Bookings[i]
			if b.UserID == userID && b.Status == models.BookingActive {
				b.Status = models.BookingOngoing
				return nil
			}
		}
		return NewNotFoundError(fmt.Sprintf("no active booking found for user %s on asset %s", userID, a.ID))
	})
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return NewNotFoundError(err.Error())
	}
	return nil
}

// CheckOut completes the first ONGOING booking for userID, recording the
// return condition and timestamp, then re-derives the asset status:
// BOOKED if any ACTIVE booking starts strictly after now, else AVAILABLE.
// The recomputation is skipped while an administrative MAINTENANCE or
// UNAVAILABLE override is set, so check-out cannot silently clear it.
func (s *DefaultAssetService) CheckOut(assetID, userID, condition string) error {
	if condition == "" {
		condition = "GOOD"
	}
	now := s.Now()
	err := s.Repo.Mutate(assetID, func(a *models.Asset) error {
		for i := range a.Bookings {
			b := &a.Bookings[i]
			if b.UserID != userID || b.Status != models.BookingOngoing {
				continue
			}
			b.Status = models.BookingCompleted
			b.Condition = condition
			returned := now
			b.ReturnTime = &returned

			if a.Status == models.AssetMaintenance || a.Status == models.AssetUnavailable {
				return nil
			}
			hasUpcoming := false
			for _, other := range a.Bookings {
				if other.Status == models.BookingActive && other.Interval.Start.After(now) {
					hasUpcoming = true
					break
				}
			}
			if hasUpcoming {
				a.Status = models.AssetBooked
			} else {
				a.Status = models.AssetAvailable
			}
			return nil
		}
		return NewNotFoundError(fmt.Sprintf("no ongoing booking found for user %s on asset %s", userID, a.ID))
	})
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return NewNotFoundError(err.Error())
	}
	return nil
}
