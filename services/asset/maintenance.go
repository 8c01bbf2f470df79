package asset

import "pcos/models"

// AddMaintenance appends a maintenance window and forces the asset into
// MAINTENANCE. No overlap check is made against existing active bookings;
// scheduling maintenance over a booked slot is an accepted policy gap that
// surfaces when the booking holder tries to extend or rebook.
func (s *DefaultAssetService) AddMaintenance(assetID string, interval models.TimeInterval, description string) error {
	err := s.Repo.Mutate(assetID, func(a *models.Asset) error {
		a.MaintenanceRecords = append(a.MaintenanceRecords, models.MaintenanceRecord{
			Interval:    interval,
			Description: description,
		})
		a.Status = models.AssetMaintenance
		return nil
	})
	if err != nil {
		return NewNotFoundError(err.Error())
	}
	return nil
}
