package asset

import (
	"fmt"
	"slices"
	"time"

	assetRepo "pcos/database/repository/asset"
	"pcos/models"
)

// AssetService manages the campus asset register and the booking
// lifecycle of each asset.
type AssetService interface {
	Register(asset models.Asset) (*models.Asset, error)
	GetByID(id string) (*models.Asset, error)
	List() ([]*models.Asset, error)
	IsAvailable(assetID string, interval models.TimeInterval) (bool, error)
	Book(assetID, userID string, interval models.TimeInterval) (*models.Booking, error)
	CheckIn(assetID, userID string) error
	CheckOut(assetID, userID, condition string) error
	AddMaintenance(assetID string, interval models.TimeInterval, description string) error
	SetStatus(assetID, status string) error
	QuoteBookingFee(interval models.TimeInterval, ratePerHour float64) float64
}

// DefaultAssetService is the production asset booking engine.
// Now is the injected time source; operations read it once.
type DefaultAssetService struct {
	Repo assetRepo.AssetRepository
	Now  func() time.Time
}

// NewAssetService wires a DefaultAssetService with the wall clock.
func NewAssetService(repo assetRepo.AssetRepository) *DefaultAssetService {
	return &DefaultAssetService{Repo: repo, Now: time.Now}
}

// Register adds a new asset to the register. Fresh assets start AVAILABLE
// unless a valid administrative status was supplied.
func (s *DefaultAssetService) Register(asset models.Asset) (*models.Asset, error) {
	if asset.ID == "" || asset.Name == "" {
		return nil, fmt.Errorf("asset id and name are required")
	}
	if asset.Status == "" {
		asset.Status = models.AssetAvailable
	} else if !slices.Contains(models.ValidAssetStatuses, asset.Status) {
		return nil, NewInvalidStatusError(fmt.Sprintf("invalid status: %s", asset.Status))
	}
	if err := s.Repo.Insert(&asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *DefaultAssetService) GetByID(id string) (*models.Asset, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, NewNotFoundError(err.Error())
	}
	return a, nil
}

func (s *DefaultAssetService) List() ([]*models.Asset, error) {
	return s.Repo.List()
}

// SetStatus applies an administrative status override. It validates the
// status against the enumerated set and does not touch existing bookings.
func (s *DefaultAssetService) SetStatus(assetID, status string) error {
	if !slices.Contains(models.ValidAssetStatuses, status) {
		return NewInvalidStatusError(fmt.Sprintf("invalid status: %s", status))
	}
	err := s.Repo.Mutate(assetID, func(a *models.Asset) error {
		a.Status = status
		return nil
	})
	if err != nil {
		return NewNotFoundError(err.Error())
	}
	return nil
}
