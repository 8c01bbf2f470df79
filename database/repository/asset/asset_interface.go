package assetRepo

import "pcos/models"

// AssetRepository defines data access for campus assets.
// Mutate runs fn under the repository's write lock so that
// check-then-append sequences (availability check + booking insert)
// serialize per repository.
type AssetRepository interface {
	Insert(asset *models.Asset) error
	GetByID(id string) (*models.Asset, error)
	List() ([]*models.Asset, error)
	Mutate(id string, fn func(asset *models.Asset) error) error
}
