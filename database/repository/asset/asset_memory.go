package assetRepo

import (
	"fmt"
	"sort"
	"sync"

	"pcos/models"
)

// MemoryAssetRepo is a map-backed AssetRepository. The campus record system
// keeps all state in memory; there is no persistence layer behind it.
type MemoryAssetRepo struct {
	mu     sync.RWMutex
	assets map[string]*models.Asset
}

// NewMemoryAssetRepo returns an empty in-memory asset repository.
func NewMemoryAssetRepo() *MemoryAssetRepo {
	return &MemoryAssetRepo{assets: make(map[string]*models.Asset)}
}

// cloneAsset copies the asset together with its booking and maintenance
// slices, so a returned snapshot cannot observe later in-place mutations.
func cloneAsset(a *models.Asset) *models.Asset {
	copied := *a
	copied.Bookings = append([]models.Booking(nil), a.Bookings...)
	copied.MaintenanceRecords = append([]models.MaintenanceRecord(nil), a.MaintenanceRecords...)
	return &copied
}

func (r *MemoryAssetRepo) Insert(asset *models.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.assets[asset.ID]; exists {
		return fmt.Errorf("asset %s already exists in records", asset.ID)
	}
	r.assets[asset.ID] = asset
	return nil
}

func (r *MemoryAssetRepo) GetByID(id string) (*models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, ok := r.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset %s not found", id)
	}
	return cloneAsset(asset), nil
}

func (r *MemoryAssetRepo) List() ([]*models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, cloneAsset(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryAssetRepo) Mutate(id string, fn func(asset *models.Asset) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[id]
	if !ok {
		return fmt.Errorf("asset %s not found", id)
	}
	return fn(asset)
}
