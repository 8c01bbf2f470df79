package models

import "time"

// Asset statuses. BOOKED and AVAILABLE are derived at check-out;
// MAINTENANCE and UNAVAILABLE are administrative overrides.
const (
	AssetAvailable   = "AVAILABLE"
	AssetBooked      = "BOOKED"
	AssetMaintenance = "MAINTENANCE"
	AssetUnavailable = "UNAVAILABLE"
)

// Booking lifecycle statuses: ACTIVE -> ONGOING -> COMPLETED.
// COMPLETED is terminal; completed bookings stay on the asset as history.
const (
	BookingActive    = "ACTIVE"
	BookingOngoing   = "ONGOING"
	BookingCompleted = "COMPLETED"
)

// ValidAssetStatuses enumerates the accepted administrative statuses.
var ValidAssetStatuses = []string{AssetAvailable, AssetBooked, AssetMaintenance, AssetUnavailable}

// Asset represents a campus-bookable physical resource (room, equipment).
type Asset struct {
	ID                 string              `json:"id"`                  // Unique asset identifier
	Name               string              `json:"name"`                // Human-readable name
	Type               string              `json:"type"`                // e.g., "room", "projector"
	Location           string              `json:"location"`            // Campus location
	Status             string              `json:"status"`              // AVAILABLE | BOOKED | MAINTENANCE | UNAVAILABLE
	DepositAmount      float64             `json:"deposit_amount"`      // Refundable deposit, if any
	Bookings           []Booking           `json:"bookings"`            // Insertion-ordered booking history
	MaintenanceRecords []MaintenanceRecord `json:"maintenance_records"` // Append-only maintenance windows
}

// Booking is a reservation of an asset by a user. Owned by its Asset and
// mutated only through check-in/check-out transitions.
type Booking struct {
	ID         string       `json:"id"`                    // Unique booking identifier (UUID)
	UserID     string       `json:"user_id"`               // User who made the booking
	Interval   TimeInterval `json:"interval"`              // Half-open [start, end)
	Status     string       `json:"status"`                // ACTIVE | ONGOING | COMPLETED
	Condition  string       `json:"condition,omitempty"`   // Condition tag recorded at check-out
	ReturnTime *time.Time   `json:"return_time,omitempty"` // Check-out timestamp
	CreatedAt  time.Time    `json:"created_at"`            // Timestamp when booking was created
}

// MaintenanceRecord blocks bookings over its window. Never removed.
type MaintenanceRecord struct {
	Interval    TimeInterval `json:"interval"`
	Description string       `json:"description"`
}
