package entity

import (
	"time"

	"github.com/google/uuid"
)

// StorageLocation represents a storage location for data transfer between layers.
type StorageLocation struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LocationType string    `json:"location_type"`
	Capacity     *int      `json:"capacity,omitempty"`
	Temperature  *float32  `json:"temperature,omitempty"`
	Humidity     *float32  `json:"humidity,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
