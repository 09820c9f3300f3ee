package location

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a physical attendance point. Coordinates and radius are
// recorded for reporting; check-in does not enforce a geofence.
type Location struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"size:255;not null"`
	Address     *string        `gorm:"type:text"`
	Latitude    *float64       `gorm:"type:decimal(10,7)"`
	Longitude   *float64       `gorm:"type:decimal(10,7)"`
	RadiusM     *int           `gorm:"column:radius_m"`
	Description *string        `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
