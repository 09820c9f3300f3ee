package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name       string       `gorm:"size:255;not null"`
	Email      *string      `gorm:"size:255;uniqueIndex:uq_employees_email"`
	Phone      *string      `gorm:"size:50"`
	Position   *string      `gorm:"size:255"`
	ShiftID    *uuid.UUID   `gorm:"type:uuid"`
	LocationID *uuid.UUID   `gorm:"type:uuid"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_employees_user"`
	IsActive   bool         `gorm:"default:true"`
	Shift      *ShiftRef    `gorm:"foreignKey:ShiftID;references:ID"`
	Location   *LocationRef `gorm:"foreignKey:LocationID;references:ID"`
	CreatedAt  time.Time    `gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

type ShiftRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"column:name"`
	StartTime string    `gorm:"column:start_time"`
	EndTime   string    `gorm:"column:end_time"`
}

func (ShiftRef) TableName() string {
	return "shifts"
}

type LocationRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (LocationRef) TableName() string {
	return "locations"
}
