package qrcode

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeCheckIn  = "check_in"
	TypeCheckOut = "check_out"
	TypeGeneral  = "general"
)

func IsValidType(t string) bool {
	switch t {
	case TypeCheckIn, TypeCheckOut, TypeGeneral:
		return true
	default:
		return false
	}
}

type QRCode struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Code       string       `gorm:"size:64;not null;uniqueIndex:uq_qr_codes_code"`
	Type       string       `gorm:"size:20;not null"`
	ValidFrom  time.Time    `gorm:"not null"`
	ValidUntil time.Time    `gorm:"not null"`
	LocationID *uuid.UUID   `gorm:"type:uuid"`
	ShiftID    *uuid.UUID   `gorm:"type:uuid"`
	IsActive   bool         `gorm:"default:true"`
	CreatedBy  uuid.UUID    `gorm:"type:uuid;not null"`
	Location   *LocationRef `gorm:"foreignKey:LocationID;references:ID"`
	Shift      *ShiftRef    `gorm:"foreignKey:ShiftID;references:ID"`
	CreatedAt  time.Time    `gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// WindowContains reports whether now falls inside the validity window.
// Both ends are inclusive.
func (q *QRCode) WindowContains(now time.Time) bool {
	return !now.Before(q.ValidFrom) && !now.After(q.ValidUntil)
}

func (q *QRCode) AllowsCheckIn() bool {
	return q.Type == TypeCheckIn || q.Type == TypeGeneral
}

func (q *QRCode) AllowsCheckOut() bool {
	return q.Type == TypeCheckOut || q.Type == TypeGeneral
}

// LocationScope and ShiftScope feed the rotating token derivation.
// An unscoped code contributes the empty string.
func (q *QRCode) LocationScope() string {
	if q.LocationID == nil {
		return ""
	}
	return q.LocationID.String()
}

func (q *QRCode) ShiftScope() string {
	if q.ShiftID == nil {
		return ""
	}
	return q.ShiftID.String()
}

type LocationRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (LocationRef) TableName() string {
	return "locations"
}

type ShiftRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (ShiftRef) TableName() string {
	return "shifts"
}
