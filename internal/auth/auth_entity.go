package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:255;not null;uniqueIndex:uq_users_username"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	Role         string    `gorm:"size:50;not null;default:'employee'"`
	Employee     *EmployeeRef `gorm:"foreignKey:UserID;references:ID"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// EmployeeRef is a read-only projection of the employee profile paired
// with a login account. Admin accounts have no paired profile.
type EmployeeRef struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid"`
	Name       string     `gorm:"column:name"`
	IsActive   bool       `gorm:"column:is_active"`
	ShiftID    *uuid.UUID `gorm:"type:uuid"`
	LocationID *uuid.UUID `gorm:"type:uuid"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
