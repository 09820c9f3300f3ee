package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusOnLeave = "on_leave"
	StatusHoliday = "holiday"
)

// Attendance is the one-row-per-employee-per-day record. The unique
// index is the last line of defense against double check-in when two
// requests race past the row lock.
type Attendance struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EmployeeID        uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date              time.Time    `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	CheckInTime       *time.Time   `gorm:"column:check_in_time"`
	CheckOutTime      *time.Time   `gorm:"column:check_out_time"`
	CheckInLatitude   *float64     `gorm:"type:decimal(10,7)"`
	CheckInLongitude  *float64     `gorm:"type:decimal(10,7)"`
	CheckOutLatitude  *float64     `gorm:"type:decimal(10,7)"`
	CheckOutLongitude *float64     `gorm:"type:decimal(10,7)"`
	QRCodeUsed        *string      `gorm:"size:64"`
	Status            string       `gorm:"size:20;not null;default:'absent'"`
	Employee          *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	CreatedAt         time.Time    `gorm:"autoCreateTime"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime"`
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
