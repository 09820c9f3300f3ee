package events

import "time"

const AttendanceRecordedTopic = "presensi.attendance.recorded.v1"

const (
	AttendanceCheckedIn  = "attendance_checked_in"
	AttendanceCheckedOut = "attendance_checked_out"
)

// AttendanceRecordedEvent is emitted through the outbox whenever an
// employee successfully checks in or out. The recap consumer keys its
// daily counters off Date and Status.
type AttendanceRecordedEvent struct {
	EventType    string    `json:"event_type"`
	AttendanceID string    `json:"attendance_id"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	QRCodeUsed   string    `json:"qr_code_used"`
	OccurredAt   time.Time `json:"occurred_at"`
}
