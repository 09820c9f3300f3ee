package recap

import (
	"context"
	"testing"
	"time"

	"github.com/rizaltohir55/presensi-qr-project/internal/events"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRecapService_Apply(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb)

	key := "recap:attendance:2025-03-10"

	mock.ExpectHIncrBy(key, "present", 1).SetVal(1)
	mock.ExpectExpire(key, 30*24*time.Hour).SetVal(true)

	err := svc.Apply(context.Background(), events.AttendanceRecordedEvent{
		EventType: events.AttendanceCheckedIn,
		Date:      "2025-03-10",
		Status:    "present",
	})
	assert.NoError(t, err)

	mock.ExpectHIncrBy(key, "late", 1).SetVal(1)
	mock.ExpectExpire(key, 30*24*time.Hour).SetVal(true)

	err = svc.Apply(context.Background(), events.AttendanceRecordedEvent{
		EventType: events.AttendanceCheckedIn,
		Date:      "2025-03-10",
		Status:    "late",
	})
	assert.NoError(t, err)

	mock.ExpectHIncrBy(key, "checked_out", 1).SetVal(1)
	mock.ExpectExpire(key, 30*24*time.Hour).SetVal(true)

	err = svc.Apply(context.Background(), events.AttendanceRecordedEvent{
		EventType: events.AttendanceCheckedOut,
		Date:      "2025-03-10",
		Status:    "present",
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecapService_Apply_UnknownEventType(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	svc := NewService(rdb)

	err := svc.Apply(context.Background(), events.AttendanceRecordedEvent{
		EventType: "attendance_exploded",
		Date:      "2025-03-10",
	})
	assert.Error(t, err)
}

func TestRecapService_GetDaily(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb)

	mock.ExpectHGetAll("recap:attendance:2025-03-10").SetVal(map[string]string{
		"present":     "12",
		"late":        "3",
		"checked_out": "9",
	})

	recap, err := svc.GetDaily(context.Background(), "2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, int64(12), recap.Present)
	assert.Equal(t, int64(3), recap.Late)
	assert.Equal(t, int64(9), recap.CheckedOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecapService_GetDaily_EmptyDay(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb)

	mock.ExpectHGetAll("recap:attendance:2025-03-11").SetVal(map[string]string{})

	recap, err := svc.GetDaily(context.Background(), "2025-03-11")
	assert.NoError(t, err)
	assert.Zero(t, recap.Present)
	assert.Zero(t, recap.Late)
	assert.Zero(t, recap.CheckedOut)
}

func TestRecapService_GetDaily_InvalidDate(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	svc := NewService(rdb)

	_, err := svc.GetDaily(context.Background(), "10-03-2025")
	assert.Error(t, err)
}
