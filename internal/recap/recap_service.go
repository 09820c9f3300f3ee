package recap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rizaltohir55/presensi-qr-project/internal/events"

	"github.com/redis/go-redis/v9"
)

const (
	recapKeyPrefix = "recap:attendance:"
	recapTTL       = 30 * 24 * time.Hour

	fieldPresent    = "present"
	fieldLate       = "late"
	fieldCheckedOut = "checked_out"
)

// DailyRecap is the running counter set for one calendar date,
// maintained from the attendance event stream.
type DailyRecap struct {
	Date       string `json:"date"`
	Present    int64  `json:"present"`
	Late       int64  `json:"late"`
	CheckedOut int64  `json:"checked_out"`
}

type Service interface {
	Apply(ctx context.Context, event events.AttendanceRecordedEvent) error
	GetDaily(ctx context.Context, date string) (DailyRecap, error)
}

type service struct {
	rdb *redis.Client
}

func NewService(rdb *redis.Client) Service {
	return &service{rdb: rdb}
}

func recapKey(date string) string {
	return recapKeyPrefix + date
}

func (s *service) Apply(ctx context.Context, event events.AttendanceRecordedEvent) error {
	key := recapKey(event.Date)

	var field string
	switch event.EventType {
	case events.AttendanceCheckedIn:
		switch event.Status {
		case "late":
			field = fieldLate
		default:
			field = fieldPresent
		}
	case events.AttendanceCheckedOut:
		field = fieldCheckedOut
	default:
		return fmt.Errorf("unknown attendance event type %q", event.EventType)
	}

	if err := s.rdb.HIncrBy(ctx, key, field, 1).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, recapTTL).Err()
}

func (s *service) GetDaily(ctx context.Context, date string) (DailyRecap, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return DailyRecap{}, fmt.Errorf("invalid recap date %q: %w", date, err)
	}

	fields, err := s.rdb.HGetAll(ctx, recapKey(date)).Result()
	if err != nil {
		return DailyRecap{}, err
	}

	recap := DailyRecap{Date: date}
	recap.Present = parseCount(fields[fieldPresent])
	recap.Late = parseCount(fields[fieldLate])
	recap.CheckedOut = parseCount(fields[fieldCheckedOut])
	return recap, nil
}

func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
