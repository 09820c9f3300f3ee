package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	attendanceerrors "github.com/rizaltohir55/presensi-qr-project/internal/attendance/errors"
	"github.com/rizaltohir55/presensi-qr-project/internal/employee"
	employeeerrors "github.com/rizaltohir55/presensi-qr-project/internal/employee/errors"
	"github.com/rizaltohir55/presensi-qr-project/internal/events"
	kafkaoutbox "github.com/rizaltohir55/presensi-qr-project/internal/messaging/kafka"
	"github.com/rizaltohir55/presensi-qr-project/internal/qrcode"
	"github.com/rizaltohir55/presensi-qr-project/internal/qrtoken"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/clock"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/contextutil"
	"github.com/rizaltohir55/presensi-qr-project/internal/shift"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// checkInGrace is how long after shift start an employee may still
	// check in (marked late once past the start itself).
	checkInGrace = 15 * time.Minute
	// checkOutEarly is how long before shift end check-out opens.
	checkOutEarly = 15 * time.Minute
)

type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	GetMyHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetReport(ctx context.Context, filter ReportFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	qrRepo       qrcode.Repository
	employeeRepo employee.Repository
	outbox       kafkaoutbox.OutboxRepository
	tokens       qrtoken.Service
	clk          clock.Clock
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	qrRepo qrcode.Repository,
	employeeRepo employee.Repository,
	outbox kafkaoutbox.OutboxRepository,
	tokens qrtoken.Service,
	clk clock.Clock,
) Service {
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		db:           db,
		repo:         repo,
		qrRepo:       qrRepo,
		employeeRepo: employeeRepo,
		outbox:       outbox,
		tokens:       tokens,
		clk:          clk,
		logger:       zap.L().Named("attendance"),
	}
}

// attendanceDay collapses a moment to its UTC calendar date. All window
// math anchors on this date, not on the scan timestamp itself.
func attendanceDay(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	now := s.clk.Now().UTC()

	qr, err := s.validateQR(ctx, req.QRCode, req.Token, now, true)
	if err != nil {
		return AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}
	if emp.Shift == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoShiftAssigned
	}

	today := attendanceDay(now)
	shiftStart, _, err := shiftWindow(today, emp.Shift)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDateForUpdate(ctx, employeeID, today)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, err
		}
		existing = nil
	}

	if existing != nil {
		if existing.Status == StatusOnLeave {
			return AttendanceResponse{}, attendanceerrors.ErrOnLeaveToday
		}
		if existing.CheckInTime != nil {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	if now.After(shiftStart.Add(checkInGrace)) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckInWindowClosed
	}

	status := StatusPresent
	if now.After(shiftStart) {
		status = StatusLate
	}

	checkIn := now
	codeUsed := qr.Code

	var row *Attendance
	if existing == nil {
		row = &Attendance{
			ID:               uuid.New(),
			EmployeeID:       emp.ID,
			Date:             today,
			CheckInTime:      &checkIn,
			CheckInLatitude:  req.Latitude,
			CheckInLongitude: req.Longitude,
			QRCodeUsed:       &codeUsed,
			Status:           status,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return AttendanceResponse{}, mapRepositoryError(err)
		}
	} else {
		// A pre-seeded holiday or absent row is claimed by the scan and
		// its status re-derived from the shift window.
		row = existing
		row.CheckInTime = &checkIn
		row.CheckInLatitude = req.Latitude
		row.CheckInLongitude = req.Longitude
		row.QRCodeUsed = &codeUsed
		row.Status = status
		if err := qtx.Update(ctx, row); err != nil {
			return AttendanceResponse{}, mapRepositoryError(err)
		}
	}

	if err := s.enqueueEvent(ctx, tx, events.AttendanceCheckedIn, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", row.ID.String()),
		zap.String("status", status),
	)

	resp := mapToResponse(*row)
	resp.EmployeeName = emp.Name
	return resp, nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	now := s.clk.Now().UTC()

	if _, err := s.validateQR(ctx, req.QRCode, req.Token, now, false); err != nil {
		return AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}
	if emp.Shift == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoShiftAssigned
	}

	today := attendanceDay(now)
	_, shiftEnd, err := shiftWindow(today, emp.Shift)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDateForUpdate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return AttendanceResponse{}, err
	}

	if row.CheckInTime == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if row.CheckOutTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	// No upper bound: late departures can always close their day.
	if now.Before(shiftEnd.Add(-checkOutEarly)) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutWindowNotOpen
	}

	checkOut := now
	row.CheckOutTime = &checkOut
	row.CheckOutLatitude = req.Latitude
	row.CheckOutLongitude = req.Longitude

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueEvent(ctx, tx, events.AttendanceCheckedOut, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-out recorded",
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", row.ID.String()),
	)

	resp := mapToResponse(*row)
	resp.EmployeeName = emp.Name
	return resp, nil
}

func (s *service) GetMyHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetReport(ctx context.Context, filter ReportFilter) ([]AttendanceResponse, error) {
	for _, d := range []string{filter.DateFrom, filter.DateTo} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, attendanceerrors.ErrInvalidDateFilter
		}
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, employeeerrors.ErrInvalidEmployeeID
		}
	}

	rows, err := s.repo.FindAllFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

// validateQR runs the full gate in order: existence, active flag,
// validity window, type, then the rotating token when one is submitted.
func (s *service) validateQR(ctx context.Context, code, token string, now time.Time, checkIn bool) (*qrcode.QRCode, error) {
	qr, err := s.qrRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrInvalidQR
		}
		return nil, err
	}

	if !qr.IsActive {
		return nil, attendanceerrors.ErrInactiveQR
	}
	if !qr.WindowContains(now) {
		return nil, attendanceerrors.ErrQRWindowClosed
	}
	if checkIn && !qr.AllowsCheckIn() {
		return nil, attendanceerrors.ErrWrongQRTypeCheckIn
	}
	if !checkIn && !qr.AllowsCheckOut() {
		return nil, attendanceerrors.ErrWrongQRTypeCheckOut
	}

	if token != "" && !s.tokens.Validate(token, qr.LocationScope(), qr.ShiftScope()) {
		return nil, attendanceerrors.ErrInvalidQRToken
	}

	return qr, nil
}

func shiftWindow(day time.Time, sh *employee.ShiftRef) (time.Time, time.Time, error) {
	startOfs, err := shift.ParseTimeOfDay(sh.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("shift %s has malformed start time: %w", sh.ID, err)
	}
	endOfs, err := shift.ParseTimeOfDay(sh.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("shift %s has malformed end time: %w", sh.ID, err)
	}
	return day.Add(startOfs), day.Add(endOfs), nil
}

func (s *service) enqueueEvent(ctx context.Context, tx *sql.Tx, eventType string, row *Attendance) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AttendanceRecordedEvent{
		EventType:    eventType,
		AttendanceID: row.ID.String(),
		EmployeeID:   row.EmployeeID.String(),
		Date:         row.Date.Format("2006-01-02"),
		Status:       row.Status,
		OccurredAt:   s.clk.Now().UTC(),
	}
	if row.QRCodeUsed != nil {
		event.QRCodeUsed = *row.QRCodeUsed
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafkaoutbox.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   row.ID.String(),
		EventType:     eventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafkaoutbox.OutboxStatusPending,
	})
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                a.ID.String(),
		EmployeeID:        a.EmployeeID.String(),
		Date:              a.Date.Format("2006-01-02"),
		CheckInLatitude:   a.CheckInLatitude,
		CheckInLongitude:  a.CheckInLongitude,
		CheckOutLatitude:  a.CheckOutLatitude,
		CheckOutLongitude: a.CheckOutLongitude,
		Status:            a.Status,
	}
	if a.CheckInTime != nil {
		v := a.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if a.CheckOutTime != nil {
		v := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	if a.QRCodeUsed != nil {
		resp.QRCodeUsed = *a.QRCodeUsed
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res
}
