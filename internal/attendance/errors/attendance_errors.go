package attendanceerrors

import (
	"net/http"

	"github.com/rizaltohir55/presensi-qr-project/internal/shared/apperror"
)

var (
	ErrEmployeeContextMissing = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID not found in token. Are you logged in as an employee?",
		http.StatusBadRequest,
	)
	ErrInvalidQR = apperror.New(
		apperror.CodeInvalidInput,
		"QR code not found or invalid",
		http.StatusBadRequest,
	)
	ErrInactiveQR = apperror.New(
		apperror.CodeInvalidState,
		"This QR code is no longer active",
		http.StatusBadRequest,
	)
	ErrQRWindowClosed = apperror.New(
		apperror.CodeInvalidState,
		"This QR code is not valid at this time",
		http.StatusBadRequest,
	)
	ErrWrongQRTypeCheckIn = apperror.New(
		apperror.CodeInvalidState,
		"This QR code cannot be used for check-in",
		http.StatusBadRequest,
	)
	ErrWrongQRTypeCheckOut = apperror.New(
		apperror.CodeInvalidState,
		"This QR code cannot be used for check-out",
		http.StatusBadRequest,
	)
	ErrInvalidQRToken = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid or expired QR token",
		http.StatusBadRequest,
	)
	ErrNoShiftAssigned = apperror.New(
		apperror.CodeInvalidState,
		"You have no shift assigned. Please contact your administrator",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"You have already checked in today",
		http.StatusBadRequest,
	)
	ErrCheckInWindowClosed = apperror.New(
		apperror.CodeInvalidState,
		"The check-in window for your shift has closed",
		http.StatusBadRequest,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"You have not checked in today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"You have already checked out today",
		http.StatusBadRequest,
	)
	ErrCheckOutWindowNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Check-out is not open yet for your shift",
		http.StatusBadRequest,
	)
	ErrOnLeaveToday = apperror.New(
		apperror.CodeInvalidState,
		"You are recorded as on leave today",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Date filters must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
