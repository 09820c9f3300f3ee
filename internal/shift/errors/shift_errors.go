package shifterrors

import (
	"net/http"

	"github.com/rizaltohir55/presensi-qr-project/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrShiftNameTaken = apperror.New(
		apperror.CodeConflict,
		"A shift with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Shift times must use the HH:MM or HH:MM:SS format",
		http.StatusBadRequest,
	)
	ErrInvalidShiftTimes = apperror.New(
		apperror.CodeInvalidInput,
		"Shift start time must be before its end time",
		http.StatusBadRequest,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift id",
		http.StatusBadRequest,
	)
)
