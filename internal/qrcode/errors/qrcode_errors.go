package qrcodeerrors

import (
	"net/http"

	"github.com/rizaltohir55/presensi-qr-project/internal/shared/apperror"
)

var (
	ErrQRCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"QR code not found",
		http.StatusNotFound,
	)
	ErrInvalidQRCodeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid QR code id",
		http.StatusBadRequest,
	)
	ErrInvalidQRCodeType = apperror.New(
		apperror.CodeInvalidInput,
		"QR code type must be check_in, check_out or general",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"valid_from and valid_until must be RFC3339 timestamps",
		http.StatusBadRequest,
	)
	ErrInvalidValidityWindow = apperror.New(
		apperror.CodeInvalidInput,
		"valid_until must be after valid_from",
		http.StatusBadRequest,
	)
	ErrInvalidLocationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid location id",
		http.StatusBadRequest,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift id",
		http.StatusBadRequest,
	)
	ErrCodeCollision = apperror.New(
		apperror.CodeConflict,
		"Failed to allocate a unique code, please retry",
		http.StatusConflict,
	)
)
