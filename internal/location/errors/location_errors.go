package locationerrors

import (
	"net/http"

	"github.com/rizaltohir55/presensi-qr-project/internal/shared/apperror"
)

var (
	ErrLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Location not found",
		http.StatusNotFound,
	)
	ErrInvalidLocationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid location id",
		http.StatusBadRequest,
	)
	ErrInvalidCoordinates = apperror.New(
		apperror.CodeInvalidInput,
		"Latitude and longitude must be provided together",
		http.StatusBadRequest,
	)
)
