package attendance

import (
	"net/http"

	attendanceerrors "github.com/rizaltohir55/presensi-qr-project/internal/attendance/errors"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/apperror"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) CheckIn(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		writeServiceError(c, attendanceerrors.ErrEmployeeContextMissing)
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CheckIn(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Check-in successful", gin.H{"attendance": resp})
}

func (h *Handler) CheckOut(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		writeServiceError(c, attendanceerrors.ErrEmployeeContextMissing)
		return
	}

	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CheckOut(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Check-out successful", gin.H{"attendance": resp})
}

func (h *Handler) GetMyHistory(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		writeServiceError(c, attendanceerrors.ErrEmployeeContextMissing)
		return
	}

	resp, err := h.service.GetMyHistory(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Attendance history retrieved successfully", gin.H{"attendances": resp})
}

func (h *Handler) GetReport(c *gin.Context) {
	filter := ReportFilter{
		QRCode:     c.Query("qr_code"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		EmployeeID: c.Query("employee_id"),
	}

	resp, err := h.service.GetReport(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Attendance report retrieved successfully", gin.H{"attendances": resp})
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Attendance retrieved successfully", gin.H{"attendance": resp})
}
