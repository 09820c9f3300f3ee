package recap

import (
	"net/http"
	"time"

	"github.com/rizaltohir55/presensi-qr-project/internal/middleware"
	"github.com/rizaltohir55/presensi-qr-project/internal/rbac"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetDaily serves the dashboard counters. Defaults to today (UTC) when
// no date is given.
func (h *Handler) GetDaily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	recap, err := h.service.GetDaily(c.Request.Context(), date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid recap date, expected YYYY-MM-DD", nil)
		return
	}

	response.Success(c, http.StatusOK, "Attendance recap retrieved successfully", gin.H{"recap": recap})
}

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	recaps := r.Group("/attendance-recap")

	recaps.Use(middleware.AuthMiddleware())

	{
		recaps.GET("", middleware.RBACAuthorize(rbacService, "attendance_report", "read"), h.GetDaily)
	}
}
