package attendance

import (
	"github.com/rizaltohir55/presensi-qr-project/internal/middleware"
	"github.com/rizaltohir55/presensi-qr-project/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterEmployeeRoutes wires the scan endpoints used by the mobile
// scanner. Check-in and check-out carry an idempotency guard so a
// double-tap does not race itself.
func RegisterEmployeeRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	attendances := r.Group("/attendance")

	attendances.Use(middleware.AuthMiddleware())

	{
		attendances.POST("/check-in",
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb),
			h.CheckIn,
		)
		attendances.POST("/check-out",
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb),
			h.CheckOut,
		)
		attendances.GET("/history",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetMyHistory,
		)
	}
}

func RegisterAdminRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	attendances := r.Group("/attendances")

	attendances.Use(middleware.AuthMiddleware())

	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance_report", "read"), h.GetReport)
		attendances.GET("/:id", middleware.RBACAuthorize(rbacService, "attendance_report", "read"), h.GetByID)
	}
}
