package shift

import (
	"github.com/rizaltohir55/presensi-qr-project/internal/middleware"
	"github.com/rizaltohir55/presensi-qr-project/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	shifts := r.Group("/shifts")

	shifts.Use(middleware.AuthMiddleware())

	{
		shifts.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), h.GetAll)
		shifts.POST("", middleware.RBACAuthorize(rbacService, "shift", "create"), h.Create)
		shifts.GET("/:id", middleware.RBACAuthorize(rbacService, "shift", "read"), h.GetByID)
		shifts.PUT("/:id", middleware.RBACAuthorize(rbacService, "shift", "update"), h.Update)
		shifts.DELETE("/:id", middleware.RBACAuthorize(rbacService, "shift", "delete"), h.Delete)
	}
}
