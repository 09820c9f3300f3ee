package location

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
	locations := r.Group("/locations")

	locations.Use(middleware.AuthMiddleware())

	{
		locations.GET("", middleware.RBACAuthorize(rbacService, "location", "read"), h.GetAll)
		locations.POST("", middleware.RBACAuthorize(rbacService, "location", "create"), h.Create)
		locations.GET("/:id", middleware.RBACAuthorize(rbacService, "location", "read"), h.GetByID)
		locations.PUT("/:id", middleware.RBACAuthorize(rbacService, "location", "update"), h.Update)
		locations.DELETE("/:id", middleware.RBACAuthorize(rbacService, "location", "delete"), h.Delete)
	}
}
