package qrcode

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
	codes := r.Group("/qr-codes")

	codes.Use(middleware.AuthMiddleware())

	{
		codes.POST("/generate", middleware.RBACAuthorize(rbacService, "qr_code", "create"), h.Create)
		codes.POST("/generate-new", middleware.RBACAuthorize(rbacService, "qr_code", "create"), h.GenerateDynamic)
		codes.GET("", middleware.RBACAuthorize(rbacService, "qr_code", "read"), h.GetAll)
		codes.GET("/:id", middleware.RBACAuthorize(rbacService, "qr_code", "read"), h.GetByID)
		codes.GET("/:id/image", middleware.RBACAuthorize(rbacService, "qr_code", "read"), h.Image)
		codes.PUT("/:id/toggle", middleware.RBACAuthorize(rbacService, "qr_code", "update"), h.Toggle)
		codes.DELETE("/:id", middleware.RBACAuthorize(rbacService, "qr_code", "delete"), h.Delete)
	}
}
