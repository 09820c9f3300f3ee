package app

import (
	"database/sql"

	"github.com/rizaltohir55/presensi-qr-project/internal/attendance"
	"github.com/rizaltohir55/presensi-qr-project/internal/auth"
	"github.com/rizaltohir55/presensi-qr-project/internal/employee"
	"github.com/rizaltohir55/presensi-qr-project/internal/location"
	"github.com/rizaltohir55/presensi-qr-project/internal/messaging/kafka"
	"github.com/rizaltohir55/presensi-qr-project/internal/qrcode"
	"github.com/rizaltohir55/presensi-qr-project/internal/qrtoken"
	"github.com/rizaltohir55/presensi-qr-project/internal/rbac"
	"github.com/rizaltohir55/presensi-qr-project/internal/recap"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/clock"
	"github.com/rizaltohir55/presensi-qr-project/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	tokens qrtoken.Service,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	locationRepo := location.NewRepository(gormDB)
	qrCodeRepo := qrcode.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(db, employeeRepo, authRepo, rdb)
	shiftService := shift.NewService(db, shiftRepo, rdb)
	locationService := location.NewService(db, locationRepo, rdb)
	qrCodeService := qrcode.NewService(db, qrCodeRepo, tokens, clock.System())
	attendanceService := attendance.NewService(
		db,
		attendanceRepo,
		qrCodeRepo,
		employeeRepo,
		outboxRepo,
		tokens,
		clock.System(),
	)
	recapService := recap.NewService(rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	shiftHandler := shift.NewHandler(shiftService)
	locationHandler := location.NewHandler(locationService)
	qrCodeHandler := qrcode.NewHandler(qrCodeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	recapHandler := recap.NewHandler(recapService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)

		admin := api.Group("/admin")
		{
			employee.RegisterRoutes(admin, employeeHandler, rbacService)
			shift.RegisterRoutes(admin, shiftHandler, rbacService)
			location.RegisterRoutes(admin, locationHandler, rbacService)
			qrcode.RegisterRoutes(admin, qrCodeHandler, rbacService)
			attendance.RegisterAdminRoutes(admin, attendanceHandler, rbacService)
			recap.RegisterRoutes(admin, recapHandler, rbacService)
		}

		employeeAPI := api.Group("/employee")
		{
			attendance.RegisterEmployeeRoutes(employeeAPI, attendanceHandler, rbacService, rdb)
		}
	}

	return nil
}
