package app

import (
	"os"
	"strconv"

	"github.com/rizaltohir55/presensi-qr-project/internal/middleware"
	"github.com/rizaltohir55/presensi-qr-project/internal/qrtoken"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/clock"
	"github.com/rizaltohir55/presensi-qr-project/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// Refusing to start without a QR secret: tokens would otherwise be
	// derivable by anyone.
	tokens, err := qrtoken.NewService(
		os.Getenv("QR_SECRET_KEY"),
		bucketSecondsFromEnv(),
		clock.System(),
	)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	if err := registerModules(router, sqlDB, gormDB, redisClient, tokens); err != nil {
		return err
	}

	logger.Info("application wired",
		zap.String("db", os.Getenv("DB_NAME")),
		zap.String("redis", os.Getenv("REDIS_ADDR")),
	)

	return nil
}

func bucketSecondsFromEnv() int64 {
	raw := os.Getenv("QR_TOKEN_PERIOD_SECONDS")
	if raw == "" {
		return qrtoken.DefaultBucketSeconds
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return qrtoken.DefaultBucketSeconds
	}
	return n
}
