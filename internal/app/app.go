package app

import (
	"go-hris-graphql/internal/auth"
	"go-hris-graphql/internal/employee"
	"go-hris-graphql/internal/messaging/kafka"
	"go-hris-graphql/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewLogger builds the process logger for cfg.AppEnv.
func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// BuildApp connects the infrastructure, migrates the schema and registers the
// routes on router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Info("REDIS_ADDR not set, idempotency disabled")
	}

	if err := registerModules(router, cfg, gormDB, rdb); err != nil {
		return nil, err
	}

	cleanup := func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return cleanup, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&auth.User{}, &employee.Employee{}, &kafka.OutboxEvent{})
}
