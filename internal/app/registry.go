package app

import (
	"net/http"
	"time"

	"go-hris-graphql/internal/auth"
	"go-hris-graphql/internal/employee"
	gqlapi "go-hris-graphql/internal/graphql"
	"go-hris-graphql/internal/messaging/kafka"
	"go-hris-graphql/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, auth.NewBcryptHasher(auth.PasswordCost))
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo)

	// --- Resolvers ---
	authResolver := auth.NewResolver(authService)
	employeeResolver := employee.NewResolver(employeeService)

	schema, err := gqlapi.BuildSchema(
		func(q, m graphql.Fields) { auth.RegisterFields(q, m, authResolver) },
		func(q, m graphql.Fields) { employee.RegisterFields(q, m, employeeResolver) },
	)
	if err != nil {
		return err
	}

	// --- Middleware ---
	router.Use(
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	// --- Routes Registration ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("")
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	gqlapi.RegisterRoutes(api, gqlapi.NewHandler(schema))

	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader, middleware.IdempotencyHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, middleware.ReplayHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
