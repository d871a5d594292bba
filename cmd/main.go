package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workforce_project/internal/config"
	"workforce_project/internal/domain"
	"workforce_project/internal/middleware"
	"workforce_project/internal/repository"
	transport "workforce_project/internal/transport/http"
	"workforce_project/internal/utils/blacklist"
	"workforce_project/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	logger.InitLogger()
	defer logger.Logger.Sync()

	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		logger.Logger.Fatal("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set")
	}

	tp, err := middleware.InitTracer(cfg.Trace)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()))
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&domain.Employee{},
		&domain.Manager{},
		&domain.Building{},
		&domain.Project{},
		&domain.Group{},
		&domain.Shift{},
		&domain.ShiftGroup{},
		&domain.EmployeeGroup{},
		&domain.Attendance{},
	); err != nil {
		logger.Logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	managerRepo := repository.NewManagerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	bl := blacklist.NewRedisBlacklist(redisClient, blacklist.UserBlackList, blacklist.TokenBlackList)

	router := transport.NewRouter(transport.RouterConfig{
		Auth:         transport.NewAuthHandler(employeeRepo, bl, cfg.JWT),
		User:         transport.NewUserHandler(employeeRepo, projectRepo, shiftRepo),
		Project:      transport.NewProjectHandler(projectRepo),
		Shift:        transport.NewShiftHandler(shiftRepo, attendanceRepo),
		Manager:      transport.NewManagerHandler(managerRepo, projectRepo, groupRepo, employeeRepo),
		AccessSecret: cfg.JWT.AccessSecret,
		Blacklist:    bl,
		Redis:        redisClient,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Idempotency-Key"},
	}).Handler(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info("Server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := tp.Shutdown(ctx); err != nil {
		logger.Logger.Error("Tracer shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	redisClient.Close()
}
