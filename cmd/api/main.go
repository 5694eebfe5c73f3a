package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bread-orders/internal/core/auth"
	"bread-orders/internal/core/cache"
	"bread-orders/internal/core/config"
	"bread-orders/internal/core/database"
	"bread-orders/internal/core/logger"
	"bread-orders/internal/core/server"
	"bread-orders/internal/domain"
	"bread-orders/internal/mailer"
	"bread-orders/internal/repo"
	"bread-orders/internal/service"
	"bread-orders/internal/transport/http/handler"
	"bread-orders/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Order{}, &domain.DeliveryPoint{}, &domain.Season{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	gate := auth.NewAdminGate(cfg.Admin.Token)
	if cfg.Admin.Token == "" {
		log.Warn("admin token not configured, admin endpoints will deny everything")
	}

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.Mail.Enabled {
		mail = mailer.NewSMTP(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
		log.Info("smtp mailer enabled", zap.String("host", cfg.Mail.Host))
	}

	userRepo := repo.NewUserRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	pointRepo := repo.NewDeliveryPointRepo(db)

	var seasonRepo domain.SeasonRepository = repo.NewSeasonRepo(db)
	if cfg.Redis.Enabled {
		seasonRepo = repo.NewCachedSeasonRepo(seasonRepo, cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB))
		log.Info("season cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	notify := service.Notify{SiteName: cfg.App.SiteName, AdminEmail: cfg.Mail.AdminEmail}
	orderSvc := service.NewOrderService(orderRepo, seasonRepo, gate, mail, log, notify)
	userSvc := service.NewUserService(userRepo, log)
	pointSvc := service.NewDeliveryPointService(pointRepo, gate)
	seasonSvc := service.NewSeasonService(seasonRepo)

	r := router.New(log, router.Handlers{
		Orders:         handler.NewOrderHandler(orderSvc),
		Users:          handler.NewUserHandler(userSvc),
		DeliveryPoints: handler.NewDeliveryPointHandler(pointSvc),
		Seasons:        handler.NewSeasonHandler(seasonSvc),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
