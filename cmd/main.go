package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	dashboardapp "github.com/muhammadheryan/ev-admin/application/dashboard"
	feeapp "github.com/muhammadheryan/ev-admin/application/fee"
	moderationapp "github.com/muhammadheryan/ev-admin/application/moderation"
	"github.com/muhammadheryan/ev-admin/application/notification"
	userapp "github.com/muhammadheryan/ev-admin/application/user"
	"github.com/muhammadheryan/ev-admin/cmd/config"
	redisclient "github.com/muhammadheryan/ev-admin/cmd/redis"
	_ "github.com/muhammadheryan/ev-admin/docs"
	auditRepo "github.com/muhammadheryan/ev-admin/repository/audit"
	redisRepo "github.com/muhammadheryan/ev-admin/repository/redis"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/thirdparty/rabbitmq"
	"github.com/muhammadheryan/ev-admin/transport"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	validatorx "github.com/muhammadheryan/ev-admin/utils/validator"
	"go.uber.org/zap"
)

// @title EV ADMIN API
// @version 1.0
// @description EV marketplace admin console API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("marketplace", cfg.Marketplace.BaseURL))

	validatorx.Init()

	// Connect to the audit database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if _, err := db.Exec(auditRepo.Schema); err != nil {
		logger.Fatal("err migrate audit schema", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	AuditRepo := auditRepo.NewAuditRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Marketplace backend
	client := marketplace.NewClient(cfg.Marketplace.BaseURL, cfg.Marketplace.Timeout)
	ProductAPI := marketplace.NewProductAPI(client)
	UserAPI := marketplace.NewUserAPI(client)
	OrderAPI := marketplace.NewOrderAPI(client)
	PaymentAPI := marketplace.NewPaymentAPI(client)
	NotificationAPI := marketplace.NewNotificationAPI(client)
	FeeAPI := marketplace.NewFeeAPI(client)
	CommunityAPI := marketplace.NewCommunityAPI(client)

	// Notification queue, direct delivery when disabled
	var publisher notification.Publisher
	var amqpPublisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		amqpPublisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	Dispatcher := notification.NewDispatcher(NotificationAPI, publisher)

	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, Dispatcher)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start notification consumer", zap.Error(err))
		}
		logger.Info("Notification consumer running", zap.String("queue", rabbitmq.NotificationQueue))
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserAPI, RedisRepo, AuditRepo, Dispatcher)
	DashboardApp := dashboardapp.NewDashboardApp(cfg, ProductAPI, UserAPI, OrderAPI, PaymentAPI, CommunityAPI, RedisRepo)
	ModerationApp := moderationapp.NewModerationApp(ProductAPI, Dispatcher, AuditRepo, RedisRepo)
	FeeApp := feeapp.NewFeeApp(FeeAPI, AuditRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:       UserApp,
		DashboardApp:  DashboardApp,
		ModerationApp: ModerationApp,
		FeeApp:        FeeApp,
		Dispatcher:    Dispatcher,
	}, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
