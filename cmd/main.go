package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	authapp "github.com/rakapradana/place-review/application/auth"
	healthapp "github.com/rakapradana/place-review/application/health"
	placeapp "github.com/rakapradana/place-review/application/place"
	reviewapp "github.com/rakapradana/place-review/application/review"
	"github.com/rakapradana/place-review/cmd/config"
	redisclient "github.com/rakapradana/place-review/cmd/redis"
	_ "github.com/rakapradana/place-review/docs"
	placeRepo "github.com/rakapradana/place-review/repository/place"
	redisRepo "github.com/rakapradana/place-review/repository/redis"
	reviewRepo "github.com/rakapradana/place-review/repository/review"
	tokenRepo "github.com/rakapradana/place-review/repository/token"
	txRepo "github.com/rakapradana/place-review/repository/tx"
	userRepo "github.com/rakapradana/place-review/repository/user"
	"github.com/rakapradana/place-review/thirdparty/rabbitmq"
	"github.com/rakapradana/place-review/transport"
	"github.com/rakapradana/place-review/utils/logger"
)

// @title PLACE REVIEW API
// @version 1.0
// @description Location review API: phone-based auth, review intake, place search
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
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Apply schema migrations when a migrations path is configured
	if cfg.Database.MigrationsPath != "" {
		m, err := migrate.New("file://"+cfg.Database.MigrationsPath, "mysql://"+cfg.GetDSN())
		if err != nil {
			logger.Fatal("err init migrations", zap.Error(err))
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			logger.Fatal("err apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.String("path", cfg.Database.MigrationsPath))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher is optional; review events are best-effort
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("err connect rabbitmq, review events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	TokenRepo := tokenRepo.NewTokenRepository(db)
	PlaceRepo := placeRepo.NewPlaceRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(UserRepo, TokenRepo, RedisRepo)
	ReviewApp := reviewapp.NewReviewApp(TxRepo, PlaceRepo, ReviewRepo, publisher)
	PlaceApp := placeapp.NewPlaceApp(PlaceRepo, ReviewRepo)
	HealthApp := healthapp.NewHealthApp(db, RedisRepo)

	httpTransport := transport.NewTransport(AuthApp, ReviewApp, PlaceApp, HealthApp, cfg.Server.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
