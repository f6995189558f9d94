package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpadapter "notesapi/internal/adapters/http"
	"notesapi/internal/adapters/postgres"
	adapterservices "notesapi/internal/adapters/services"
	"notesapi/internal/app"
	"notesapi/internal/config"
	pgdb "notesapi/pkg/db/postgres"
	"notesapi/pkg/logger"
	"notesapi/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectDatabase      = "failed to connect to database"
	ErrRunMigrations        = "failed to run database migrations"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogConnectingDatabase  = "connecting to database"
	LogRunningMigrations   = "running database migrations"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database connection"
)

const migrationsPath = "file://migrations"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogConnectingDatabase,
			zap.String("host", cfg.Postgres.Host),
			zap.Int("port", cfg.Postgres.Port),
			zap.String("database", cfg.Postgres.Database))
		database, err := pgdb.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogRunningMigrations)
		if err := pgdb.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
			log.Error(ctx, ErrRunMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		userRepo := postgres.NewUserRepository(database.Pool())
		noteRepo := postgres.NewNoteRepository(database.Pool())

		passwordSvc := adapterservices.NewBcrypt(cfg.JWT.BCryptCost)
		tokenSvc := adapterservices.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetTokenTTL(), cfg.JWT.Issuer)

		authUseCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
		noteUseCase := app.NewNoteUseCase(noteRepo)
		identityUseCase := app.NewIdentityUseCase(userRepo)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpadapter.SetupRouter(fiberApp, authUseCase, noteUseCase, identityUseCase, tokenSvc)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие соединения с базой данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDatabase)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
