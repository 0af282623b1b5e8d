package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"quotation-service/internal/config"
	"quotation-service/internal/database/minio"
	"quotation-service/internal/database/postgres"
	"quotation-service/internal/database/redis"
	"quotation-service/internal/event"
	"quotation-service/internal/handlers"
	"quotation-service/internal/repository"
	"quotation-service/internal/services"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
)

func setupLogging() (*os.File, error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic: %v\n", r)
		}
	}()

	logDir := filepath.Join("/insurance", "log", "quotation_service")
	err := os.MkdirAll(logDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	return file, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	slog.Info("Connecting to PostgreSQL",
		"host", cfg.PostgresCfg.Host,
		"port", cfg.PostgresCfg.Port,
		"user", cfg.PostgresCfg.Username,
		"dbname", cfg.PostgresCfg.DBname)

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		slog.Error("Failed to connect to database, retrying in background", "error", err)
		go postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := minio.NewMinioClient(cfg.MinioCfg)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}
	defer minioClient.Close()

	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitConn.Close()

	// repositories
	catalogRepo := repository.NewCatalogRepository(db, redisClient.GetClient())
	partyRepo := repository.NewPartyRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	quotationRepo := repository.NewQuotationRepository(db, redisClient.GetClient())
	issuanceRepo := repository.NewIssuanceRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)

	// services
	publisher := event.NewNotificationPublisher(rabbitConn)
	workflowService := services.NewQuotationWorkflowService(catalogRepo, partyRepo, vehicleRepo, quotationRepo, cfg.WorkflowCfg)
	issuanceService := services.NewIssuanceService(catalogRepo, quotationRepo, issuanceRepo, minioClient, publisher, cfg.WorkflowCfg)
	collectionService := services.NewCollectionService(issuanceRepo, collectionRepo, publisher)
	catalogService := services.NewCatalogService(catalogRepo)
	exportService := services.NewExportService(workflowService, minioClient, cfg.WorkflowCfg)

	// handlers
	workflowHandler := handlers.NewWorkflowHandler(workflowService)
	issuanceHandler := handlers.NewIssuanceHandler(issuanceService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	reportHandler := handlers.NewReportHandler(exportService)

	app := fiber.New()
	app.Get("/checkhealth", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"publisher": publisher.HealthCheck(),
			"events":    publisher.GetMetrics(),
		})
	})

	workflowHandler.Register(app)
	issuanceHandler.Register(app)
	collectionHandler.Register(app)
	catalogHandler.Register(app)
	reportHandler.Register(app)

	slog.Info("Starting quotation-service", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
