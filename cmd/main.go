package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/Wainainajnr/slotallocation/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/Wainainajnr/slotallocation/internal/api/handlers/delete_booking"
	getDailySlotsHandler "github.com/Wainainajnr/slotallocation/internal/api/handlers/get_daily_slots"
	healthHandler "github.com/Wainainajnr/slotallocation/internal/api/handlers/health"
	setSuspensionHandler "github.com/Wainainajnr/slotallocation/internal/api/handlers/set_suspension"
	"github.com/Wainainajnr/slotallocation/internal/api/middleware"
	"github.com/Wainainajnr/slotallocation/internal/config"
	bookingRepo "github.com/Wainainajnr/slotallocation/internal/infra/storage/booking"
	suspensionRepo "github.com/Wainainajnr/slotallocation/internal/infra/storage/suspension"
	slotsService "github.com/Wainainajnr/slotallocation/internal/service/slots"
	createBookingUC "github.com/Wainainajnr/slotallocation/internal/usecase/create_booking"
	setSuspensionUC "github.com/Wainainajnr/slotallocation/internal/usecase/set_suspension"
	"github.com/Wainainajnr/slotallocation/migrations"
	"github.com/Wainainajnr/slotallocation/pkg/dbmetrics"
	"github.com/Wainainajnr/slotallocation/pkg/logger"
	"github.com/Wainainajnr/slotallocation/pkg/metrics"
	"github.com/Wainainajnr/slotallocation/pkg/simpletxmanager"
	"github.com/Wainainajnr/slotallocation/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting slotallocation service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение. Недоступная БД не валит сервис:
	// хранилища уходят в in-memory fallback, /health показывает деградацию
	if err := db.Ping(); err != nil {
		log.Warn("Database unreachable, starting in degraded in-memory mode: %v", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		// Применяем миграции
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrations.Version(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to read schema version: %v", err)
		}
		log.Info("Database migrations applied, schema version %d", version)
	}

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingPG    bookingRepo.Storage
		suspensionPG suspensionRepo.Storage
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingPG = bookingRepo.NewRepository(wrappedDB)
		suspensionPG = suspensionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingPG = bookingRepo.NewRepository(db)
		suspensionPG = suspensionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// In-memory fallback с той же семантикой, что и PostgreSQL-репозитории
	bookingStore := bookingRepo.NewFailoverStorage(bookingPG, bookingRepo.NewMemoryRepository(), log)
	suspensionStore := suspensionRepo.NewFailoverStorage(suspensionPG, suspensionRepo.NewMemoryRepository(), log)

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(bookingStore, suspensionStore, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingStore,
		suspensionStore,
		txMgr,
		log,
	)
	setSuspensionUseCase := setSuspensionUC.NewUseCase(
		bookingStore,
		suspensionStore,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getDailySlots := getDailySlotsHandler.NewHandler(slotsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(slotsSvc, log)
	setSuspension := setSuspensionHandler.NewHandler(setSuspensionUseCase, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Админка портала: слоты, бронирования, приостановки
	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/daily", getDailySlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/book", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/suspend", setSuspension.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер (CORS оборачивает весь роутер, включая preflight)
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
