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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/m04kA/SMC-CarpenterService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/SMC-CarpenterService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-CarpenterService/internal/api/handlers/confirm_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CarpenterService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-CarpenterService/internal/api/handlers/get_booking"
	"github.com/m04kA/SMC-CarpenterService/internal/api/middleware"
	"github.com/m04kA/SMC-CarpenterService/internal/config"
	reservationRepo "github.com/m04kA/SMC-CarpenterService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-CarpenterService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-CarpenterService/internal/service/bookings"
	slotsService "github.com/m04kA/SMC-CarpenterService/internal/service/slots"
	bookSlotUC "github.com/m04kA/SMC-CarpenterService/internal/usecase/book_slot"
	"github.com/m04kA/SMC-CarpenterService/migrations"
	"github.com/m04kA/SMC-CarpenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarpenterService/pkg/logger"
	"github.com/m04kA/SMC-CarpenterService/pkg/metrics"
	"github.com/m04kA/SMC-CarpenterService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CarpenterService/pkg/txmanager"
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

	log.Info("Starting SMC-CarpenterService...")
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
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции (если включены)
	if cfg.Database.RunMigrations {
		if err := runMigrations(db); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, log)
	bookingsSvc := bookingsService.NewService(
		reservationRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(
		slotRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotsSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Список доступных слотов
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование слота
	api.HandleFunc("/book", bookSlot.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/booking/{reservationId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования
	api.HandleFunc("/booking/{reservationId}/confirm", confirmBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	api.HandleFunc("/booking/{reservationId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// CORS для отдельно развёрнутого фронтенда
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

// runMigrations применяет встроенные goose-миграции
func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
