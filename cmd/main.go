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

	archiveCompletedHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/archive_completed"
	cancelBookingHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_available_slots"
	getDashboardHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_dashboard"
	getScheduleHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_user_bookings"
	listCancellationsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/list_cancellations"
	listTransactionsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/list_transactions"
	updateFinancialsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/update_financials"
	updateScheduleHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/update_schedule"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BRB-ScheduleService/internal/config"
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/booking"
	financeRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/finance"
	scheduleRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/schedule"
	bookingsService "github.com/m04kA/BRB-ScheduleService/internal/service/bookings"
	financeService "github.com/m04kA/BRB-ScheduleService/internal/service/finance"
	scheduleService "github.com/m04kA/BRB-ScheduleService/internal/service/schedule"
	createBookingUC "github.com/m04kA/BRB-ScheduleService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_available_slots"
	getDashboardUC "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_dashboard"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/logger"
	"github.com/m04kA/BRB-ScheduleService/pkg/metrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/BRB-ScheduleService/pkg/txmanager"
)

// systemClock источник текущего времени для сервисов
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting BRB-ScheduleService...")
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

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		financeRepository  *financeRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		financeRepository = financeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		financeRepository = financeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Заполняем недельное расписание дефолтами при первом запуске
	if err := scheduleRepository.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Failed to seed weekday configuration: %v", err)
	}

	catalog := domain.DefaultServiceCatalog()
	clock := systemClock{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalog,
		txMgr,
		clock,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)
	financeSvc := financeService.NewService(
		financeRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		catalog,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)
	getDashboardUseCase := getDashboardUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		financeSvc,
		catalog,
		clock,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	archiveCompleted := archiveCompletedHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	listCancellations := listCancellationsHandler.NewHandler(bookingSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(bookingSvc, log)
	updateFinancials := updateFinancialsHandler.NewHandler(financeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без заголовков идентификации)
	// ============================================================

	// Свободные и занятые слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Identity)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/archive-completed", archiveCompleted.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{id}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cancellations", listCancellations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/transactions", listTransactions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/finance/{year}", updateFinancials.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
