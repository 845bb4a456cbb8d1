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

	addCompanyHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/add_company"
	createBookingHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/create_booking"
	dailyUsageHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/daily_usage"
	deleteBookingHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/delete_booking"
	disableSlotHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/disable_slot"
	getAvailabilityHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/list_bookings"
	listCompaniesHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/list_companies"
	listDisabledSlotsHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/list_disabled_slots"
	listRoomsHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/list_rooms"
	removeCompanyHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/remove_company"
	removeDisabledSlotHandler "github.com/dkomnin/APEC-BookingService/internal/api/handlers/remove_disabled_slot"
	"github.com/dkomnin/APEC-BookingService/internal/api/middleware"
	"github.com/dkomnin/APEC-BookingService/internal/app"
	"github.com/dkomnin/APEC-BookingService/internal/config"
	bookingRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/booking"
	companyRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/company"
	disabledSlotRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/disabledslot"
	bookingsService "github.com/dkomnin/APEC-BookingService/internal/service/bookings"
	companiesService "github.com/dkomnin/APEC-BookingService/internal/service/companies"
	disabledSlotsService "github.com/dkomnin/APEC-BookingService/internal/service/disabledslots"
	admitBookingUC "github.com/dkomnin/APEC-BookingService/internal/usecase/admit_booking"
	disableSlotUC "github.com/dkomnin/APEC-BookingService/internal/usecase/disable_slot"
	getAvailabilityUC "github.com/dkomnin/APEC-BookingService/internal/usecase/get_availability"
	"github.com/dkomnin/APEC-BookingService/pkg/dbmetrics"
	"github.com/dkomnin/APEC-BookingService/pkg/logger"
	"github.com/dkomnin/APEC-BookingService/pkg/metrics"
	"github.com/dkomnin/APEC-BookingService/pkg/simpletxmanager"
	"github.com/dkomnin/APEC-BookingService/pkg/txmanager"
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

	log.Info("Starting APEC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем каталог комнат из конфигурации
	catalog, err := cfg.Booking.BuildCatalog()
	if err != nil {
		log.Fatal("Failed to build room catalog: %v", err)
	}
	log.Info("Room catalog loaded: %d rooms, %d tiers, event dates %v",
		len(catalog.Rooms()), len(catalog.Tiers()), catalog.EventDates())

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

	// Применяем миграции (если включено)
	if cfg.Database.MigrateOnStart {
		migrator, err := app.NewMigrator(db)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Warn("Failed to read schema version: %v", err)
		} else {
			log.Info("Database migrations applied, schema version %d", version)
		}
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		disabledRepository *disabledSlotRepo.Repository
		companyRepository  *companyRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		disabledRepository = disabledSlotRepo.NewRepository(wrappedDB)
		companyRepository = companyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		disabledRepository = disabledSlotRepo.NewRepository(db)
		companyRepository = companyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(catalog, bookingRepository, log)
	companySvc := companiesService.NewService(catalog, companyRepository, bookingRepository, txMgr, log)
	disabledSvc := disabledSlotsService.NewService(catalog, disabledRepository, log)

	// Инициализируем use cases
	admitBookingUseCase := admitBookingUC.NewUseCase(
		catalog,
		bookingRepository,
		disabledRepository,
		companyRepository,
		txMgr,
		log,
	)

	disableSlotUseCase := disableSlotUC.NewUseCase(
		catalog,
		bookingRepository,
		disabledRepository,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalog,
		bookingRepository,
		disabledRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(admitBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	dailyUsage := dailyUsageHandler.NewHandler(bookingSvc, log)
	listRooms := listRoomsHandler.NewHandler(catalog, log)
	listCompanies := listCompaniesHandler.NewHandler(companySvc, log)
	addCompany := addCompanyHandler.NewHandler(companySvc, log)
	removeCompany := removeCompanyHandler.NewHandler(companySvc, log)
	disableSlot := disableSlotHandler.NewHandler(disableSlotUseCase, log)
	listDisabledSlots := listDisabledSlotsHandler.NewHandler(disabledSvc, log)
	removeDisabledSlot := removeDisabledSlotHandler.NewHandler(disabledSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Занятость и лимиты ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/daily-usage", dailyUsage.Handle).Methods(http.MethodGet)

	// --- Реестр компаний ---
	api.HandleFunc("/companies", listCompanies.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies", addCompany.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies/{companyId}", removeCompany.Handle).Methods(http.MethodDelete)

	// --- Административные блокировки слотов ---
	api.HandleFunc("/disabled-slots", disableSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/disabled-slots", listDisabledSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/disabled-slots/{slotId}", removeDisabledSlot.Handle).Methods(http.MethodDelete)

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
