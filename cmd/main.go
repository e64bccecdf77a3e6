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

	createBookingHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/get_calendar"
	getLastStayHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/get_last_stay"
	getMonthlyReportHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/get_monthly_report"
	listBookingsHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/list_bookings"
	suggestCustomersHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/suggest_customers"
	updateBookingHandler "github.com/m04kA/CBH-BookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/CBH-BookingService/internal/api/middleware"
	"github.com/m04kA/CBH-BookingService/internal/config"
	bookingRepo "github.com/m04kA/CBH-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/CBH-BookingService/internal/infra/storage/customer"
	"github.com/m04kA/CBH-BookingService/internal/pricing"
	bookingsService "github.com/m04kA/CBH-BookingService/internal/service/bookings"
	customersService "github.com/m04kA/CBH-BookingService/internal/service/customers"
	createBookingUC "github.com/m04kA/CBH-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/CBH-BookingService/internal/usecase/get_calendar"
	monthlyReportUC "github.com/m04kA/CBH-BookingService/internal/usecase/monthly_report"
	"github.com/m04kA/CBH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CBH-BookingService/pkg/logger"
	"github.com/m04kA/CBH-BookingService/pkg/metrics"
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

	log.Info("Starting CBH-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		customerRepository *customerRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
	}

	// Калькулятор стоимости проживания по таблице ставок из конфигурации
	rateTable := cfg.Rates.RateTable()
	calculator := pricing.NewCalculator(rateTable)
	log.Info("Price calculator initialized with %d room rates", len(rateTable))

	// Инициализируем сервисы
	customersSvc := customersService.NewService(
		customerRepository,
		bookingRepository,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		calculator,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		customersSvc,
		calculator,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, log)
	monthlyReportUseCase := monthlyReportUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	suggestCustomers := suggestCustomersHandler.NewHandler(customersSvc, log)
	getLastStay := getLastStayHandler.NewHandler(customersSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getMonthlyReport := getMonthlyReportHandler.NewHandler(monthlyReportUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты ---
	// Подсказки имен для автодополнения
	api.HandleFunc("/customers/suggest", suggestCustomers.Handle).Methods(http.MethodGet)

	// Состав последнего проживания клиента (кошки и тип номера)
	api.HandleFunc("/customers/last-stay", getLastStay.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования (строка на кошку)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список строк бронирований за месяц
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение строки бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Частичное обновление строки бронирования
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Удаление строки бронирования
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Календарь и отчеты ---
	// События календаря за месяц
	api.HandleFunc("/calendar/events", getCalendar.Handle).Methods(http.MethodGet)

	// Помесячный отчет по выручке
	api.HandleFunc("/reports/monthly", getMonthlyReport.Handle).Methods(http.MethodGet)

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
