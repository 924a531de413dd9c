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

	cancelBookingHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/create_booking"
	createReviewHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/create_review"
	getAvailableSlotsHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_customer_bookings"
	getReviewsHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_reviews"
	getServicesHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_services"
	getStatsHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_stats"
	getWorkingHoursHandler "github.com/Daniil2209/Cleandins/internal/api/handlers/get_working_hours"
	"github.com/Daniil2209/Cleandins/internal/api/middleware"
	"github.com/Daniil2209/Cleandins/internal/config"
	bookingRepo "github.com/Daniil2209/Cleandins/internal/infra/storage/booking"
	reviewRepo "github.com/Daniil2209/Cleandins/internal/infra/storage/review"
	telegramClient "github.com/Daniil2209/Cleandins/internal/integrations/telegram"
	bookingsService "github.com/Daniil2209/Cleandins/internal/service/bookings"
	reviewsService "github.com/Daniil2209/Cleandins/internal/service/reviews"
	createBookingUC "github.com/Daniil2209/Cleandins/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Daniil2209/Cleandins/internal/usecase/get_available_slots"
	"github.com/Daniil2209/Cleandins/pkg/logger"
	"github.com/Daniil2209/Cleandins/pkg/metrics"
	"github.com/Daniil2209/Cleandins/pkg/txmanager"
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

	log.Info("Starting Cleandins booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем Telegram клиент (если уведомления включены)
	var notifier createBookingUC.BookingNotifier
	if cfg.Telegram.Enabled {
		tgClient, err := telegramClient.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Fatal("Failed to initialize Telegram client: %v", err)
		}
		notifier = tgClient
		log.Info("Telegram notifications enabled (chat_id=%d)", cfg.Telegram.ChatID)
	} else {
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	reviewRepository := reviewRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		notifier,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getServices := getServicesHandler.NewHandler(log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getReviews := getReviewsHandler.NewHandler(reviewSvc, log)
	getStats := getStatsHandler.NewHandler(reviewSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и расписание ---
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// --- Доступность слотов ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{phone}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Отзывы и статистика ---
	api.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews", getReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

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
