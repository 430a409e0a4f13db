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

	cancelReservationHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/delete_reservation"
	getReservationHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/get_reservation"
	getScheduleGridHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/get_schedule_grid"
	getSettingsHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/get_settings"
	getUserReservationsHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/get_user_reservations"
	updateReservationHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/update_reservation"
	updateSettingsHandler "github.com/SkyCrew-app/reservation-service/internal/api/handlers/update_settings"
	"github.com/SkyCrew-app/reservation-service/internal/api/middleware"
	"github.com/SkyCrew-app/reservation-service/internal/config"
	reservationRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/reservation"
	settingsRepo "github.com/SkyCrew-app/reservation-service/internal/infra/storage/settings"
	fleetServiceClient "github.com/SkyCrew-app/reservation-service/internal/integrations/fleetservice"
	"github.com/SkyCrew-app/reservation-service/internal/jobs"
	reservationsService "github.com/SkyCrew-app/reservation-service/internal/service/reservations"
	settingsService "github.com/SkyCrew-app/reservation-service/internal/service/settings"
	createReservationUC "github.com/SkyCrew-app/reservation-service/internal/usecase/create_reservation"
	getScheduleGridUC "github.com/SkyCrew-app/reservation-service/internal/usecase/get_schedule_grid"
	updateReservationUC "github.com/SkyCrew-app/reservation-service/internal/usecase/update_reservation"
	"github.com/SkyCrew-app/reservation-service/pkg/dbmetrics"
	"github.com/SkyCrew-app/reservation-service/pkg/logger"
	"github.com/SkyCrew-app/reservation-service/pkg/metrics"
	"github.com/SkyCrew-app/reservation-service/pkg/simpletxmanager"
	"github.com/SkyCrew-app/reservation-service/pkg/txmanager"
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

	log.Info("Starting reservation-service...")
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

	// Инициализируем клиента сервиса флота
	fleetClient := fleetServiceClient.NewClient(
		cfg.FleetService.URL,
		time.Duration(cfg.FleetService.Timeout)*time.Second,
		log,
	)
	log.Info("FleetService client initialized (url=%s, timeout=%ds)",
		cfg.FleetService.URL, cfg.FleetService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс transaction manager, используется в usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	getScheduleGridUseCase := getScheduleGridUC.NewUseCase(
		reservationRepository,
		settingsRepository,
		fleetClient,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		settingsRepository,
		fleetClient,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		settingsRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getScheduleGrid := getScheduleGridHandler.NewHandler(getScheduleGridUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Запускаем фоновую уборку прошедших бронирований
	if cfg.Jobs.Enabled {
		sweeper := jobs.NewSweeper(reservationRepository, cfg.Jobs.SweepSchedule, log)
		if err := sweeper.Start(); err != nil {
			log.Fatal("Failed to start sweeper: %v", err)
		}
		defer sweeper.Stop()
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Настройки клуба: закрытые дни, рабочее окно, шаг сетки
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Обновление настроек клуба
	// TODO: закрыть ролью администратора, когда шлюз начнёт передавать роли
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	if cfg.RateLimit.Enabled {
		protected.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		log.Info("Rate limit middleware enabled (rps=%.1f, burst=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Сетка занятости ---
	protected.HandleFunc("/schedule/grid", getScheduleGrid.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)

	// Удаление бронирования
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

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
