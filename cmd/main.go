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

	addBlockedDateHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/add_blocked_date"
	cancelAppointmentHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/get_client_appointments"
	getScheduleHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/get_schedule"
	listAppointmentsHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/list_services"
	removeBlockedDateHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/remove_blocked_date"
	updateAppointmentStatusHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/update_business_hours"
	updateServiceHandler "github.com/sharpcut/SC-AppointmentService/internal/api/handlers/update_service"
	"github.com/sharpcut/SC-AppointmentService/internal/api/middleware"
	"github.com/sharpcut/SC-AppointmentService/internal/config"
	appointmentRepo "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/appointment"
	scheduleRepo "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/sharpcut/SC-AppointmentService/internal/infra/storage/service"
	notifyServiceClient "github.com/sharpcut/SC-AppointmentService/internal/integrations/notifyservice"
	appointmentsService "github.com/sharpcut/SC-AppointmentService/internal/service/appointments"
	catalogService "github.com/sharpcut/SC-AppointmentService/internal/service/catalog"
	scheduleService "github.com/sharpcut/SC-AppointmentService/internal/service/schedule"
	createAppointmentUC "github.com/sharpcut/SC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/sharpcut/SC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/sharpcut/SC-AppointmentService/pkg/dbmetrics"
	"github.com/sharpcut/SC-AppointmentService/pkg/logger"
	"github.com/sharpcut/SC-AppointmentService/pkg/metrics"
	"github.com/sharpcut/SC-AppointmentService/pkg/simpletxmanager"
	"github.com/sharpcut/SC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SC-AppointmentService...")
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

	// Инициализируем клиент сервиса уведомлений
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify client initialized (NotifyService=%s timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notifyClient,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	var slotsMetrics getAvailableSlotsUC.MetricsCollector
	if cfg.Metrics.Enabled {
		slotsMetrics = metricsCollector
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		scheduleRepository,
		appointmentRepository,
		slotsMetrics,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		scheduleRepository,
		notifyClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, &getAvailableSlotsUC.RealTimeProvider{}, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	addBlockedDate := addBlockedDateHandler.NewHandler(scheduleSvc, log)
	removeBlockedDate := removeBlockedDateHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание: рабочие часы и блокировки
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.ClientAuth)

	// --- Записи клиента ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// История записей клиента
	protected.HandleFunc("/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (панель администратора, тоже за X-Client-ID)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/schedule/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/schedule/blocked-dates", addBlockedDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/schedule/blocked-dates/{blockedDateId}", removeBlockedDate.Handle).Methods(http.MethodDelete)

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
