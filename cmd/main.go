package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bulkDeleteTimeBlocksHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/bulk_delete_time_blocks"
	checkAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_availability"
	createTimeBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_time_block"
	createWorkingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_working_hours"
	deleteTimeBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_time_block"
	deleteWorkingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_working_hours"
	getAvailableRangesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_ranges"
	getTenantSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_tenant_settings"
	getTimeBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_time_block"
	getWorkingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_working_hours"
	listTimeBlocksHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_time_blocks"
	resetBufferSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/reset_buffer_settings"
	setWeeklyScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/set_weekly_schedule"
	updateBufferSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_buffer_settings"
	updateRecurringBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_recurring_block"
	updateTimeBlockHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_time_block"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/events"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	tenantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/tenant"
	timeblockRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/timeblock"
	workinghoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	tenantsettingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/tenantsettings"
	timeblocksService "github.com/m04kA/SMC-AvailabilityService/internal/service/timeblocks"
	workinghoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	checkSlotAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_slot_availability"
	expandRecurrenceUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/expand_recurrence"
	getAvailableRangesUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_ranges"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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
		tenantRepository       *tenantRepo.Repository
		workingHoursRepository *workinghoursRepo.Repository
		timeBlockRepository    *timeblockRepo.Repository
		bookingRepository      *bookingRepo.Repository
	)

	// Интерфейс transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		tenantRepository = tenantRepo.NewRepository(wrappedDB)
		workingHoursRepository = workinghoursRepo.NewRepository(wrappedDB)
		timeBlockRepository = timeblockRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		tenantRepository = tenantRepo.NewRepository(db)
		workingHoursRepository = workinghoursRepo.NewRepository(db)
		timeBlockRepository = timeblockRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	timeBlocksSvc := timeblocksService.NewService(timeBlockRepository, txMgr, log)
	workingHoursSvc := workinghoursService.NewService(workingHoursRepository, txMgr, log)
	tenantSettingsSvc := tenantsettingsService.NewService(tenantRepository, log)

	// Инициализируем use cases
	expandRecurrenceUseCase := expandRecurrenceUC.NewUseCase(timeBlockRepository, txMgr, log)
	getAvailableRangesUseCase := getAvailableRangesUC.NewUseCase(
		tenantRepository,
		workingHoursRepository,
		timeBlockRepository,
		bookingRepository,
		log,
	)
	checkSlotAvailabilityUseCase := checkSlotAvailabilityUC.NewUseCase(
		tenantRepository,
		workingHoursRepository,
		timeBlockRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableRanges := getAvailableRangesHandler.NewHandler(getAvailableRangesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkSlotAvailabilityUseCase, log)
	createTimeBlock := createTimeBlockHandler.NewHandler(timeBlocksSvc, expandRecurrenceUseCase, log)
	getTimeBlock := getTimeBlockHandler.NewHandler(timeBlocksSvc, log)
	listTimeBlocks := listTimeBlocksHandler.NewHandler(timeBlocksSvc, log)
	updateTimeBlock := updateTimeBlockHandler.NewHandler(timeBlocksSvc, log)
	deleteTimeBlock := deleteTimeBlockHandler.NewHandler(timeBlocksSvc, log)
	bulkDeleteTimeBlocks := bulkDeleteTimeBlocksHandler.NewHandler(timeBlocksSvc, log)
	updateRecurringBlock := updateRecurringBlockHandler.NewHandler(expandRecurrenceUseCase, log)
	createWorkingHours := createWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	setWeeklySchedule := setWeeklyScheduleHandler.NewHandler(workingHoursSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	getTenantSettings := getTenantSettingsHandler.NewHandler(tenantSettingsSvc, log)
	updateBufferSettings := updateBufferSettingsHandler.NewHandler(tenantSettingsSvc, log)
	resetBufferSettings := resetBufferSettingsHandler.NewHandler(tenantSettingsSvc, log)

	// Запускаем Kafka консьюмеры (если включены)
	consumersCtx, stopConsumers := context.WithCancel(context.Background())
	defer stopConsumers()

	var consumersWG sync.WaitGroup
	var consumers []*events.Consumer

	if cfg.Kafka.Enabled {
		consumerCfg := events.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			GroupID: cfg.Kafka.GroupID,
		}

		bookingEvents := events.NewBookingEventHandler(bookingRepository, log)
		tenantEvents := events.NewTenantEventHandler(tenantRepository, log)

		consumers = append(consumers, events.NewBookingConsumers(consumerCfg, bookingEvents, metricsCollector, log)...)
		consumers = append(consumers, events.NewTenantConsumers(consumerCfg, tenantEvents, metricsCollector, log)...)

		for _, consumer := range consumers {
			consumersWG.Add(1)
			go func(c *events.Consumer) {
				defer consumersWG.Done()
				if err := c.Run(consumersCtx); err != nil {
					log.Error("Kafka consumer stopped with error: %v", err)
				}
			}(consumer)
		}
		log.Info("Kafka consumers started (brokers=%v, group=%s)", cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют X-Tenant-ID
	api := r.PathPrefix("/api/v1/availability").Subrouter()
	api.Use(middleware.Auth)

	// --- Доступность ---
	api.HandleFunc("/available-ranges", getAvailableRanges.Handle).Methods(http.MethodGet)
	api.HandleFunc("/check", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Блокировки времени ---
	api.HandleFunc("/time-blocks", createTimeBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-blocks", listTimeBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-blocks", bulkDeleteTimeBlocks.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/time-blocks/recurring/{recurrenceId}", updateRecurringBlock.Handle).Methods(http.MethodPut)
	api.HandleFunc("/time-blocks/{blockId}", getTimeBlock.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-blocks/{blockId}", updateTimeBlock.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/time-blocks/{blockId}", deleteTimeBlock.Handle).Methods(http.MethodDelete)

	// --- Рабочие часы ---
	api.HandleFunc("/working-hours", createWorkingHours.Handle).Methods(http.MethodPost)
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", setWeeklySchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/working-hours/{hoursId}", deleteWorkingHours.Handle).Methods(http.MethodDelete)

	// --- Настройки тенанта ---
	api.HandleFunc("/settings", getTenantSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/buffers", updateBufferSettings.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/settings/buffers", resetBufferSettings.Handle).Methods(http.MethodDelete)

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

	// Останавливаем консьюмеры
	if cfg.Kafka.Enabled {
		stopConsumers()
		consumersWG.Wait()
		for _, consumer := range consumers {
			if err := consumer.Close(); err != nil {
				log.Error("Failed to close Kafka consumer: %v", err)
			}
		}
		log.Info("Kafka consumers stopped")
	}

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
