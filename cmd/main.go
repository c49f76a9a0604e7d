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
	"github.com/redis/go-redis/v9"

	createCheckHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/create_check"
	createRoomHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/create_room"
	deleteCheckHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/delete_check"
	deleteRoomHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/delete_room"
	getCheckHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/get_check"
	getRoomHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/get_room"
	getWeekChecksHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/get_week_checks"
	getWeekScheduleHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/get_week_schedule"
	listRoomsHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/list_rooms"
	updateRoomHandler "github.com/stevenluongo/bna-wellness/internal/api/handlers/update_room"
	"github.com/stevenluongo/bna-wellness/internal/api/middleware"
	"github.com/stevenluongo/bna-wellness/internal/config"
	scheduleCache "github.com/stevenluongo/bna-wellness/internal/infra/cache/schedule"
	checkRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/check"
	roomRepo "github.com/stevenluongo/bna-wellness/internal/infra/storage/room"
	memberServiceClient "github.com/stevenluongo/bna-wellness/internal/integrations/memberservice"
	checksService "github.com/stevenluongo/bna-wellness/internal/service/checks"
	roomsService "github.com/stevenluongo/bna-wellness/internal/service/rooms"
	createCheckUC "github.com/stevenluongo/bna-wellness/internal/usecase/create_check"
	getWeekScheduleUC "github.com/stevenluongo/bna-wellness/internal/usecase/get_week_schedule"
	"github.com/stevenluongo/bna-wellness/pkg/logger"
	"github.com/stevenluongo/bna-wellness/pkg/metrics"
	"github.com/stevenluongo/bna-wellness/pkg/txmanager"
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

	log.Info("Starting BNA-Wellness scheduling service...")
	log.Info("Configuration loaded from config.toml")

	weekStartDay, err := cfg.Schedule.WeekStart()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}

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

	// Запускаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 10*time.Second, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Кеш расписаний (если включён). Интерфейсные переменные остаются
	// нетипизированным nil, когда кеш выключен.
	var (
		checksCacheDep      checksService.ScheduleCache
		scheduleCacheDep    getWeekScheduleUC.ScheduleCache
		createCheckCacheDep createCheckUC.ScheduleCache
		cacheMetricsDep     getWeekScheduleUC.CacheMetrics
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache := scheduleCache.NewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		checksCacheDep = cache
		scheduleCacheDep = cache
		createCheckCacheDep = cache
		log.Info("Schedule cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}
	if cfg.Metrics.Enabled {
		cacheMetricsDep = metricsCollector
	}

	// Клиент сервиса участников студии
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Member service client initialized (url=%s, timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории
	checkRepository := checkRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(roomRepository, log)
	checksSvc := checksService.NewService(checkRepository, checksCacheDep, log)

	// Инициализируем use cases
	createCheckUseCase := createCheckUC.NewUseCase(
		checkRepository,
		roomRepository,
		memberClient,
		createCheckCacheDep,
		txMgr,
		cfg.Schedule.StepMinutes,
		weekStartDay,
		log,
	)

	getWeekScheduleUseCase := getWeekScheduleUC.NewUseCase(
		checkRepository,
		roomRepository,
		scheduleCacheDep,
		cacheMetricsDep,
		cfg.Schedule.StepMinutes,
		weekStartDay,
		log,
	)

	// Инициализируем handlers
	createCheck := createCheckHandler.NewHandler(createCheckUseCase, log)
	deleteCheck := deleteCheckHandler.NewHandler(checksSvc, log)
	getCheck := getCheckHandler.NewHandler(checksSvc, log)
	getWeekChecks := getWeekChecksHandler.NewHandler(checksSvc, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	createRoom := createRoomHandler.NewHandler(roomsSvc, log)
	getRoom := getRoomHandler.NewHandler(roomsSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomsSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список комнат
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Комната по ID
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	// Недельная сетка слотов комнаты
	protected.HandleFunc("/rooms/{roomId}/schedule", getWeekSchedule.Handle).Methods(http.MethodGet)

	// Чеки комнаты за неделю
	protected.HandleFunc("/rooms/{roomId}/weeks/{week}/checks", getWeekChecks.Handle).Methods(http.MethodGet)

	// --- Чеки ---
	// Создание чека
	protected.HandleFunc("/checks", createCheck.Handle).Methods(http.MethodPost)

	// Чек по ID
	protected.HandleFunc("/checks/{checkId}", getCheck.Handle).Methods(http.MethodGet)

	// Удаление чека тренером-владельцем
	protected.HandleFunc("/checks/{checkId}", deleteCheck.Handle).Methods(http.MethodDelete)

	// --- Управление комнатами ---
	// Создание комнаты
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)

	// Обновление комнаты
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)

	// Удаление комнаты
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}
