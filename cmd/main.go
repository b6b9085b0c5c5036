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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAdminHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/create_admin"
	createMovieHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/create_movie"
	deleteMovieHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/delete_movie"
	getAvailableSlotsHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/get_available_slots"
	getHallShowtimesHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/get_hall_showtimes"
	getTheaterReportsHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/get_theater_reports"
	getTicketStatsHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/get_ticket_stats"
	listAdminsHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/list_admins"
	listHallsHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/list_halls"
	listMoviesHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/list_movies"
	listTheatersHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/list_theaters"
	loginHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/login"
	scheduleShowtimesHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/schedule_showtimes"
	updateMovieHandler "github.com/wdfin/popcore-admin-service/internal/api/handlers/update_movie"
	"github.com/wdfin/popcore-admin-service/internal/api/middleware"
	"github.com/wdfin/popcore-admin-service/internal/config"
	"github.com/wdfin/popcore-admin-service/internal/domain"
	catalogCache "github.com/wdfin/popcore-admin-service/internal/infra/cache/catalog"
	adminRepo "github.com/wdfin/popcore-admin-service/internal/infra/storage/admin"
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
	adminsService "github.com/wdfin/popcore-admin-service/internal/service/admins"
	catalogService "github.com/wdfin/popcore-admin-service/internal/service/catalog"
	reportsService "github.com/wdfin/popcore-admin-service/internal/service/reports"
	getAvailableSlotsUC "github.com/wdfin/popcore-admin-service/internal/usecase/get_available_slots"
	scheduleShowtimesUC "github.com/wdfin/popcore-admin-service/internal/usecase/schedule_showtimes"
	"github.com/wdfin/popcore-admin-service/pkg/logger"
	"github.com/wdfin/popcore-admin-service/pkg/metrics"
)

func main() {
	// .env опционален, переменные окружения перекрывают config.toml
	_ = godotenv.Load()

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

	log.Info("Starting popcore-admin-service...")
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

	// Кэш каталога в Redis. При недоступном Redis сервис работает без кэша.
	var cache *catalogCache.Cache
	if cfg.Redis.Enabled {
		cache = catalogCache.New(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
		if cache != nil {
			defer cache.Close()
			log.Info("Catalog cache connected (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Клиент core-бэкенда
	popcore := popcoreClient.NewClient(
		cfg.Popcore.URL,
		time.Duration(cfg.Popcore.Timeout)*time.Second,
		log,
	)
	log.Info("Popcore client initialized (url=%s, timeout=%ds)", cfg.Popcore.URL, cfg.Popcore.Timeout)

	// Сетка слотов расписания
	grid := domain.SlotGrid{
		OpenHour:        cfg.Scheduling.OpenHour,
		CloseHour:       cfg.Scheduling.CloseHour,
		SlotLengthHours: cfg.Scheduling.SlotLengthHours,
	}
	if err := grid.Validate(); err != nil {
		log.Fatal("Invalid scheduling grid: %v", err)
	}
	log.Info("Slot grid: %02d:00-%02d:00, slot length %dh",
		grid.OpenHour, grid.CloseHour, grid.SlotLengthHours)

	// Инициализируем репозитории
	adminRepository := adminRepo.NewRepository(db)

	// Инициализируем сервисы
	adminsSvc := adminsService.NewService(
		adminRepository,
		cfg.Auth.JWTSecretValue(),
		time.Duration(cfg.Auth.TokenTTL)*time.Minute,
		cfg.Auth.BcryptCost,
		log,
	)
	catalogSvc := catalogService.NewService(popcore, cache, log)
	reportsSvc := reportsService.NewService(popcore, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(popcore, grid, log)
	scheduleShowtimesUseCase := scheduleShowtimesUC.NewUseCase(popcore, grid, cfg.Scheduling.MaxDurationHours, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(adminsSvc, log)
	createAdmin := createAdminHandler.NewHandler(adminsSvc, log)
	listAdmins := listAdminsHandler.NewHandler(adminsSvc, log)
	listMovies := listMoviesHandler.NewHandler(catalogSvc, log)
	createMovie := createMovieHandler.NewHandler(catalogSvc, log)
	updateMovie := updateMovieHandler.NewHandler(catalogSvc, log)
	deleteMovie := deleteMovieHandler.NewHandler(catalogSvc, log)
	listTheaters := listTheatersHandler.NewHandler(catalogSvc, log)
	listHalls := listHallsHandler.NewHandler(catalogSvc, log)
	getHallShowtimes := getHallShowtimesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	scheduleShowtimes := scheduleShowtimesHandler.NewHandler(scheduleShowtimesUseCase, log)
	getTheaterReports := getTheaterReportsHandler.NewHandler(reportsSvc, log)
	getTicketStats := getTicketStatsHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecretValue()), log))

	// --- Учетные записи ---
	protected.HandleFunc("/admins", createAdmin.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admins", listAdmins.Handle).Methods(http.MethodGet)

	// --- Каталог фильмов ---
	protected.HandleFunc("/movies", listMovies.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/movies", createMovie.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/movies/{movieID}", updateMovie.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/movies/{movieID}", deleteMovie.Handle).Methods(http.MethodDelete)

	// --- Кинотеатры и залы ---
	protected.HandleFunc("/theaters", listTheaters.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/theaters/{theaterID}/halls", listHalls.Handle).Methods(http.MethodGet)

	// --- Расписание сеансов ---
	protected.HandleFunc("/halls/{hallID}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/halls/{hallID}/showtimes", getHallShowtimes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/showtimes/batch", scheduleShowtimes.Handle).Methods(http.MethodPost)

	// --- Отчеты ---
	protected.HandleFunc("/theaters/{theaterID}/reports", getTheaterReports.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/ticket-stats", getTicketStats.Handle).Methods(http.MethodGet)

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
