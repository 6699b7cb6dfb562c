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

	cancelReservationHandler "github.com/hublumi/booking-service/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/hublumi/booking-service/internal/api/handlers/check_availability"
	createEquipmentHandler "github.com/hublumi/booking-service/internal/api/handlers/create_equipment"
	createLocadoraHandler "github.com/hublumi/booking-service/internal/api/handlers/create_locadora"
	createReservationHandler "github.com/hublumi/booking-service/internal/api/handlers/create_reservation"
	deleteEquipmentHandler "github.com/hublumi/booking-service/internal/api/handlers/delete_equipment"
	getEquipmentHandler "github.com/hublumi/booking-service/internal/api/handlers/get_equipment"
	getLocadoraHandler "github.com/hublumi/booking-service/internal/api/handlers/get_locadora"
	getLocadoraReservationsHandler "github.com/hublumi/booking-service/internal/api/handlers/get_locadora_reservations"
	getReservationHandler "github.com/hublumi/booking-service/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/hublumi/booking-service/internal/api/handlers/get_user_reservations"
	listEquipmentsHandler "github.com/hublumi/booking-service/internal/api/handlers/list_equipments"
	listLocadorasHandler "github.com/hublumi/booking-service/internal/api/handlers/list_locadoras"
	updateEquipmentHandler "github.com/hublumi/booking-service/internal/api/handlers/update_equipment"
	updateLocadoraHandler "github.com/hublumi/booking-service/internal/api/handlers/update_locadora"
	updateReservationStatusHandler "github.com/hublumi/booking-service/internal/api/handlers/update_reservation_status"
	"github.com/hublumi/booking-service/internal/api/middleware"
	"github.com/hublumi/booking-service/internal/availability"
	"github.com/hublumi/booking-service/internal/config"
	equipmentRepo "github.com/hublumi/booking-service/internal/infra/storage/equipment"
	locadoraRepo "github.com/hublumi/booking-service/internal/infra/storage/locadora"
	reservationRepo "github.com/hublumi/booking-service/internal/infra/storage/reservation"
	equipmentsService "github.com/hublumi/booking-service/internal/service/equipments"
	locadorasService "github.com/hublumi/booking-service/internal/service/locadoras"
	reservationsService "github.com/hublumi/booking-service/internal/service/reservations"
	checkAvailabilityUC "github.com/hublumi/booking-service/internal/usecase/check_availability"
	createReservationUC "github.com/hublumi/booking-service/internal/usecase/create_reservation"
	"github.com/hublumi/booking-service/pkg/dbmetrics"
	"github.com/hublumi/booking-service/pkg/logger"
	"github.com/hublumi/booking-service/pkg/metrics"
	"github.com/hublumi/booking-service/pkg/simpletxmanager"
	"github.com/hublumi/booking-service/pkg/txmanager"
)

func main() {
	// Carrega a configuração
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HubLumi booking service...")
	log.Info("Configuration loaded from config.toml")

	// Inicializa as métricas (se habilitadas)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Conecta no banco de dados
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configura o connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Inicializa repositórios e transaction manager (com métricas ou sem)
	var (
		equipmentRepository   *equipmentRepo.Repository
		reservationRepository *reservationRepo.Repository
		locadoraRepository    *locadoraRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		equipmentRepository = equipmentRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		locadoraRepository = locadoraRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		equipmentRepository = equipmentRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		locadoraRepository = locadoraRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Motor de disponibilidade com a política do config
	policy := availability.Policy{CompletedBlocks: cfg.Availability.CompletedBlocks}
	engine := availability.NewEngine(equipmentRepository, reservationRepository, policy)
	log.Info("Availability engine initialized (completed_blocks=%v)", cfg.Availability.CompletedBlocks)

	// Inicializa os serviços
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	equipmentSvc := equipmentsService.NewService(equipmentRepository, locadoraRepository, log)
	locadoraSvc := locadorasService.NewService(locadoraRepository, log)

	// Inicializa os use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		equipmentRepository,
		locadoraRepository,
		engine,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(engine, log)

	// Inicializa os handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getLocadoraReservations := getLocadoraReservationsHandler.NewHandler(reservationSvc, log)
	listEquipments := listEquipmentsHandler.NewHandler(equipmentSvc, log)
	getEquipment := getEquipmentHandler.NewHandler(equipmentSvc, log)
	createEquipment := createEquipmentHandler.NewHandler(equipmentSvc, log)
	updateEquipment := updateEquipmentHandler.NewHandler(equipmentSvc, log)
	deleteEquipment := deleteEquipmentHandler.NewHandler(equipmentSvc, log)
	listLocadoras := listLocadorasHandler.NewHandler(locadoraSvc, log)
	getLocadora := getLocadoraHandler.NewHandler(locadoraSvc, log)
	createLocadora := createLocadoraHandler.NewHandler(locadoraSvc, log)
	updateLocadora := updateLocadoraHandler.NewHandler(locadoraSvc, log)

	// Configura o roteador
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (sem autenticação)
	// ============================================================

	// Catálogo de equipamentos
	api.HandleFunc("/equipments", listEquipments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipments/{equipmentId}", getEquipment.Handle).Methods(http.MethodGet)

	// Consulta de disponibilidade por período
	api.HandleFunc("/equipments/{equipmentId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Locadoras
	api.HandleFunc("/locadoras", listLocadoras.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locadoras/{locadoraId}", getLocadora.Handle).Methods(http.MethodGet)

	// Cadastro de locadora (onboarding)
	api.HandleFunc("/locadoras", createLocadora.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (exigem X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Reservas ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Histórico de reservas do cliente
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Painel da locadora ---
	protected.HandleFunc("/locadoras/{locadoraId}/reservations", getLocadoraReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/locadoras/{locadoraId}", updateLocadora.Handle).Methods(http.MethodPut)

	// Gestão de estoque
	protected.HandleFunc("/equipments", createEquipment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/equipments/{equipmentId}", updateEquipment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/equipments/{equipmentId}", deleteEquipment.Handle).Methods(http.MethodDelete)

	// Cria o servidor HTTP
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
