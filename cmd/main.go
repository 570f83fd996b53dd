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

	calculateQuoteHandler "github.com/vialibre/dispatch-service/internal/api/handlers/calculate_quote"
	cancelAppointmentHandler "github.com/vialibre/dispatch-service/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/vialibre/dispatch-service/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/vialibre/dispatch-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/vialibre/dispatch-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/vialibre/dispatch-service/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/vialibre/dispatch-service/internal/api/handlers/list_appointments"
	manageCustomersHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_customers"
	manageRatesHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_rates"
	manageResourcesHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_resources"
	manageServicesHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_services"
	manageStaffHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_staff"
	manageTariffsHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_tariffs"
	manageZonesHandler "github.com/vialibre/dispatch-service/internal/api/handlers/manage_zones"
	updateStatusHandler "github.com/vialibre/dispatch-service/internal/api/handlers/update_appointment_status"
	"github.com/vialibre/dispatch-service/internal/api/middleware"
	"github.com/vialibre/dispatch-service/internal/config"
	appointmentRepo "github.com/vialibre/dispatch-service/internal/infra/storage/appointment"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	customerRepo "github.com/vialibre/dispatch-service/internal/infra/storage/customer"
	rateRepo "github.com/vialibre/dispatch-service/internal/infra/storage/rate"
	resourceRepo "github.com/vialibre/dispatch-service/internal/infra/storage/resource"
	staffRepo "github.com/vialibre/dispatch-service/internal/infra/storage/staff"
	tariffRepo "github.com/vialibre/dispatch-service/internal/infra/storage/tariff"
	zoneRepo "github.com/vialibre/dispatch-service/internal/infra/storage/zone"
	"github.com/vialibre/dispatch-service/internal/integrations/geodistance"
	appointmentsService "github.com/vialibre/dispatch-service/internal/service/appointments"
	catalogService "github.com/vialibre/dispatch-service/internal/service/catalog"
	directoryService "github.com/vialibre/dispatch-service/internal/service/directory"
	pricingService "github.com/vialibre/dispatch-service/internal/service/pricing"
	tariffsService "github.com/vialibre/dispatch-service/internal/service/tariffs"
	calculateQuoteUC "github.com/vialibre/dispatch-service/internal/usecase/calculate_quote"
	checkAvailabilityUC "github.com/vialibre/dispatch-service/internal/usecase/check_availability"
	createAppointmentUC "github.com/vialibre/dispatch-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/vialibre/dispatch-service/internal/usecase/get_available_slots"
	"github.com/vialibre/dispatch-service/pkg/dbmetrics"
	"github.com/vialibre/dispatch-service/pkg/logger"
	"github.com/vialibre/dispatch-service/pkg/metrics"
	"github.com/vialibre/dispatch-service/pkg/simpletxmanager"
	"github.com/vialibre/dispatch-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting dispatch-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	mapsClient, err := geodistance.NewClient(
		cfg.Maps.APIKey,
		time.Duration(cfg.Maps.Timeout)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize maps client: %v", err)
	}
	log.Info("Maps client initialized (timeout=%ds)", cfg.Maps.Timeout)

	var (
		appointmentRepository *appointmentRepo.Repository
		zoneRepository        *zoneRepo.Repository
		rateRepository        *rateRepo.Repository
		tariffRepository      *tariffRepo.Repository
		catalogRepository     *catalogRepo.Repository
		customerRepository    *customerRepo.Repository
		staffRepository       *staffRepo.Repository
		resourceRepository    *resourceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		zoneRepository = zoneRepo.NewRepository(wrappedDB)
		rateRepository = rateRepo.NewRepository(wrappedDB)
		tariffRepository = tariffRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		zoneRepository = zoneRepo.NewRepository(db)
		rateRepository = rateRepo.NewRepository(db)
		tariffRepository = tariffRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		&appointmentsService.RealTimeProvider{},
		log,
	)
	pricingSvc := pricingService.NewService(
		tariffRepository,
		catalogRepository,
		cfg.Pricing,
		log,
	)
	tariffsSvc := tariffsService.NewService(
		zoneRepository,
		rateRepository,
		tariffRepository,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	directorySvc := directoryService.NewService(
		customerRepository,
		staffRepository,
		resourceRepository,
		log,
	)

	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(pricingSvc, mapsClient, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(appointmentRepository, cfg.Scheduling, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, catalogRepository, cfg.Scheduling, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		calculateQuoteUseCase,
		checkAvailabilityUseCase,
		txMgr,
		log,
	)

	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	manageZones := manageZonesHandler.NewHandler(tariffsSvc, log)
	manageRates := manageRatesHandler.NewHandler(tariffsSvc, log)
	manageTariffs := manageTariffsHandler.NewHandler(tariffsSvc, log)
	manageServices := manageServicesHandler.NewHandler(catalogSvc, log)
	manageCustomers := manageCustomersHandler.NewHandler(directorySvc, log)
	manageStaff := manageStaffHandler.NewHandler(directorySvc, log)
	manageResources := manageResourcesHandler.NewHandler(directorySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes

	// Quote calculation for the booking form
	api.HandleFunc("/quotes", calculateQuote.Handle).Methods(http.MethodPost)

	// Open slots for one service on one date
	api.HandleFunc("/services/{serviceId}/open-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Service catalog browsing
	api.HandleFunc("/services", manageServices.List).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", manageServices.Get).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Appointments
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Availability
	protected.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Zones and rates
	protected.HandleFunc("/zones", manageZones.Create).Methods(http.MethodPost)
	protected.HandleFunc("/zones", manageZones.List).Methods(http.MethodGet)
	protected.HandleFunc("/zones/{zoneId}", manageZones.Get).Methods(http.MethodGet)
	protected.HandleFunc("/zones/{zoneId}", manageZones.Update).Methods(http.MethodPut)
	protected.HandleFunc("/zones/{zoneId}", manageZones.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/zones/{zoneId}/rates", manageRates.Create).Methods(http.MethodPost)
	protected.HandleFunc("/zones/{zoneId}/rates", manageRates.List).Methods(http.MethodGet)
	protected.HandleFunc("/zones/{zoneId}/rates/{rateId}", manageRates.Update).Methods(http.MethodPut)
	protected.HandleFunc("/rates/lookup", manageRates.Lookup).Methods(http.MethodGet)
	protected.HandleFunc("/rates/{rateId}", manageRates.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rates/{rateId}", manageRates.Delete).Methods(http.MethodDelete)

	// Tariff rules
	protected.HandleFunc("/tariff-rules", manageTariffs.Create).Methods(http.MethodPost)
	protected.HandleFunc("/tariff-rules", manageTariffs.List).Methods(http.MethodGet)
	protected.HandleFunc("/tariff-rules/{ruleId}", manageTariffs.Get).Methods(http.MethodGet)
	protected.HandleFunc("/tariff-rules/{ruleId}", manageTariffs.Update).Methods(http.MethodPut)
	protected.HandleFunc("/tariff-rules/{ruleId}", manageTariffs.Delete).Methods(http.MethodDelete)

	// Service catalog administration
	protected.HandleFunc("/services", manageServices.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", manageServices.Update).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", manageServices.Delete).Methods(http.MethodDelete)

	// Directories
	protected.HandleFunc("/customers", manageCustomers.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers", manageCustomers.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", manageCustomers.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", manageCustomers.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{customerId}", manageCustomers.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/staff", manageStaff.Create).Methods(http.MethodPost)
	protected.HandleFunc("/staff", manageStaff.List).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", manageStaff.Get).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", manageStaff.Update).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}", manageStaff.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/resources", manageResources.Create).Methods(http.MethodPost)
	protected.HandleFunc("/resources", manageResources.List).Methods(http.MethodGet)
	protected.HandleFunc("/resources/{resourceId}", manageResources.Get).Methods(http.MethodGet)
	protected.HandleFunc("/resources/{resourceId}", manageResources.Update).Methods(http.MethodPut)
	protected.HandleFunc("/resources/{resourceId}", manageResources.Delete).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
