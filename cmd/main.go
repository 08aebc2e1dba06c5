package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	cancelAppointmentHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/cancel_appointment"
	confirmCancellationHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/confirm_cancellation"
	createAppointmentHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/create_appointment"
	createPatientHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/create_patient"
	deletePatientHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/delete_patient"
	getAppointmentFormHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/get_appointment_form"
	getDayAppointmentsHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/get_day_appointments"
	getJournalHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/get_journal"
	getRescheduleFormHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/get_reschedule_form"
	listPatientsHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/list_patients"
	massRescheduleHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/mass_reschedule"
	updatePatientHandler "github.com/m04kA/SMC-ClinicConsole/internal/api/handlers/update_patient"
	"github.com/m04kA/SMC-ClinicConsole/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicConsole/internal/config"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	journalRepo "github.com/m04kA/SMC-ClinicConsole/internal/infra/storage/journal"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	limitsService "github.com/m04kA/SMC-ClinicConsole/internal/service/limits"
	patientsService "github.com/m04kA/SMC-ClinicConsole/internal/service/patients"
	cancelAppointmentUC "github.com/m04kA/SMC-ClinicConsole/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/m04kA/SMC-ClinicConsole/internal/usecase/create_appointment"
	listDayAppointmentsUC "github.com/m04kA/SMC-ClinicConsole/internal/usecase/list_day_appointments"
	massRescheduleUC "github.com/m04kA/SMC-ClinicConsole/internal/usecase/mass_reschedule"
	prepareAppointmentFormUC "github.com/m04kA/SMC-ClinicConsole/internal/usecase/prepare_appointment_form"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
	"github.com/m04kA/SMC-ClinicConsole/pkg/metrics"
)

type options struct {
	Config string `short:"c" long:"config" description:"Path to the TOML config file" default:"config.toml"`
}

// Journal общий интерфейс postgres журнала и заглушки
type Journal interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
	ListRecent(ctx context.Context, limit uint64) ([]domain.JournalEntry, error)
	Enabled() bool
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(opts.Config)
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

	log.Info("Starting SMC-ClinicConsole...")
	log.Info("Configuration loaded from %s", opts.Config)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var transport http.RoundTripper
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		transport = metricsCollector.InstrumentRoundTripper(http.DefaultTransport)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента backend клиники
	clinicClient := clinicapi.NewClient(
		cfg.ClinicAPI.URL,
		time.Duration(cfg.ClinicAPI.Timeout)*time.Second,
		transport,
		log,
	)
	log.Info("Clinic API client initialized (url=%s, timeout=%ds)", cfg.ClinicAPI.URL, cfg.ClinicAPI.Timeout)

	// Подключаемся к базе журнала (если включен)
	var journal Journal = journalRepo.NewNoop()
	if cfg.Journal.Enabled {
		db, err := sql.Open("postgres", cfg.Journal.DSN())
		if err != nil {
			log.Fatal("Failed to connect to journal database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Journal.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Journal.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Journal.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping journal database: %v", err)
		}
		log.Info("Successfully connected to journal database (host=%s, port=%d, db=%s)",
			cfg.Journal.Host, cfg.Journal.Port, cfg.Journal.DBName)

		journal = journalRepo.NewRepository(db)
	} else {
		log.Info("Operations journal disabled")
	}

	workingDay, err := cfg.Schedule.WorkingDay()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	appointmentTypes := cfg.Schedule.Types()

	// Инициализируем сервисы
	limitsSvc := limitsService.NewService(clinicClient, log)
	patientsSvc := patientsService.NewService(clinicClient, journal, log)

	// Инициализируем use cases
	listDayAppointmentsUseCase := listDayAppointmentsUC.NewUseCase(clinicClient, log)
	prepareAppointmentFormUseCase := prepareAppointmentFormUC.NewUseCase(
		clinicClient,
		limitsSvc,
		prepareAppointmentFormUC.Schedule{
			WorkingDay:       workingDay,
			StepMinutes:      cfg.Schedule.SlotStepMinutes,
			AppointmentTypes: appointmentTypes,
		},
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(clinicClient, journal, appointmentTypes, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(clinicClient, journal, log)
	massRescheduleUseCase := massRescheduleUC.NewUseCase(clinicClient, journal, log)

	// Инициализируем handlers
	renderer, err := handlers.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	getDayAppointments := getDayAppointmentsHandler.NewHandler(listDayAppointmentsUseCase, renderer, log)
	getAppointmentForm := getAppointmentFormHandler.NewHandler(prepareAppointmentFormUseCase, renderer, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	confirmCancellation := confirmCancellationHandler.NewHandler(renderer, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	listPatients := listPatientsHandler.NewHandler(patientsSvc, renderer, log)
	createPatient := createPatientHandler.NewHandler(patientsSvc, log)
	updatePatient := updatePatientHandler.NewHandler(patientsSvc, log)
	deletePatient := deletePatientHandler.NewHandler(patientsSvc, log)
	getRescheduleForm := getRescheduleFormHandler.NewHandler(limitsSvc, renderer, log)
	massReschedule := massRescheduleHandler.NewHandler(massRescheduleUseCase, log)
	getJournal := getJournalHandler.NewHandler(journal, renderer, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		go limiter.Run(ctx)
		r.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	r.Handle("/", http.RedirectHandler("/appointments", http.StatusFound)).Methods(http.MethodGet)

	// --- Приемы ---
	r.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/appointments/new", getAppointmentForm.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{appointmentId}/cancel", confirmCancellation.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// --- Пациенты ---
	r.HandleFunc("/patients", listPatients.Handle).Methods(http.MethodGet)
	r.HandleFunc("/patients", createPatient.Handle).Methods(http.MethodPost)
	r.HandleFunc("/patients/{patientId}", updatePatient.Handle).Methods(http.MethodPost)
	r.HandleFunc("/patients/{patientId}/delete", deletePatient.Handle).Methods(http.MethodPost)

	// --- Врачи ---
	r.HandleFunc("/doctors/reschedule", getRescheduleForm.Handle).Methods(http.MethodGet)
	r.HandleFunc("/doctors/reschedule", massReschedule.Handle).Methods(http.MethodPost)

	// --- Журнал ---
	r.HandleFunc("/journal", getJournal.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(gorillaHandlers.ProxyHeaders(r)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()

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
