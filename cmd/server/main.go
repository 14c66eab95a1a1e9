package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxdesk/internal/config"
	"taxdesk/internal/email/noop"
	"taxdesk/internal/email/ses"
	"taxdesk/internal/handler"
	"taxdesk/internal/logger"
	"taxdesk/internal/port"
	"taxdesk/internal/repository/postgres"
	"taxdesk/internal/router"
	"taxdesk/internal/service"
	s3storage "taxdesk/internal/storage/s3"
	"taxdesk/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog := logger.New(cfg.Log)
	defer func() { _ = zlog.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Initialize repositories
	tx := postgres.NewTransactor(db)
	clientRepo := postgres.NewClientRepo(db)
	filingRepo := postgres.NewFilingRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	payrollRepo := postgres.NewPayrollRepo(db)
	documentRepo := postgres.NewDocumentRepo(db)
	feeRepo := postgres.NewFeeRepo(db)
	reminderRepo := postgres.NewReminderRepo(db)
	inventoryRepo := postgres.NewInventoryRepo(db)
	checklistRepo := postgres.NewChecklistRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)
	commLogRepo := postgres.NewCommunicationLogRepo(db)
	auditRepo := postgres.NewAuditRepo(db)
	cmaRepo := postgres.NewCMAReportRepo(db)
	assessmentRepo := postgres.NewAssessmentRepo(db)
	challanRepo := postgres.NewChallanRepo(db)
	noteRepo := postgres.NewClientNoteRepo(db)
	gstinRepo := postgres.NewGSTINValidationRepo(db)

	// Initialize storage and email
	store, err := s3storage.NewDocumentStore(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	sender, err := newEmailSender(ctx, &cfg.Email, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	valid := validator.New()
	clock := service.Clock(time.Now)
	tokenSvc := service.NewTokenService(cfg.JWT)
	clientSvc := service.NewClientService(clientRepo, feeRepo, tx, valid, zlog)
	filingSvc := service.NewFilingService(filingRepo, clientRepo, tx, valid, clock, zlog)
	employeeSvc := service.NewEmployeeService(employeeRepo, payrollRepo, tx, valid, clock, zlog)
	documentSvc := service.NewDocumentService(documentRepo, clientRepo, store, tx, &cfg.S3, valid, zlog)
	feeSvc := service.NewFeeService(feeRepo, clientRepo, tx, valid, clock, zlog)
	reminderSvc := service.NewReminderService(reminderRepo, clientRepo, tx, valid, clock, zlog)
	inventorySvc := service.NewInventoryService(inventoryRepo, tx, valid, zlog)
	checklistSvc := service.NewChecklistService(checklistRepo, clientRepo, tx, valid, clock, zlog)
	commSvc := service.NewCommunicationService(templateRepo, commLogRepo, clientRepo, feeRepo, sender, tx, valid, clock, zlog)
	auditSvc := service.NewAuditService(auditRepo, clientRepo, tx, valid, clock, zlog)
	cmaSvc := service.NewCMAService(cmaRepo, clientRepo, tx, valid, zlog)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, clientRepo, tx, valid, clock, zlog)
	challanSvc := service.NewChallanService(challanRepo, clientRepo, tx, valid, clock, zlog)
	noteSvc := service.NewClientNoteService(noteRepo, clientRepo, tx, valid, zlog)
	gstinSvc := service.NewGSTINService(gstinRepo, clock, zlog)
	dashboardSvc := service.NewDashboardService(clientRepo, filingRepo, feeRepo, reminderSvc, cfg.Dashboard, clock)

	// Initialize handlers
	storagePing := handler.PingFunc(func(ctx context.Context) error { return store.Ping(ctx, cfg.S3.Bucket) })
	handlers := router.Handlers{
		Health:        handler.NewHealthHandler(db, storagePing),
		Client:        handler.NewClientHandler(clientSvc),
		Filing:        handler.NewFilingHandler(filingSvc, clientSvc),
		Employee:      handler.NewEmployeeHandler(employeeSvc),
		Document:      handler.NewDocumentHandler(documentSvc),
		Fee:           handler.NewFeeHandler(feeSvc, clientSvc),
		Reminder:      handler.NewReminderHandler(reminderSvc),
		Inventory:     handler.NewInventoryHandler(inventorySvc),
		Checklist:     handler.NewChecklistHandler(checklistSvc),
		Communication: handler.NewCommunicationHandler(commSvc),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc),
		Tools:         handler.NewToolsHandler(time.Now),
		Audit:         handler.NewAuditHandler(auditSvc),
		CMA:           handler.NewCMAHandler(cmaSvc),
		Assessment:    handler.NewAssessmentHandler(assessmentSvc),
		Challan:       handler.NewChallanHandler(challanSvc),
		ClientNote:    handler.NewClientNoteHandler(noteSvc),
		GSTIN:         handler.NewGSTINHandler(gstinSvc),
	}

	// Setup router
	r := router.Setup(zlog, tokenSvc, cfg.Server.AllowedOrigins, handlers)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	zlog.Info("server stopped")
	return nil
}

// newEmailSender picks the delivery backend named by cfg.Provider.
func newEmailSender(ctx context.Context, cfg *config.EmailConfig, zlog *zap.Logger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(ctx, cfg)
	case "", "noop":
		return noop.NewNoopSender(zlog), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
