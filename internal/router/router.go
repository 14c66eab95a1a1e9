package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxdesk/internal/domain"
	"taxdesk/internal/handler"
	"taxdesk/internal/middleware"
	"taxdesk/internal/service"
)

// Handlers groups every HTTP handler mounted by Setup.
type Handlers struct {
	Health        *handler.HealthHandler
	Client        *handler.ClientHandler
	Filing        *handler.FilingHandler
	Employee      *handler.EmployeeHandler
	Document      *handler.DocumentHandler
	Fee           *handler.FeeHandler
	Reminder      *handler.ReminderHandler
	Inventory     *handler.InventoryHandler
	Checklist     *handler.ChecklistHandler
	Communication *handler.CommunicationHandler
	Dashboard     *handler.DashboardHandler
	Tools         *handler.ToolsHandler
	Audit         *handler.AuditHandler
	CMA           *handler.CMAHandler
	Assessment    *handler.AssessmentHandler
	Challan       *handler.ChallanHandler
	ClientNote    *handler.ClientNoteHandler
	GSTIN         *handler.GSTINHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(log *zap.Logger, tokens service.TokenService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(tokens))
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	clients := v1.Group("/clients")
	clients.POST("", h.Client.Create)
	clients.GET("", h.Client.List)
	clients.GET("/search", h.Client.Search)
	clients.GET("/:id", h.Client.GetByID)
	clients.PUT("/:id", h.Client.Update)
	clients.PUT("/:id/status", h.Client.SetStatus)
	clients.DELETE("/:id", adminOnly, h.Client.Delete)

	filings := v1.Group("/filings")
	filings.POST("", h.Filing.Create)
	filings.GET("", h.Filing.List)
	filings.GET("/tracker", h.Filing.Tracker)
	filings.GET("/export", h.Filing.Export)
	filings.GET("/form-types", h.Filing.FormTypes)
	filings.GET("/:id", h.Filing.GetByID)
	filings.PUT("/:id", h.Filing.Update)
	filings.PUT("/:id/status", h.Filing.ChangeStatus)
	filings.DELETE("/:id", adminOnly, h.Filing.Delete)

	employees := v1.Group("/employees")
	employees.POST("", h.Employee.Create)
	employees.GET("", h.Employee.List)
	employees.GET("/:id", h.Employee.GetByID)
	employees.PUT("/:id", h.Employee.Update)
	employees.DELETE("/:id", adminOnly, h.Employee.Delete)

	payroll := v1.Group("/payroll")
	payroll.POST("", h.Employee.CreatePayroll)
	payroll.GET("", h.Employee.ListPayroll)
	payroll.GET("/summary", h.Employee.PayrollSummary)
	payroll.DELETE("/:id", adminOnly, h.Employee.DeletePayroll)

	documents := v1.Group("/documents")
	documents.POST("", h.Document.Upload)
	documents.GET("", h.Document.List)
	documents.GET("/:id", h.Document.GetByID)
	documents.GET("/:id/download", h.Document.Download)
	documents.DELETE("/:id", adminOnly, h.Document.Delete)

	fees := v1.Group("/fees")
	fees.POST("", h.Fee.Create)
	fees.GET("", h.Fee.List)
	fees.GET("/report", h.Fee.Report)
	fees.GET("/export", h.Fee.Export)
	fees.GET("/:id", h.Fee.GetByID)
	fees.PUT("/:id", h.Fee.Update)
	fees.POST("/:id/pay", h.Fee.MarkPaid)
	fees.POST("/:id/reopen", h.Fee.Reopen)
	fees.DELETE("/:id", adminOnly, h.Fee.Delete)

	reminders := v1.Group("/reminders")
	reminders.POST("", h.Reminder.Create)
	reminders.GET("", h.Reminder.List)
	reminders.GET("/upcoming", h.Reminder.Upcoming)
	reminders.GET("/follow-ups", h.Reminder.FollowUps)
	reminders.GET("/:id", h.Reminder.GetByID)
	reminders.PUT("/:id", h.Reminder.Update)
	reminders.POST("/:id/complete", h.Reminder.Complete)
	reminders.POST("/:id/cancel", h.Reminder.Cancel)
	reminders.DELETE("/:id", adminOnly, h.Reminder.Delete)

	inventory := v1.Group("/inventory")
	inventory.POST("", h.Inventory.Create)
	inventory.GET("", h.Inventory.List)
	inventory.GET("/summary", h.Inventory.Summary)
	inventory.POST("/import", adminOnly, h.Inventory.Import)
	inventory.GET("/:id", h.Inventory.GetByID)
	inventory.PUT("/:id", h.Inventory.Update)
	inventory.POST("/:id/adjust", h.Inventory.Adjust)
	inventory.DELETE("/:id", adminOnly, h.Inventory.Delete)

	checklists := v1.Group("/checklists")
	checklists.POST("", h.Checklist.Create)
	checklists.GET("", h.Checklist.List)
	checklists.GET("/:id", h.Checklist.GetByID)
	checklists.PUT("/:id/items/:itemId", h.Checklist.MarkItem)
	checklists.POST("/:id/complete", h.Checklist.Complete)
	checklists.POST("/:id/reopen", h.Checklist.Reopen)
	checklists.DELETE("/:id", adminOnly, h.Checklist.Delete)

	templates := v1.Group("/templates")
	templates.POST("", h.Communication.CreateTemplate)
	templates.GET("", h.Communication.ListTemplates)
	templates.GET("/:id", h.Communication.GetTemplate)
	templates.PUT("/:id", h.Communication.UpdateTemplate)
	templates.DELETE("/:id", adminOnly, h.Communication.DeleteTemplate)

	comms := v1.Group("/communications")
	comms.GET("", h.Communication.ListLogs)
	comms.POST("/send", h.Communication.Send)
	comms.POST("/:id/retry", h.Communication.Retry)

	audits := v1.Group("/audits")
	audits.POST("", h.Audit.Create)
	audits.GET("", h.Audit.List)
	audits.GET("/:id", h.Audit.GetByID)
	audits.PUT("/:id", h.Audit.Update)
	audits.PUT("/:id/status", h.Audit.ChangeStatus)
	audits.DELETE("/:id", adminOnly, h.Audit.Delete)

	cma := v1.Group("/cma-reports")
	cma.POST("", h.CMA.Create)
	cma.GET("", h.CMA.List)
	cma.GET("/:id", h.CMA.GetByID)
	cma.PUT("/:id", h.CMA.Update)
	cma.PUT("/:id/status", h.CMA.ChangeStatus)
	cma.DELETE("/:id", adminOnly, h.CMA.Delete)

	assessments := v1.Group("/assessment-orders")
	assessments.POST("", h.Assessment.Create)
	assessments.GET("", h.Assessment.List)
	assessments.GET("/:id", h.Assessment.GetByID)
	assessments.PUT("/:id", h.Assessment.Update)
	assessments.PUT("/:id/status", h.Assessment.ChangeStatus)
	assessments.DELETE("/:id", adminOnly, h.Assessment.Delete)

	challans := v1.Group("/challans")
	challans.POST("", h.Challan.Create)
	challans.GET("", h.Challan.List)
	challans.GET("/:id", h.Challan.GetByID)
	challans.PUT("/:id", h.Challan.Update)
	challans.PUT("/:id/status", h.Challan.ChangeStatus)
	challans.DELETE("/:id", adminOnly, h.Challan.Delete)

	// Note authors delete their own notes, so there is no admin gate here.
	notes := v1.Group("/client-notes")
	notes.POST("", h.ClientNote.Create)
	notes.GET("", h.ClientNote.List)
	notes.GET("/:id", h.ClientNote.GetByID)
	notes.PUT("/:id", h.ClientNote.Update)
	notes.PUT("/:id/pin", h.ClientNote.Pin)
	notes.DELETE("/:id", h.ClientNote.Delete)

	gstin := v1.Group("/gstin-validations")
	gstin.POST("", h.GSTIN.Validate)
	gstin.GET("", h.GSTIN.Recent)

	v1.GET("/dashboard", h.Dashboard.Dashboard)
	v1.GET("/analytics", h.Dashboard.Analytics)

	tools := v1.Group("/tools")
	tools.GET("/gstin/:gstin", h.Tools.CheckGSTIN)
	tools.GET("/financial-year", h.Tools.FinancialYear)

	return r
}
