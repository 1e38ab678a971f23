package router

import (
	"github.com/gin-gonic/gin"

	"gstportal/internal/config"
	"gstportal/internal/domain"
	"gstportal/internal/handler"
	"gstportal/internal/middleware"
	"gstportal/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	ddoH *handler.DDOHandler,
	masterH *handler.MasterHandler,
	billH *handler.BillHandler,
	certH *handler.CertificateHandler,
	validateH *handler.ValidateHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/me", userH.Me)
	users.POST("/me/password", userH.ChangePassword)
	users.GET("/:id", userH.Get)
	users.PATCH("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), userH.Delete)

	// DDO master data
	ddos := protected.Group("/ddos")
	ddos.POST("", middleware.RequireRole(domain.RoleAdmin), ddoH.Create)
	ddos.GET("", ddoH.List)
	ddos.GET("/code/:code", ddoH.GetByCode)
	ddos.GET("/:id", ddoH.Get)
	ddos.PATCH("/:id", middleware.RequireRole(domain.RoleAdmin), ddoH.Update)
	ddos.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), ddoH.Delete)

	// GSTIN, bank account, and HSN master data
	master := protected.Group("/master")
	master.POST("/gstins", masterH.CreateGSTIN)
	master.GET("/gstins", masterH.ListGSTINs)
	master.GET("/gstins/:gstin", masterH.GetGSTIN)
	master.DELETE("/gstins/:id", middleware.RequireRole(domain.RoleAdmin), masterH.DeleteGSTIN)
	master.POST("/bank-accounts", masterH.CreateBankAccount)
	master.GET("/bank-accounts", masterH.ListBankAccounts)
	master.DELETE("/bank-accounts/:id", middleware.RequireRole(domain.RoleAdmin), masterH.DeleteBankAccount)
	master.GET("/hsn", masterH.SearchHSN)
	master.GET("/hsn/:code", masterH.GetHSN)

	// Billing
	bills := protected.Group("/bills")
	bills.POST("", billH.Create)
	bills.GET("", billH.List)
	bills.GET("/export", billH.ExportCSV)
	bills.GET("/:id", billH.Get)
	bills.POST("/:id/cancel", billH.Cancel)
	protected.POST("/billing/calculate", billH.Calculate)

	// Field validation for entry screens
	protected.POST("/validate", validateH.Validate)

	// Form 16/16A certificates
	certs := protected.Group("/certificates")
	certs.POST("", certH.Upload)
	certs.GET("", certH.List)
	certs.GET("/:id/download", certH.Download)
	certs.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), certH.Delete)

	return r
}
