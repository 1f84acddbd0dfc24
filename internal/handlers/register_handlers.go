package handlers

import (
	"github.com/SscSPs/accounting_mappings/cmd/docs"
	portssvc "github.com/SscSPs/accounting_mappings/internal/core/ports/services"
	"github.com/SscSPs/accounting_mappings/internal/middleware"
	"github.com/SscSPs/accounting_mappings/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and the workspace scoped routes under it
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1",
		middleware.RateLimit(rateLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)
	workspace := v1.Group("/workspaces/:"+middleware.WorkspaceParam, middleware.WorkspaceMiddleware())
	RegisterWorkspaceRoutes(workspace, services)
}

// RegisterWorkspaceRoutes registers every route that acts on a single workspace.
// rg must carry the workspace_id path parameter and WorkspaceMiddleware.
func RegisterWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerMappingSettingRoutes(rg, services.MappingSetting, services.ExpenseField)
	registerMappingRoutes(rg, services.Mapping, services.EmployeeMapping, services.CategoryMapping, services.Stats)
	registerAttributeRoutes(rg, services.Attribute)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
