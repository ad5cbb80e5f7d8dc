package handlers

import (
	"github.com/SscSPs/money_tracker_app/cmd/docs"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/SscSPs/money_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerRootRoutes(r)

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", identityMiddleware(cfg))

	RegisterTransactionRoutes(v1, service.Transaction)
	RegisterCategoryRoutes(v1, service.Category)
	RegisterFilterRoutes(v1, service.Reporting)
	RegisterSummaryRoutes(v1, service.Reporting)
}

// identityMiddleware resolves the acting user for every /api/v1 request.
func identityMiddleware(cfg *config.Config) gin.HandlerFunc {
	if cfg.AuthEnabled {
		return middleware.AuthMiddleware(cfg.JWTSecret)
	}
	return middleware.DefaultUserMiddleware(cfg.DefaultUserID)
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
