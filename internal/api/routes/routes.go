package routes

import (
	"fmt"
	"time"

	"crm-builder-backend/internal/api/handlers"
	"crm-builder-backend/internal/api/middleware"
	"crm-builder-backend/internal/auth"
	"crm-builder-backend/internal/catalog"
	"crm-builder-backend/internal/config"
	"crm-builder-backend/internal/repository"
	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const tokenTTL = 12 * time.Hour

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	validator := validator.New()
	registry := catalog.Default()

	// Initialize repositories
	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	pagination := service.Pagination{DefaultLimit: cfg.RecordPageSize, MaxLimit: cfg.RecordMaxPageSize}
	catalogService := service.NewCatalogService(registry)
	provisioningService := service.NewProvisioningService(registry, transactor, validator)
	tenantService := service.NewTenantService(repos.Tenants, transactor, validator)
	appService := service.NewCrmAppService(repos, transactor, validator)
	moduleService := service.NewModuleService(repos, transactor, validator)
	fieldService := service.NewFieldService(repos.Fields, repos.Modules, validator)
	viewService := service.NewViewService(repos, transactor, validator, pagination)
	recordService := service.NewRecordService(repos, transactor, validator, service.RecordOptions{
		Pagination:        pagination,
		SearchLimit:       cfg.SearchLimit,
		EnforceValidation: cfg.EnforceRecordValidation(),
	})

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version, registry.Version())
	catalogHandler := handlers.NewCatalogHandler(catalogService, provisioningService)
	tenantHandler := handlers.NewTenantHandler(tenantService, appService, provisioningService)
	appHandler := handlers.NewAppHandler(appService, moduleService, recordService)
	moduleHandler := handlers.NewModuleHandler(moduleService, fieldService, viewService, recordService)
	fieldHandler := handlers.NewFieldHandler(fieldService)
	viewHandler := handlers.NewViewHandler(viewService)
	recordHandler := handlers.NewRecordHandler(recordService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	mw, err := authMiddleware(cfg)
	if err != nil {
		return nil, err
	}
	if mw != nil {
		if cfg.AuthEnabled {
			v1.Use(mw.RequireAuth())
		} else {
			v1.Use(mw.OptionalAuth())
		}
	}

	{
		catalogRoutes := v1.Group("/catalog")
		{
			catalogRoutes.GET("/pillars", catalogHandler.ListPillars)
			catalogRoutes.GET("/pillars/:id", catalogHandler.GetPillar)
			catalogRoutes.GET("/presets", catalogHandler.ListPresets)
			catalogRoutes.GET("/presets/:id", catalogHandler.GetPreset)
			catalogRoutes.GET("/preview", catalogHandler.Preview)
		}

		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.GET("/by-slug/:slug", tenantHandler.GetTenantBySlug)
			tenants.GET("/by-owner/:ownerId", tenantHandler.GetTenantByOwner)
			tenants.PATCH("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
			tenants.GET("/:id/apps", tenantHandler.ListApps)
			tenants.POST("/:id/apps", tenantHandler.CreateApp)
		}

		apps := v1.Group("/apps")
		{
			apps.GET("/:id", appHandler.GetApp)
			apps.PATCH("/:id", appHandler.UpdateApp)
			apps.DELETE("/:id", appHandler.DeleteApp)
			apps.GET("/:id/modules", appHandler.ListModules)
			apps.POST("/:id/modules", appHandler.CreateModule)
			apps.GET("/:id/records", appHandler.ListRecentRecords)
			apps.GET("/:id/stats", appHandler.GetStats)
		}

		modules := v1.Group("/modules")
		{
			modules.GET("/:id", moduleHandler.GetModule)
			modules.PATCH("/:id", moduleHandler.UpdateModule)
			modules.DELETE("/:id", moduleHandler.DeleteModule)
			modules.GET("/:id/schema", moduleHandler.GetSchema)
			modules.GET("/:id/fields", moduleHandler.ListFields)
			modules.POST("/:id/fields", moduleHandler.CreateField)
			modules.GET("/:id/views", moduleHandler.ListViews)
			modules.POST("/:id/views", moduleHandler.CreateView)
			modules.GET("/:id/records", moduleHandler.ListRecords)
			modules.POST("/:id/records", moduleHandler.CreateRecord)
			modules.GET("/:id/records/search", moduleHandler.SearchRecords)
			modules.POST("/:id/records/validate", moduleHandler.ValidateRecord)
		}

		fields := v1.Group("/fields")
		{
			fields.PATCH("/:id", fieldHandler.UpdateField)
			fields.DELETE("/:id", fieldHandler.DeleteField)
		}

		views := v1.Group("/views")
		{
			views.GET("/:id", viewHandler.GetView)
			views.PATCH("/:id", viewHandler.UpdateView)
			views.DELETE("/:id", viewHandler.DeleteView)
			views.GET("/:id/data", viewHandler.GetViewData)
		}

		records := v1.Group("/records")
		{
			records.GET("/:id", recordHandler.GetRecord)
			records.PATCH("/:id", recordHandler.UpdateRecord)
			records.DELETE("/:id", recordHandler.DeleteRecord)
			records.GET("/:id/activities", recordHandler.ListActivities)
			records.POST("/:id/activities", recordHandler.AddActivity)
		}

		v1.DELETE("/activities/:id", recordHandler.DeleteActivity)
	}

	router.NoRoute(handlers.NoRoute)

	return router, nil
}

// authMiddleware builds the bearer middleware. Without a usable secret it
// fails when auth is required and is skipped otherwise.
func authMiddleware(cfg *config.Config) (*auth.AuthMiddleware, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, tokenTTL)
	if err != nil {
		if cfg.AuthEnabled {
			return nil, fmt.Errorf("bearer authentication: %w", err)
		}
		logrus.WithError(err).Warn("Optional bearer authentication disabled")
		return nil, nil
	}
	return auth.NewAuthMiddleware(tokens), nil
}
