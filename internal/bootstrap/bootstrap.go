// Package bootstrap assembles the application dependency graph.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/registra/internal/app/controllers"
	"github.com/campushub/registra/internal/app/migrations"
	"github.com/campushub/registra/internal/app/repositories"
	"github.com/campushub/registra/internal/app/repositories/memory"
	"github.com/campushub/registra/internal/app/repositories/postgres"
	"github.com/campushub/registra/internal/app/routes"
	"github.com/campushub/registra/internal/app/services"
	"github.com/campushub/registra/internal/config"
	"github.com/campushub/registra/internal/db"
	"github.com/campushub/registra/internal/middleware"
	"github.com/campushub/registra/internal/pkg/auth"
	"github.com/campushub/registra/internal/pkg/logger"
	"github.com/campushub/registra/internal/seed"
)

// migrationsPath is where the SQL migration files live relative to the
// working directory.
const migrationsPath = "migrations"

// Dependencies holds everything main needs to run the application.
type Dependencies struct {
	Config *config.Config
	Store  repositories.Store
	Router *gin.Engine
}

// BuildDependencies opens the configured store, runs migrations and seeds
// when applicable, and wires services, controllers and routes.
func BuildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := seed.Run(ctx, store); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  config.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: config.ParseDuration(cfg.JWT.RefreshTokenExpiration, 30*24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	classificationService := services.NewClassificationService()
	authService := services.NewAuthService(store, jwtService)
	studentService := services.NewStudentService(store)
	courseService := services.NewCourseService(store)
	enrollmentService := services.NewEnrollmentService(store, authService)
	departmentService := services.NewDepartmentService(store)
	instructorService := services.NewInstructorService(store)
	dashboardService := services.NewDashboardService(store, classificationService)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	routes.RegisterRoutes(router, routes.Controllers{
		Auth:       controllers.NewAuthController(authService),
		Student:    controllers.NewStudentController(studentService, classificationService),
		Course:     controllers.NewCourseController(courseService, enrollmentService, classificationService),
		Department: controllers.NewDepartmentController(departmentService),
		Instructor: controllers.NewInstructorController(instructorService),
		Dashboard:  controllers.NewDashboardController(dashboardService),
	}, jwtService)

	return &Dependencies{
		Config: cfg,
		Store:  store,
		Router: router,
	}, nil
}

func buildStore(ctx context.Context, cfg *config.Config) (repositories.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := db.NewPostgresPool(cfg)
		if err != nil {
			return nil, err
		}
		if err := migrations.MigrateDatabase(ctx, pool, migrationsPath); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return postgres.NewStore(pool), nil

	case config.BackendMemory:
		logger.Info().Msg("Using in-memory store")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
