package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/GafnerMendes/contracts-api/internal/api/handler"
	"github.com/GafnerMendes/contracts-api/internal/api/middleware"
	"github.com/GafnerMendes/contracts-api/internal/core/domain"
	"github.com/GafnerMendes/contracts-api/internal/core/ports"
	"github.com/GafnerMendes/contracts-api/internal/core/service"
	"github.com/GafnerMendes/contracts-api/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, users ports.UserStore, contracts ports.ContractStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("contracts_api"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(users, tokenService, log)
	userService := service.NewUserService(users)
	contractService := service.NewContractService(contracts, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	contractHandler := handler.NewContractHandler(contractService)

	requireAuth := middleware.Auth(tokenService)

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me, requireAuth)
	apiGroup.GET("/users", userHandler.List, requireAuth, middleware.RequireRoles(domain.RoleAdmin))
	apiGroup.GET("/contracts", contractHandler.List, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(users, contracts)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are the stores loaded?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
