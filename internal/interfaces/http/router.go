package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"claimdesk/internal/infrastructure/auth"
	"claimdesk/internal/infrastructure/config"
	"claimdesk/internal/interfaces/http/handlers"
	claimhandlers "claimdesk/internal/interfaces/http/handlers/claim"
	statushandlers "claimdesk/internal/interfaces/http/handlers/status"
	"claimdesk/internal/interfaces/http/middleware"
	"claimdesk/internal/interfaces/http/routes"
	"claimdesk/internal/shared/authorization"
	"claimdesk/internal/shared/logger"
)

// Router wires the full HTTP surface: repositories, services, use cases and
// handlers, plus the middleware chain.
type Router struct {
	engine         *gin.Engine
	claimHandler   *claimhandlers.ClaimHandler
	statusHandler  *statushandlers.StatusHandler
	authHandler    *handlers.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Interface
}

// tokenIssuerAdapter bridges the JWT service to the login use case's
// TokenIssuer interface.
type tokenIssuerAdapter struct {
	jwt *auth.JWTService
}

func (a *tokenIssuerAdapter) Issue(userID uint, name, area, role string) (string, string, int64, error) {
	pair, err := a.jwt.Generate(userID, name, area, authorization.ParseUserRole(role))
	if err != nil {
		return "", "", 0, err
	}
	return pair.AccessToken, pair.RefreshToken, pair.ExpiresIn, nil
}

// NewRouter creates a new HTTP router with all dependencies. redisClient may
// be nil when redis is disabled; the catalog cache degrades to a no-op.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	registerValidations()

	deps := buildDependencies(database, redisClient, cfg, log)

	jwtSvc := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	authHandler := buildAuthHandler(deps, jwtSvc, cfg, log)
	claimHandler := buildClaimHandler(deps, cfg, log)
	statusHandler := buildStatusHandler(deps, log)

	return &Router{
		engine:         engine,
		claimHandler:   claimHandler,
		statusHandler:  statusHandler,
		authHandler:    authHandler,
		authMiddleware: authMiddleware,
		logger:         log,
	}
}

// SetupRoutes configures the middleware chain and all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})

	routes.SetupClaimRoutes(r.engine, &routes.ClaimRouteConfig{
		ClaimHandler:   r.claimHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupStatusRoutes(r.engine, &routes.StatusRouteConfig{
		StatusHandler:  r.statusHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
