package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/infra/ratelimit"
	"studio-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Catalog  *api.CatalogHandler
	Client   *api.ClientHandler
	Ledger   *api.LedgerHandler
	Settings *api.SettingsHandler
	Push     *api.PushHandler
	File     *api.FileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/files/:id", h.File.Get)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{middleware.RateLimit(limiter)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog.Get},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: limited},
				{Method: http.MethodGet, Path: "/code/:code", Handler: h.Booking.GetByCode, Mw: limited},
				{Method: http.MethodPost, Path: "/code/:code/reschedule", Handler: h.Booking.RequestReschedule, Mw: limited},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			reads := admin.Group("")
			reads.Use(authMiddleware.RequireRoleAtLeast(user.RoleIntern))
			addRoutes(reads, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodGet, Path: "/clients/:email", Handler: h.Client.GetByEmail},
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Ledger.List},
				{Method: http.MethodGet, Path: "/settings/loyalty", Handler: h.Settings.GetLoyalty},
			})

			staff := admin.Group("")
			staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleStaff))
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.Confirm},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/bookings/:id/reschedule", Handler: h.Booking.ResolveReschedule},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Booking.Complete},
				{Method: http.MethodGet, Path: "/push-subscriptions/key", Handler: h.Push.PublicKey},
				{Method: http.MethodPost, Path: "/push-subscriptions", Handler: h.Push.Subscribe},
				{Method: http.MethodDelete, Path: "/push-subscriptions", Handler: h.Push.Unsubscribe},
			})

			addRoutes(admin, []route{
				{
					Method:  http.MethodPut,
					Path:    "/settings/loyalty",
					Handler: h.Settings.UpdateLoyalty,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
