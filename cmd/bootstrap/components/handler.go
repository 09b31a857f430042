package components

import (
	"studio-booking/internal/handler"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/handler/validation"
	"studio-booking/internal/infra/ratelimit"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/cookie"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieWriter,
		NewAuthHandler,
		NewBookingHandler,
		api.NewCatalogHandler,
		api.NewClientHandler,
		api.NewLedgerHandler,
		api.NewSettingsHandler,
		NewPushHandler,
		api.NewFileHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		validation.Register,
		NewRouter,
	),
)

type routerParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	AuthMiddleware *middleware.AuthMiddleware
	Limiter        ratelimit.Limiter

	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Catalog  *api.CatalogHandler
	Client   *api.ClientHandler
	Ledger   *api.LedgerHandler
	Settings *api.SettingsHandler
	Push     *api.PushHandler
	File     *api.FileHandler
}

func NewRouter(p routerParams) {
	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Auth:     p.Auth,
		Booking:  p.Booking,
		Catalog:  p.Catalog,
		Client:   p.Client,
		Ledger:   p.Ledger,
		Settings: p.Settings,
		Push:     p.Push,
		File:     p.File,
	}, p.AuthMiddleware, p.Limiter)
}

func NewCookieWriter(cfg config.Config, jwtService jwt.Service) *cookie.Writer {
	return cookie.NewWriter(cfg.Cookie, jwtService)
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cookies *cookie.Writer, jwtService jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(cmds, q, cookies, jwtService)
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, ledger queries.LedgerQueries, cfg config.Config) *api.BookingHandler {
	return api.NewBookingHandler(cmds, q, ledger, cfg.Storage.MaxProofBytes)
}

func NewPushHandler(cmds commands.PushCommands, cfg config.Config) *api.PushHandler {
	return api.NewPushHandler(cmds, cfg.Push.VAPIDPublicKey)
}
