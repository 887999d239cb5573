package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pesagem/internal/auth"
	"pesagem/internal/config"
	"pesagem/internal/handler"
)

// Handlers bundles everything Register wires up.
type Handlers struct {
	Auth        *handler.AuthHandler
	Lancamentos *handler.LancamentoHandler
	Users       *handler.UserHandler
	Produtos    *handler.ReferenciaHandler
	Origens     *handler.ReferenciaHandler
	Destinos    *handler.ReferenciaHandler
	Analytics   *handler.AnalyticsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, tokenStore auth.TokenStoreInterface, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Attachments are public by name only; generated names carry a millisecond
	// timestamp, so they are not enumerable.
	e.Static("/uploads", cfg.UploadDir)

	// Public routes
	e.POST("/login", h.Auth.Login)
	e.POST("/register", h.Auth.Register)

	// Everything else requires a bearer token. A missing token is 401,
	// an invalid or expired one is 403.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: jwtErrorHandler,
	}), identityMiddleware(tokenStore))

	secured.POST("/logout", h.Auth.Logout)

	secured.GET("/lancamentos", h.Lancamentos.List)
	secured.GET("/lancamentos/:id", h.Lancamentos.Get)
	secured.POST("/lancamentos", h.Lancamentos.Create)
	secured.PUT("/lancamentos/:id", h.Lancamentos.Update)
	secured.DELETE("/lancamentos/:id", h.Lancamentos.Delete)

	api := secured.Group("/api")

	registerReferencia(api, "/produtos", h.Produtos)
	registerReferencia(api, "/origens", h.Origens)
	registerReferencia(api, "/destinos", h.Destinos)

	registerUsers(api, "/utilizadores", h.Users)
	// Legacy alias kept for older dashboard builds.
	registerUsers(api, "/motoristas", h.Users)

	api.GET("/analytics/peso-por-motorista", h.Analytics.PesoPorMotorista)
	api.GET("/analytics/valor-por-produto", h.Analytics.ValorPorProduto)
}

func registerReferencia(g *echo.Group, prefix string, h *handler.ReferenciaHandler) {
	g.GET(prefix, h.List)
	g.POST(prefix, h.Create)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}

func registerUsers(g *echo.Group, prefix string, h *handler.UserHandler) {
	g.GET(prefix, h.List)
	g.POST(prefix, h.Create)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}

// jwtErrorHandler maps auth failures onto the wire contract: absence of a
// token is 401, anything wrong with a presented token is 403.
func jwtErrorHandler(c echo.Context, err error) error {
	if errors.Is(err, echojwt.ErrJWTMissing) {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
	}
	return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
}

// identityMiddleware turns validated claims into the request identity and
// rejects tokens that were blacklisted by a logout.
func identityMiddleware(store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}
			if claims.ID != "" {
				if revoked, _ := store.IsBlacklisted(c.Request().Context(), claims.ID); revoked {
					return echo.NewHTTPError(http.StatusForbidden, "token revoked")
				}
			}
			c.Set(handler.ClaimsKey, claims)
			c.Set(handler.IdentityKey, claims.Identity())
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
