package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"coride/internal/auth"
	"coride/internal/config"
	"coride/internal/errors"
	"coride/internal/handler"
	"coride/internal/service"
	"coride/internal/validation"
)

// Handlers groups the HTTP handlers mounted by Register. Seed is optional
// and only mounted for SQL data sources.
type Handlers struct {
	Auth          *handler.AuthHandler
	Rides         *handler.RideHandler
	Messages      *handler.MessageHandler
	Notifications *handler.NotificationHandler
	Admin         *handler.AdminHandler
	Chatbot       *handler.ChatbotHandler
	Seed          *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authService service.AuthService,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Secured routes (require a live session)
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return jwtService.ValidateToken(token)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHORIZED",
				})
			},
		}),
		handler.SessionMiddleware(authService),
	)

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/me", h.Auth.Me)
	secured.GET("/dashboard", h.Rides.Dashboard)

	// Ride routes
	secured.GET("/rides", h.Rides.ListRides)
	secured.GET("/rides/search", h.Rides.SearchRides)
	secured.GET("/rides/:id", h.Rides.GetRide)
	secured.POST("/rides", h.Rides.OfferRide)
	secured.POST("/rides/:id/requests", h.Rides.RequestSeat)

	// Message routes
	secured.GET("/messages", h.Messages.Inbox)
	secured.GET("/messages/with/:userId", h.Messages.Conversation)
	secured.POST("/messages", h.Messages.Send)
	secured.POST("/messages/:id/read", h.Messages.MarkRead)

	// Notification routes
	secured.GET("/notifications", h.Notifications.List)
	secured.POST("/notifications", h.Notifications.Add)
	secured.POST("/notifications/read-all", h.Notifications.MarkAllAsRead)
	secured.POST("/notifications/:id/read", h.Notifications.MarkAsRead)

	secured.GET("/chatbot", h.Chatbot.Chatbot)

	// Admin routes
	admin := secured.Group("/admin", handler.RequireAdmin)
	admin.GET("/stats", h.Admin.Stats)
	admin.GET("/report.xlsx", h.Admin.Report)
	if h.Seed != nil {
		admin.POST("/seed", h.Seed.Seed)
	}
}

// CustomValidator wraps validator for Echo and reports field-level errors.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the validator used for request bodies.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validation.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Translate(cv.validator.Struct(i))
}
