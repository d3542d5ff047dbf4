package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"staybook/internal/auth"
	"staybook/internal/config"
	"staybook/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	placeHandler *handler.PlaceHandler,
	bookingHandler *handler.BookingHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		// The SPA runs on another origin and sends the session cookie.
		AllowOriginFunc:  func(origin string) (bool, error) { return true, nil },
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.Static("/uploads", cfg.UploadsDir)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/profile", authHandler.Profile)
	api.POST("/uploadByLink", uploadHandler.UploadByLink)
	api.POST("/devupload", uploadHandler.DevUpload)
	api.GET("/dev", uploadHandler.Dev)
	api.GET("/places", placeHandler.ListAll)
	api.GET("/places/:id", placeHandler.Get)

	// Place creation rejects anonymous callers outright.
	strict := api.Group("", sessionJWT(cfg.JWTSecret, func(c echo.Context, err error) error {
		return c.JSON(http.StatusNotImplemented, "Error")
	}))
	strict.POST("/places", placeHandler.Create)

	// The remaining protected routes answer the literal "null" when the token
	// is missing or invalid, matching the client's expectations.
	lenient := api.Group("", sessionJWT(cfg.JWTSecret, func(c echo.Context, err error) error {
		return c.JSON(http.StatusOK, "null")
	}))
	lenient.GET("/userplaces", placeHandler.ListMine)
	lenient.PUT("/places", placeHandler.Update)
	lenient.POST("/bookings", bookingHandler.Create)
	lenient.GET("/bookings", bookingHandler.List)
}

// sessionJWT builds the cookie-based JWT middleware with a per-group failure
// response.
func sessionJWT(secret string, onError func(c echo.Context, err error) error) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:token",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: onError,
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
