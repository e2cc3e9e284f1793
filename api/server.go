package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"commandapi/db"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// Root is the path under which the commands resource is served.
	Root = "/api/commands"

	// RouteGetCommand names the route of a single command, for echo.Reverse.
	RouteGetCommand = "get-command"

	paramID = "id"
)

// NewServer returns an echo instance serving store over HTTP:
//
//	GET    /api/commands
//	POST   /api/commands
//	GET    /api/commands/:id
//	PUT    /api/commands/:id
//	DELETE /api/commands/:id
//	GET    /healthz
func NewServer(store db.Store, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he := new(echo.HTTPError); errors.As(err, &he) {
			code = he.Code
		}
		if code >= 500 {
			log.ErrorContext(
				c.Request().Context(), "request failed",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(LogHandlerFunc(log))
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET(Root, ListCommandsHandler(store))
	e.POST(Root, CreateCommandHandler(store, RouteGetCommand))
	e.GET(Root+"/:"+paramID, GetCommandHandler(store, paramID)).Name = RouteGetCommand
	e.PUT(Root+"/:"+paramID, UpdateCommandHandler(store, paramID))
	e.DELETE(Root+"/:"+paramID, DeleteCommandHandler(store, paramID))

	return e
}

// LogHandlerFunc logs each request and the response it got.
func LogHandlerFunc(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			begin := time.Now()

			err := next(c)
			if err != nil {
				// commit the response now, so the status below is the real one
				c.Error(err)
			}

			res := c.Response()
			level := slog.LevelInfo
			if res.Status >= 500 {
				level = slog.LevelWarn
			}
			log.Log(
				req.Context(), level, "request",
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"bytes", res.Size,
				"elapsed", time.Since(begin),
			)
			return nil
		}
	}
}
