// Package httpapi serves calendar views and interactions as JSON.
//
// The API is stateless: every request carries the displayed month and the
// current selection, and the handler rebuilds a Picker for it.
package httpapi

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/ngrash/go-cal/config"
	"github.com/ngrash/go-cal/picker"
)

// Handler serves the calendar routes.
type Handler struct {
	mu     sync.RWMutex
	config *config.Config

	clock  picker.Clock
	logger *slog.Logger
}

// NewHandler returns a handler for c. A nil clock means picker.SystemClock.
func NewHandler(c *config.Config, clock picker.Clock, logger *slog.Logger) *Handler {
	if c == nil {
		c = config.Default()
	}
	if clock == nil {
		clock = picker.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{config: c, clock: clock, logger: logger}
}

// SetConfig replaces the configuration used by subsequent requests.
func (h *Handler) SetConfig(c *config.Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.config = c
}

func (h *Handler) currentConfig() *config.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.config
}

// NewApp returns a fiber app with the calendar routes registered behind
// the given middleware.
func NewApp(h *Handler, middleware ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "go-cal",
		DisableStartupMessage: true,
		ErrorHandler:          h.handleError,
	})
	for _, m := range middleware {
		app.Use(m)
	}
	RegisterRoutes(app, h)
	return app
}

// RegisterRoutes registers the calendar routes on app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/healthz", sendNoContent)

	api := app.Group("/api")
	api.Get("/month", h.GetMonth)
	api.Post("/select", h.PostSelect)
	api.Post("/key", h.PostKey)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		h.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(errorResponse{Error: err.Error()})
}
