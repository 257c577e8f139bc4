package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/clock"
	"github.com/idealiza/admin-service/internal/service"
)

// DashboardHandler serves the dashboard widgets and the server clock.
type DashboardHandler struct {
	service *service.DashboardService
	logger  *zap.Logger
	// streams bounds every clock stream; cancelling it closes them all.
	streams context.Context
}

// NewDashboardHandler constructs handler. Clock streams end when streams is cancelled.
func NewDashboardHandler(streams context.Context, dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: dashboardService, logger: logger, streams: streams}
}

// Get GET /dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// Clock streams server time as server-sent events on GET /dashboard/clock.
// The stream ends when the client goes away, the configured tick limit is reached,
// or the server shuts down.
func (h *DashboardHandler) Clock(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(h.streams)
		defer cancel()

		err := h.service.StreamClock(ctx, func(tick clock.Tick) error {
			payload, err := json.Marshal(tick)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "id: %d\nevent: tick\ndata: %s\n\n", tick.Seq, payload); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			h.logger.Debug("clock stream closed", zap.Error(err))
		}
	})
	return nil
}
