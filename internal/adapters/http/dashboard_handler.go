package http

import (
	"bufio"
	"context"
	"time"

	"github.com/dumu-tech/pixel-bazaar/internal/events"
	"github.com/dumu-tech/pixel-bazaar/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DashboardHandler handles the sales dashboard HTTP requests
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetSalesDashboardData returns the derived sales view
// GET /api/dashboard
func (h *DashboardHandler) GetSalesDashboardData(c *fiber.Ctx) error {
	data, err := h.dashboard.GetSalesDashboardData(c.Context())
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(data)
}

// DownloadSalesReport streams the sales report as a PDF attachment
// GET /api/dashboard/report
func (h *DashboardHandler) DownloadSalesReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.dashboard.GenerateSalesReportPDF(c.Context())
	if err != nil {
		return failure(c, err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	return c.Send(pdfBytes)
}

// SSEEvents streams storefront events for live dashboard updates
// GET /api/dashboard/events
func (h *DashboardHandler) SSEEvents(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	ctx, cancel := context.WithCancel(c.Context())
	defer cancel()

	subscriberID := uuid.New().String()
	eventChan := h.dashboard.GetEventBus().Subscribe(ctx, subscriberID)

	c.Write([]byte("event: connected\ndata: {\"message\":\"connected\"}\n\n"))

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case event, ok := <-eventChan:
				if !ok {
					return
				}

				sseData, err := events.FormatSSE(event)
				if err != nil {
					logrus.WithError(err).Warn("failed to format SSE event")
					continue
				}

				if _, err := w.Write([]byte(sseData)); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}

			case <-ticker.C:
				if _, err := w.Write([]byte(": heartbeat\n\n")); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}

			case <-ctx.Done():
				return
			}
		}
	})

	return nil
}
