package api

import (
	"io"
	"log/slog"
	"net/http"

	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/pkg/metrics"
	"smakownia-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20 // 1MB

type WebhookHandler struct {
	fulfillment commands.FulfillmentCommands
}

func NewWebhookHandler(fulfillment commands.FulfillmentCommands) *WebhookHandler {
	return &WebhookHandler{
		fulfillment: fulfillment,
	}
}

// @Summary Payment gateway webhook
// @Description Receive a transaction notification from Przelewy24
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /payment-webhook-email [post]
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	// The gateway retries any non-200 response. A rejected or malformed
	// notification is our problem to log and investigate, not theirs to
	// redeliver forever, so every path below acknowledges with 200.
	defer c.JSON(http.StatusOK, gin.H{"status": "ok"})

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		slog.Error("webhook body read failed", "error", err.Error())
		metrics.WebhooksReceived.WithLabelValues("malformed").Inc()
		return
	}

	notification, err := przelewy24.ParseNotification(c.ContentType(), body)
	if err != nil {
		slog.Error("webhook parse failed", "error", err.Error(), "content_type", c.ContentType())
		metrics.WebhooksReceived.WithLabelValues("malformed").Inc()
		return
	}

	outcome := h.fulfillment.HandleWebhook(c.Request.Context(), notification)
	slog.Info("webhook processed",
		"session_id", notification.SessionID,
		"order_id", notification.OrderID,
		"outcome", string(outcome))
}
