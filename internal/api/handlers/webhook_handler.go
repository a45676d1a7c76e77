package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roksva123/go-productivity-backend/internal/model"
	"github.com/roksva123/go-productivity-backend/internal/service"
)

const (
	maxWebhookBody  = 1 << 20
	webhookDeadline = 2 * time.Minute

	// Wrike hook-secret handshake and per-delivery signature headers.
	headerHookSecret    = "X-Hook-Secret"
	headerHookSignature = "X-Hook-Signature"
)

type EventRouter interface {
	HandleEvents(ctx context.Context, events []model.WebhookEvent) model.WebhookReport
}

// WebhookHandler receives Wrike deliveries. With a Secret set, deliveries
// must carry a valid X-Hook-Signature; without one any caller is accepted.
type WebhookHandler struct {
	Router EventRouter
	Secret string
	log    *slog.Logger
}

func NewWebhookHandler(router EventRouter, secret string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{Router: router, Secret: secret, log: logger}
}

// Receive answers 200 for every well-formed delivery, even when single
// events fail downstream, so Wrike keeps the hook active.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
		return
	}

	if h.Secret != "" {
		// Registration handshake: Wrike expects the challenge signed back.
		if challenge := c.GetHeader(headerHookSecret); challenge != "" {
			c.Header(headerHookSecret, h.sign([]byte(challenge)))
			c.Status(http.StatusOK)
			return
		}
		if !hmac.Equal([]byte(c.GetHeader(headerHookSignature)), []byte(h.sign(body))) {
			h.log.Warn("rejected unsigned webhook", slog.String("remote", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	events, err := service.ParseWebhookPayload(body)
	if err != nil {
		h.log.Warn("rejected webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Processing outlives a disconnecting caller.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), webhookDeadline)
	defer cancel()

	report := h.Router.HandleEvents(ctx, events)
	c.JSON(http.StatusOK, model.ResponseApi{ApiMessage: "webhook processed", Data: report})
}

// sign returns the hex HMAC-SHA256 of data under the hook secret.
func (h *WebhookHandler) sign(data []byte) string {
	mac := hmac.New(sha256.New, []byte(h.Secret))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
