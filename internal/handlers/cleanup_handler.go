package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-cleanup/internal/dedup"
)

// CleanupRunner executes the cascading cleanup for one deleted uid.
type CleanupRunner interface {
	Run(ctx context.Context, uid string)
}

type CleanupHandler struct {
	runner CleanupRunner
	guard  *dedup.Guard
	log    *slog.Logger
}

func NewCleanupHandler(runner CleanupRunner, guard *dedup.Guard, log *slog.Logger) *CleanupHandler {
	return &CleanupHandler{
		runner: runner,
		guard:  guard,
		log:    log,
	}
}

// userDeletedEvent accepts either a direct payload ({"uid": "..."}) or a
// Pub/Sub push envelope whose message data is base64 JSON with the same
// shape.
type userDeletedEvent struct {
	UID     string       `json:"uid"`
	Message *pushMessage `json:"message"`
}

type pushMessage struct {
	MessageID string `json:"messageId"`
	Data      string `json:"data"`
}

// HandleUserDeleted runs the cleanup synchronously and acks afterwards,
// so an at-least-once push subscription redelivers on crash. The
// cleanup's own outcome never fails the request.
func (h *CleanupHandler) HandleUserDeleted(c *gin.Context) {
	var event userDeletedEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	uid := event.UID
	messageID := ""
	if uid == "" && event.Message != nil {
		messageID = event.Message.MessageID

		decoded, err := base64.StdEncoding.DecodeString(event.Message.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_message_data"})
			return
		}
		var inner struct {
			UID string `json:"uid"`
		}
		if err := json.Unmarshal(decoded, &inner); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_message_data"})
			return
		}
		uid = inner.UID
	}
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_uid"})
		return
	}

	if h.guard.Seen(c.Request.Context(), messageID) {
		h.log.Info("skipping redelivered event", "message_id", messageID, "uid", uid)
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}

	h.runner.Run(c.Request.Context(), uid)
	h.guard.Mark(c.Request.Context(), messageID)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
