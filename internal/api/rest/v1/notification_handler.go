package v1

import (
	"net/http"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/recovery"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes failures that recovery gave up on
type NotificationHandler interface {
	Recent(ctx *gin.Context)
}

type notificationHandler struct {
	broadcaster *recovery.Broadcaster
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(broadcaster *recovery.Broadcaster) NotificationHandler {
	return &notificationHandler{broadcaster: broadcaster}
}

// Recent lists the most recent notifications, newest first
func (handler *notificationHandler) Recent(ctx *gin.Context) {
	notifications := handler.broadcaster.Recent()
	ctx.JSON(http.StatusOK, notifications)
}
