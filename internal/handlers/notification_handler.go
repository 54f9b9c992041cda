package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/httpresp"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

type NotificationHandler struct {
	store store.Store
}

func NewNotificationHandler(st store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

// ListByUser returns a user's notification feed, newest first. The path
// id is the recipient's user id.
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread_only", "false"))

	notifications, err := h.store.NotificationsByUser(c.Request.Context(), userID, unreadOnly)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	n, err := h.store.MarkNotificationRead(c.Request.Context(), id)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, n)
}
