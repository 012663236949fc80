package notification

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helpdesk/internal/application/notification/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/registry"
	"helpdesk/internal/shared/utils"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query usecases.ListNotificationsQuery) (*usecases.ListNotificationsResult, error)
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, query usecases.UnreadCountQuery) (*usecases.UnreadCountResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd usecases.MarkNotificationReadCommand) error
}

type MarkAllReadExecutor interface {
	Execute(ctx context.Context, cmd usecases.MarkAllNotificationsReadCommand) error
}

type NotificationHandler struct {
	listUC      ListNotificationsExecutor
	unreadUC    UnreadCountExecutor
	markReadUC  MarkReadExecutor
	markAllUC   MarkAllReadExecutor
	connections registry.ConnectionRegistry
	logger      logger.Interface
}

func NewNotificationHandler(
	listUC ListNotificationsExecutor,
	unreadUC UnreadCountExecutor,
	markReadUC MarkReadExecutor,
	markAllUC MarkAllReadExecutor,
	connections registry.ConnectionRegistry,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:      listUC,
		unreadUC:    unreadUC,
		markReadUC:  markReadUC,
		markAllUC:   markAllUC,
		connections: connections,
		logger:      logger.NewLogger(),
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		ReceiverID: userID.(uint),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	result, err := h.unreadUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{
		ReceiverID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	raw := c.Param("id")
	notificationID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || notificationID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification ID")
		return
	}

	err = h.markReadUC.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: uint(notificationID),
		ReceiverID:     userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	err := h.markAllUC.Execute(c.Request.Context(), usecases.MarkAllNotificationsReadCommand{
		ReceiverID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

// Subscribe handles POST /notifications/subscribe. It registers a client
// connection so push dispatchers can find it; the client keeps it alive via
// Heartbeat and drops it via Unsubscribe.
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	connID := uuid.NewString()
	h.connections.Register(userID.(uint), connID)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"connection_id": connID})
}

// Heartbeat handles PUT /notifications/subscribe/:conn_id
func (h *NotificationHandler) Heartbeat(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	h.connections.Touch(userID.(uint), c.Param("conn_id"))
	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// Unsubscribe handles DELETE /notifications/subscribe/:conn_id
func (h *NotificationHandler) Unsubscribe(c *gin.Context) {
	userID, _ := c.Get(constants.ContextKeyUserID)

	h.connections.Unregister(userID.(uint), c.Param("conn_id"))
	utils.NoContentResponse(c)
}
