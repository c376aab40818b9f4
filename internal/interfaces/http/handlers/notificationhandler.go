package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUC listNotificationsUseCase
	markReadUC          markNotificationReadUseCase
	markAllReadUC       markAllNotificationsReadUseCase
	countUnreadUC       countUnreadNotificationsUseCase
	deleteUC            deleteNotificationUseCase
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC listNotificationsUseCase,
	markReadUC markNotificationReadUseCase,
	markAllReadUC markAllNotificationsReadUseCase,
	countUnreadUC countUnreadNotificationsUseCase,
	deleteUC deleteNotificationUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		markReadUC:          markReadUC,
		markAllReadUC:       markAllReadUC,
		countUnreadUC:       countUnreadUC,
		deleteUC:            deleteUC,
		logger:              logger.NewLogger(),
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	notifications, total, err := h.listNotificationsUC.Execute(c.Request.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, notifications, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.markAllReadUC.Execute(c.Request.Context()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	result, err := h.countUnreadUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unread count retrieved successfully", result)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
