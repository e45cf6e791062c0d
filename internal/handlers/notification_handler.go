package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accverse/internal/authz"
	"accverse/internal/models"
	"accverse/internal/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// @Summary      List notifications
// @Description  Non-admin callers are pinned to their own notifications
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	currentID, role := currentIdentity(c)

	var userID *int
	if v, err := strconv.Atoi(c.Query("user_id")); err == nil {
		userID = &v
	}
	if role != authz.RoleAdmin {
		userID = &currentID
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	includeArchived := c.DefaultQuery("include_archived", "false") == "true"

	list, err := h.notificationService.List(models.NotificationFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		log.Printf("[notifications][list] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	if list == nil {
		list = []*models.Notification{}
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Mark a notification read
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	n, err := h.notificationService.MarkRead(id)
	if err != nil || n == nil {
		log.Printf("[notifications][read] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read"})
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary      Archive a notification
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Router       /notifications/{id}/archive [post]
func (h *NotificationHandler) Archive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	if err := h.notificationService.Archive(id); err != nil {
		log.Printf("[notifications][archive] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary      Unarchive a notification
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Router       /notifications/{id}/unarchive [post]
func (h *NotificationHandler) Unarchive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	n, err := h.notificationService.Unarchive(id)
	if err != nil || n == nil {
		log.Printf("[notifications][unarchive] failed id=%d: err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unarchive notification"})
		return
	}
	c.JSON(http.StatusOK, n)
}

// @Summary      Mark all notifications read
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Router       /notifications/mark-all-read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	currentID, role := currentIdentity(c)

	var req struct {
		UserID *int `json:"user_id"`
	}
	_ = c.ShouldBindJSON(&req)

	userID := req.UserID
	if role != authz.RoleAdmin {
		userID = &currentID
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		log.Printf("[notifications][mark-all-read] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark all notifications as read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
