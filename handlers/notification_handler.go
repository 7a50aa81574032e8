package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/notifications"
)

// NotificationHandler reads the repository directly, scoped to the JWT
// caller on every request. No per-user state is staged between requests.
type NotificationHandler struct {
	repo notifications.Repository
}

func NewNotificationHandler(repo notifications.Repository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func unreadCount(items []models.Notification) int {
	count := 0
	for _, n := range items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	items := h.repo.ForUser(currentUserID(c))
	return c.JSON(fiber.Map{
		"notifications": items,
		"unread_count":  unreadCount(items),
	})
}

// MarkAsRead flips one of the caller's own notifications; ids belonging to
// other users report not found.
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id := c.Params("notificationId")

	owned := false
	for _, n := range h.repo.ForUser(userID) {
		if n.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	h.repo.MarkRead(id)
	return c.JSON(fiber.Map{"unread_count": unreadCount(h.repo.ForUser(userID))})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := currentUserID(c)
	h.repo.MarkAllRead(userID)
	return c.JSON(fiber.Map{"unread_count": unreadCount(h.repo.ForUser(userID))})
}
