package handlers

import (
	"fmt"
	"log"
	"time"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/stepsync/dance_marketplace/configs"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/notifications"
	"github.com/stepsync/dance_marketplace/utils"
	"github.com/stepsync/dance_marketplace/websocket"
)

type MessageHandler struct {
	ds       *dataset.Dataset
	hub      *websocket.Hub
	notifier notifications.Repository
}

// hub may be nil when the brand has chat disabled; messages still persist,
// they just aren't pushed live.
func NewMessageHandler(ds *dataset.Dataset, hub *websocket.Hub, notifier notifications.Repository) *MessageHandler {
	return &MessageHandler{ds: ds, hub: hub, notifier: notifier}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
	LessonID   string `json:"lesson_id,omitempty"`
}

func (h *MessageHandler) GetConversations(c *fiber.Ctx) error {
	return c.JSON(h.ds.ConversationsForUser(currentUserID(c)))
}

// GetConversationMessages returns the two-party thread oldest-first and
// marks the other side's messages as read, since opening the thread is what
// reading means here.
func (h *MessageHandler) GetConversationMessages(c *fiber.Ctx) error {
	userID := currentUserID(c)
	otherID := c.Params("userId")
	if h.ds.UserByID(otherID) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	h.ds.MarkMessagesRead(otherID, userID)
	return c.JSON(h.ds.MessagesBetween(userID, otherID))
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	sender := h.ds.UserByID(currentUserID(c))
	if sender == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	if h.ds.UserByID(req.ReceiverID) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Recipient not found"})
	}

	message := h.ds.AddMessage(models.Message{
		ID:         utils.GenerateMessageID(),
		SenderID:   sender.ID,
		ReceiverID: req.ReceiverID,
		LessonID:   req.LessonID,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	})

	if h.hub != nil {
		h.hub.Broadcast(&message)
	}
	if h.notifier != nil {
		h.notifier.Create(models.Notification{
			UserID:    req.ReceiverID,
			Title:     "New message",
			Message:   fmt.Sprintf("%s sent you a message.", sender.Name),
			Type:      models.NotificationNewMessage,
			ActionURL: "/messages/" + sender.ID,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// ServeWs upgrades the connection into the chat hub. The client's first
// frame must be {"type":"auth","token":...}; subsequent frames are chat
// payloads that are persisted and fanned out to the recipient.
func (h *MessageHandler) ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}
	userID, _ := claims["user_id"].(string)
	if h.ds.UserByID(userID) == nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	h.hub.Register(client)
	defer func() {
		h.hub.Unregister(client)
		c.Close()
	}()

	for {
		var payload websocket.MessagePayload
		if err := c.ReadJSON(&payload); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket closed for client %s: %v", userID, err)
			} else {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}
		if h.ds.UserByID(payload.ReceiverID) == nil {
			_ = c.WriteJSON(fiber.Map{"error": "Unknown recipient"})
			continue
		}
		message := h.ds.AddMessage(models.Message{
			ID:         utils.GenerateMessageID(),
			SenderID:   userID,
			ReceiverID: payload.ReceiverID,
			LessonID:   payload.LessonID,
			Message:    payload.Message,
			CreatedAt:  time.Now(),
		})
		h.hub.Broadcast(&message)
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.ConfigOr("JWT_SECRET", "dev-secret")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
