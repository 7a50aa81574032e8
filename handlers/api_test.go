package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepsync/dance_marketplace/backend"
	"github.com/stepsync/dance_marketplace/configs"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/handlers"
	"github.com/stepsync/dance_marketplace/notifications"
	"github.com/stepsync/dance_marketplace/routes"
	"github.com/stepsync/dance_marketplace/stores"
)

// newTestApp wires the API exactly like cmd/api does, minus cron and the
// websocket hub, against a fresh copy of the seed dataset.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	brand := configs.BrandConfig{Name: "test", DisplayName: "Test"}
	ds, err := dataset.Load()
	require.NoError(t, err)

	notifRepo := notifications.NewInMemoryRepository(ds)
	authStore := stores.NewAuthStore(ds)
	bookingStore := stores.NewBookingStore(ds, notifRepo)
	lessonStore := stores.NewLessonStore(ds)
	profileStore := stores.NewProfileStore(authStore)

	be, err := backend.New(brand, authStore, ds)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	routes.PublicRoutes(app, brand)
	routes.AuthRoutes(app, handlers.NewAuthHandler(be))
	routes.LessonRoutes(app, handlers.NewLessonHandler(lessonStore, ds))
	routes.BookingRoutes(app, handlers.NewBookingHandler(bookingStore))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(be, bookingStore, ds, notifRepo))
	routes.MessagingRoutes(app, handlers.NewMessageHandler(ds, nil, notifRepo), false)
	routes.NotificationRoutes(app, handlers.NewNotificationHandler(notifRepo))
	routes.ProfileRoutes(app, handlers.NewProfileHandler(authStore, profileStore, be, ds))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    email,
		"password": "anything",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginIssuesTokenForKnownEmail(t *testing.T) {
	app := newTestApp(t)

	token := login(t, app, "maria@example.com")
	assert.NotEmpty(t, token)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "ghost@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLessonFilteringEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lessons?category=Salsa&q=beginner", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var lessons []map[string]any
	require.NoError(t, json.Unmarshal(raw, &lessons))
	require.Len(t, lessons, 1)
	assert.Equal(t, "lesson1", lessons[0]["id"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/lessons?category=Polka", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookingAndPaymentFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria@example.com")

	resp, booking := doJSON(t, app, http.MethodPost, "/api/v1/bookings", token, fiber.Map{
		"lesson_id": "lesson1",
		"date":      "2025-09-10",
		"time":      "18:00",
		"price":     150,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, "pending", booking["paymentStatus"])
	assert.Equal(t, "user2", booking["instructorId"])
	bookingID, _ := booking["id"].(string)
	require.NotEmpty(t, bookingID)

	resp, paid := doJSON(t, app, http.MethodPost, "/api/v1/payments", token, fiber.Map{
		"booking_id":        bookingID,
		"payment_method_id": "pm_card",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := paid["result"].(map[string]any)
	assert.Equal(t, true, result["success"])
	updated := paid["booking"].(map[string]any)
	assert.Equal(t, "confirmed", updated["status"])
	assert.Equal(t, "paid", updated["paymentStatus"])
}

func TestBookingRejectsStaleQuote(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/bookings", token, fiber.Map{
		"lesson_id": "lesson1",
		"date":      "2025-09-10",
		"time":      "18:00",
		"price":     99,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fmt.Sprint(body["error"]), "price")
}

func TestNotificationEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria@example.com")

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["unread_count"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["unread_count"])

	// Idempotent.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["unread_count"])
}

func TestProfileRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jake@example.com")

	// Jake's seed record has a blank avatar; login defaulted it.
	resp, profile := doJSON(t, app, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, profile["avatar"])

	resp, profile = doJSON(t, app, http.MethodPut, "/api/v1/profile", token, fiber.Map{
		"name": "Jake T.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jake T.", profile["name"])
}

func TestProfileServesTokenOwnerNotLastLogin(t *testing.T) {
	app := newTestApp(t)
	mariaToken := login(t, app, "maria@example.com")
	jakeToken := login(t, app, "jake@example.com") // session now belongs to jake

	// Maria's token must still resolve to maria.
	resp, profile := doJSON(t, app, http.MethodGet, "/api/v1/profile", mariaToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user1", profile["id"])

	// And her update must land on her record, not jake's.
	resp, profile = doJSON(t, app, http.MethodPut, "/api/v1/profile", mariaToken, fiber.Map{
		"name": "Maria L.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user1", profile["id"])
	assert.Equal(t, "Maria L.", profile["name"])

	resp, profile = doJSON(t, app, http.MethodGet, "/api/v1/profile", jakeToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user4", profile["id"])
	assert.Equal(t, "Jake Thompson", profile["name"])
}

func listFavorites(t *testing.T, app *fiber.App, token string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lessons/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var lessons []map[string]any
	require.NoError(t, json.Unmarshal(raw, &lessons))
	return lessons
}

func TestFavoritesAreScopedToCaller(t *testing.T) {
	app := newTestApp(t)
	mariaToken := login(t, app, "maria@example.com")
	jakeToken := login(t, app, "jake@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/lessons/lesson1/favorite", mariaToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["favorited"])

	favs := listFavorites(t, app, mariaToken)
	require.Len(t, favs, 1)
	assert.Equal(t, "lesson1", favs[0]["id"])

	assert.Empty(t, listFavorites(t, app, jakeToken))
}

func TestNotificationsAreScopedToCaller(t *testing.T) {
	app := newTestApp(t)
	mariaToken := login(t, app, "maria@example.com")
	carlosToken := login(t, app, "carlos@example.com")

	_, body := doJSON(t, app, http.MethodGet, "/api/v1/notifications", mariaToken, nil)
	assert.Equal(t, float64(2), body["unread_count"])
	_, body = doJSON(t, app, http.MethodGet, "/api/v1/notifications", carlosToken, nil)
	assert.Equal(t, float64(1), body["unread_count"])

	// notif4 belongs to carlos; maria cannot flip it.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/notifications/notif4/read", mariaToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/notifications/read-all", mariaToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["unread_count"])

	_, body = doJSON(t, app, http.MethodGet, "/api/v1/notifications", carlosToken, nil)
	assert.Equal(t, float64(1), body["unread_count"])
}

func TestBookingMutationsRequireParticipant(t *testing.T) {
	app := newTestApp(t)
	mariaToken := login(t, app, "maria@example.com")
	lenaToken := login(t, app, "lena@example.com")
	carlosToken := login(t, app, "carlos@example.com")

	resp, booking := doJSON(t, app, http.MethodPost, "/api/v1/bookings", mariaToken, fiber.Map{
		"lesson_id": "lesson1",
		"date":      "2025-09-10",
		"time":      "18:00",
		"price":     150,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bookingID, _ := booking["id"].(string)
	require.NotEmpty(t, bookingID)

	// Lena is neither the student nor the instructor.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/bookings/"+bookingID, lenaToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", lenaToken, fiber.Map{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/payments", lenaToken, fiber.Map{
		"booking_id":        bookingID,
		"payment_method_id": "pm_card",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Carlos teaches lesson1, so he may move the booking along.
	resp, updated := doJSON(t, app, http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", carlosToken, fiber.Map{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", updated["status"])

	// Instructors do not book lessons.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/bookings", carlosToken, fiber.Map{
		"lesson_id": "lesson1",
		"date":      "2025-09-10",
		"time":      "18:00",
		"price":     150,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestConversationEndpoints(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria@example.com")

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/conversations", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, sent := doJSON(t, app, http.MethodPost, "/api/v1/messages", token, fiber.Map{
		"receiver_id": "user2",
		"message":     "See you in class!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "user1", sent["senderId"])
	assert.Equal(t, "user2", sent["receiverId"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/messages", token, fiber.Map{
		"receiver_id": "nobody",
		"message":     "hello?",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
