package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/stepsync/dance_marketplace/backend"
	"github.com/stepsync/dance_marketplace/configs"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/handlers"
	"github.com/stepsync/dance_marketplace/jobs"
	"github.com/stepsync/dance_marketplace/notifications"
	"github.com/stepsync/dance_marketplace/routes"
	"github.com/stepsync/dance_marketplace/stores"
	"github.com/stepsync/dance_marketplace/websocket"
)

func main() {
	brand := configs.Brand()
	log.Printf("Starting %s (brand %q)", brand.DisplayName, brand.Name)

	ds, err := dataset.Load()
	if err != nil {
		log.Fatalf("🔥 Failed to load dataset: %v", err)
	}

	notifRepo := notifications.NewInMemoryRepository(ds)
	authStore := stores.NewAuthStore(ds)
	bookingStore := stores.NewBookingStore(ds, notifRepo)
	lessonStore := stores.NewLessonStore(ds)
	profileStore := stores.NewProfileStore(authStore)

	be, err := backend.New(brand, authStore, ds)
	if err != nil {
		log.Fatalf("🔥 Failed to build backend: %v", err)
	}

	var hub *websocket.Hub
	if brand.Features.Chat {
		hub = websocket.NewHub()
		go hub.Run()
	}

	if brand.Features.Notifications {
		c := cron.New()
		reminder := jobs.NewReminderJob(bookingStore, ds, notifRepo)
		if _, err := c.AddFunc("*/5 * * * *", reminder.SendLessonReminders); err != nil {
			log.Fatalf("🔥 Failed to schedule reminder job: %v", err)
		}
		go c.Start()
		log.Println("✅ Lesson reminder job scheduled")
	}

	app := fiber.New(fiber.Config{
		AppName:       brand.DisplayName,
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app, brand)
	routes.AuthRoutes(app, handlers.NewAuthHandler(be))
	routes.LessonRoutes(app, handlers.NewLessonHandler(lessonStore, ds))
	routes.BookingRoutes(app, handlers.NewBookingHandler(bookingStore))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(be, bookingStore, ds, notifRepo))
	routes.MessagingRoutes(app, handlers.NewMessageHandler(ds, hub, notifRepo), brand.Features.Chat)
	routes.NotificationRoutes(app, handlers.NewNotificationHandler(notifRepo))
	routes.ProfileRoutes(app, handlers.NewProfileHandler(authStore, profileStore, be, ds))

	port := configs.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
