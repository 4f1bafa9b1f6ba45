package routes

import (
	orderController "github.com/nersony/essen-sub001/controllers/orders"
	"github.com/nersony/essen-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Post("/api/checkout", middlewares.AuthMiddleware, orderController.Checkout)
	app.Get("/api/orders", middlewares.AuthMiddleware, orderController.GetOrders)
	app.Get("/api/orders/details", middlewares.AuthMiddleware, orderController.GetOrderById)
	app.Get("/api/orders/track", orderController.TrackOrder)

	// Gateway callback. Authenticated by its signature, not by a session.
	app.Post("/api/payment/webhook", orderController.PaymentWebhook)
}
