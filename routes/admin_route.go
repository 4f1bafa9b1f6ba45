package routes

import (
	adminController "github.com/nersony/essen-sub001/controllers/admin"
	"github.com/nersony/essen-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middlewares.AuthMiddleware, middlewares.RequireAdmin)

	admin.Get("/orders", adminController.ListOrders)
	admin.Put("/orders/status", adminController.UpdateOrderStatus)

	admin.Get("/users", adminController.ListUsers)
	admin.Put("/users/role", adminController.UpdateUserRole)

	admin.Get("/activities", adminController.ListActivities)
}
