package routes

import (
	cartController "github.com/nersony/essen-sub001/controllers/cart"
	"github.com/nersony/essen-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Post("/api/cart/add", middlewares.AuthMiddleware, cartController.AddToCart)
	app.Post("/api/cart/decrement", middlewares.AuthMiddleware, cartController.DecrementFromCart)
	app.Post("/api/cart/remove", middlewares.AuthMiddleware, cartController.RemoveFromCart)
	app.Get("/api/cart", middlewares.AuthMiddleware, cartController.GetCart)
	app.Get("/api/cart/totals", middlewares.AuthMiddleware, cartController.GetCartTotals)
}
