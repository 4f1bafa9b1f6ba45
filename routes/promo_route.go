package routes

import (
	promoController "github.com/nersony/essen-sub001/controllers/promo"
	"github.com/nersony/essen-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PromoRoutes(app *fiber.App) {
	app.Get("/api/promos", promoController.GetActivePromos)

	app.Post("/api/admin/promos", middlewares.AuthMiddleware, middlewares.RequireAdmin, promoController.AddPromo)
	app.Delete("/api/admin/promos", middlewares.AuthMiddleware, middlewares.RequireAdmin, promoController.DeletePromo)
}
