package routes

import (
	controllers "github.com/nersony/essen-sub001/controllers/products"
	"github.com/nersony/essen-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	app.Get("/api/products", controllers.GetAllProducts)
	app.Get("/api/products/search", controllers.SearchProducts)
	app.Get("/api/products/featured", controllers.GetFeaturedProducts)
	app.Get("/api/products/details", controllers.FetchProductDetails)

	// Admin catalog management
	app.Post("/api/admin/products", middlewares.AuthMiddleware, middlewares.RequireAdmin, controllers.AddProduct)
	app.Put("/api/admin/products", middlewares.AuthMiddleware, middlewares.RequireAdmin, controllers.UpdateProduct)
	app.Delete("/api/admin/products", middlewares.AuthMiddleware, middlewares.RequireAdmin, controllers.DeleteProduct)
}
