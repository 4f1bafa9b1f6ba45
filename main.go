package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nersony/essen-sub001/configs"
	adminController "github.com/nersony/essen-sub001/controllers/admin"
	orderController "github.com/nersony/essen-sub001/controllers/orders"
	productController "github.com/nersony/essen-sub001/controllers/products"
	promoController "github.com/nersony/essen-sub001/controllers/promo"
	"github.com/nersony/essen-sub001/logging"
	"github.com/nersony/essen-sub001/payments"
	"github.com/nersony/essen-sub001/routes"
	"github.com/nersony/essen-sub001/store"
)

func main() {
	configs.LoadEnv()
	log := logging.New("essen-store-api", configs.EnvLogLevel())

	client := configs.ConnectDB()
	log.Info("connected to MongoDB", "database", configs.EnvMongoDatabase())

	orderStore := store.NewMongoOrderStore(configs.GetCollection(client, "orders"))
	activityStore := store.NewMongoActivityStore(configs.GetCollection(client, "activities"))

	orderController.Orders = orderStore
	orderController.Gateway = payments.NewRazorpayGateway(
		configs.EnvRazorpayKeyId(), configs.EnvRazorpayKeySecret())
	orderController.WebhookSecret = configs.EnvWebhookSecret()
	orderController.RedirectURL = configs.EnvStoreURL() + "/checkout/complete"
	orderController.WebhookURL = configs.EnvBaseURL() + "/api/payment/webhook"
	orderController.Log = log

	adminController.Orders = orderStore
	adminController.Activities = activityStore
	adminController.Log = log
	productController.Activities = activityStore
	productController.Log = log
	promoController.Activities = activityStore
	promoController.Log = log

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.UserRoute(app)
	routes.ProductsRoute(app)
	routes.CartRoutes(app)
	routes.OrderRoutes(app)
	routes.AdminRoutes(app)
	routes.PromoRoutes(app)

	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		log.Error("server stopped", "error", err)
	}
}
