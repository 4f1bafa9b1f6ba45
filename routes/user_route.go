package routes

import (
	controllers "github.com/nersony/essen-sub001/controllers/user"
	"github.com/nersony/essen-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func UserRoute(app *fiber.App) {
	app.Post("/api/signup", controllers.UserSignUp)
	app.Post("/api/signin", controllers.UserSignIn)
	app.Get("/api/profile", middlewares.AuthMiddleware, controllers.GetUserProfile)
	app.Post("/api/update-profile", middlewares.AuthMiddleware, controllers.UpdateUserProfile)
}
