package responses

import "github.com/gofiber/fiber/v2"

// AppResponse is the envelope every handler returns.
type AppResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}
