package adminController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nersony/essen-sub001/responses"
)

// ListActivities returns the admin audit log, newest first.
func ListActivities(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, limit := parsePaging(c)
	activities, total, err := Activities.List(ctx, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch activities",
		})
	}

	totalPages := (total + limit - 1) / limit
	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Activities fetched successfully",
		Result: &fiber.Map{
			"activities":  activities,
			"currentPage": page,
			"totalPages":  totalPages,
		},
	})
}
