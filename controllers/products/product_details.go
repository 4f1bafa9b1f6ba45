package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
)

// FetchProductDetails returns a single product by id or slug.
func FetchProductDetails(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	slug := c.Query("slug")
	if id == "" && slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product id or slug is required",
		})
	}

	filter := bson.M{}
	if id != "" {
		productID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid product ID format",
			})
		}
		filter["_id"] = productID
	} else {
		filter["slug"] = slug
	}

	var product models.Product
	if err := productCollection().FindOne(ctx, filter).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Product fetched successfully",
		Result:  &fiber.Map{"product": product},
	})
}
