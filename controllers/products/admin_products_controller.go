package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
)

// AddProduct creates a catalog entry (admin).
func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if product.Name == "" || product.Slug == "" || product.Category == "" || product.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name, slug, category and a positive price are required",
		})
	}

	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := productCollection().InsertOne(ctx, product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create product",
		})
	}

	recordActivity(ctx, c, "product.created", product.ID.Hex(), product.Name)

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Product created successfully",
		Result:  &fiber.Map{"product": product},
	})
}

// UpdateProduct replaces the mutable fields of a catalog entry (admin).
func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if product.ID.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product ID is required",
		})
	}

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"category":    product.Category,
		"material":    product.Material,
		"dimensions":  product.Dimensions,
		"price":       product.Price,
		"stock":       product.Stock,
		"images":      product.Images,
		"featured":    product.Featured,
		"updatedAt":   time.Now(),
	}}

	result, err := productCollection().UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update product",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	recordActivity(ctx, c, "product.updated", product.ID.Hex(), product.Name)

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
	})
}

// DeleteProduct removes a catalog entry (admin).
func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	result, err := productCollection().DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete product",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	recordActivity(ctx, c, "product.deleted", id, "")

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted successfully",
	})
}

func recordActivity(ctx context.Context, c *fiber.Ctx, action, targetID, detail string) {
	if Activities == nil {
		return
	}
	actorHex, _ := c.Locals("userId").(string)
	actorID, err := primitive.ObjectIDFromHex(actorHex)
	if err != nil {
		return
	}
	activity := models.Activity{
		ID:        primitive.NewObjectID(),
		ActorID:   actorID,
		Action:    action,
		Target:    "products",
		TargetID:  targetID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := Activities.Record(ctx, activity); err != nil {
		Log.Error("activity record failed", "action", action, "error", err)
	}
}
