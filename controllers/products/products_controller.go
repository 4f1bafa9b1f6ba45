package controllers

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nersony/essen-sub001/configs"
	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
	"github.com/nersony/essen-sub001/store"
)

// Activities is wired in main so admin catalog changes land in the audit log.
var (
	Activities store.ActivityStore
	Log        *slog.Logger = slog.Default()
)

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "products")
}

// GetAllProducts lists products, optionally filtered by category.
func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	skip := (page - 1) * limit

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	total, err := productCollection().CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to count products",
		})
	}

	cursor, err := productCollection().Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch products",
		})
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode products",
		})
	}

	totalPages := (total + limit - 1) / limit
	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Products fetched successfully",
		Result: &fiber.Map{
			"products":    products,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalItems":  total,
		},
	})
}

// SearchProducts matches the query against product name and description.
func SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Search query is required",
		})
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"name": bson.M{"$regex": query, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": query, "$options": "i"}},
	}}

	cursor, err := productCollection().Find(ctx, filter, options.Find().SetLimit(50))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to search products",
		})
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Search results fetched successfully",
		Result:  &fiber.Map{"products": products},
	})
}

// GetFeaturedProducts returns products flagged for the homepage.
func GetFeaturedProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := productCollection().Find(ctx, bson.M{"featured": true}, options.Find().SetLimit(12))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch featured products",
		})
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Featured products fetched successfully",
		Result:  &fiber.Map{"products": products},
	})
}
