package promoController

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nersony/essen-sub001/configs"
	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
	"github.com/nersony/essen-sub001/store"
)

var (
	Activities store.ActivityStore
	Log        *slog.Logger = slog.Default()
)

func promoCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "promos")
}

// GetActivePromos returns banners currently in their display window.
func GetActivePromos(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"active":   true,
		"startsAt": bson.M{"$lte": now},
		"endsAt":   bson.M{"$gte": now},
	}

	cursor, err := promoCollection().Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "startsAt", Value: -1}}))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch promos",
		})
	}
	defer cursor.Close(ctx)

	var promos []models.Promo
	if err := cursor.All(ctx, &promos); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode promos",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Promos fetched successfully",
		Result:  &fiber.Map{"promos": promos},
	})
}

// AddPromo creates a banner (admin).
func AddPromo(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var promo models.Promo
	if err := c.BodyParser(&promo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if promo.Title == "" || promo.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Title and image are required",
		})
	}
	if !promo.EndsAt.After(promo.StartsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Promo end must be after its start",
		})
	}

	promo.ID = primitive.NewObjectID()
	promo.CreatedAt = time.Now()

	if _, err := promoCollection().InsertOne(ctx, promo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create promo",
		})
	}

	recordActivity(ctx, c, "promo.created", promo.ID.Hex(), promo.Title)

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Promo created successfully",
		Result:  &fiber.Map{"promo": promo},
	})
}

// DeletePromo removes a banner (admin).
func DeletePromo(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id := c.Query("id")
	promoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid promo ID format",
		})
	}

	result, err := promoCollection().DeleteOne(ctx, bson.M{"_id": promoID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete promo",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Promo not found",
		})
	}

	recordActivity(ctx, c, "promo.deleted", id, "")

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Promo deleted successfully",
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
		Target:    "promos",
		TargetID:  targetID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := Activities.Record(ctx, activity); err != nil {
		Log.Error("activity record failed", "action", action, "error", err)
	}
}
