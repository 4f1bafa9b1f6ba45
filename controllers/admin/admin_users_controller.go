package adminController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nersony/essen-sub001/configs"
	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
)

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "users")
}

// ListUsers returns all users with passwords stripped.
func ListUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, limit := parsePaging(c)
	skip := (page - 1) * limit

	total, err := userCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to count users",
		})
	}

	cursor, err := userCollection().Find(ctx, bson.M{}, options.Find().
		SetProjection(bson.M{"password": 0, "cart": 0}).
		SetSkip(skip).
		SetLimit(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch users",
		})
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode users",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Users fetched successfully",
		Result: &fiber.Map{
			"users":      users,
			"totalUsers": total,
		},
	})
}

// UpdateUserRoleRequest is the role-change payload.
type UpdateUserRoleRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// UpdateUserRole changes a user's role between user and admin.
func UpdateUserRole(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Role must be user or admin",
		})
	}
	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	// An admin cannot demote themselves; that would lock the back office.
	if actorHex, _ := c.Locals("userId").(string); actorHex == req.UserID && req.Role != models.RoleAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Cannot change your own role",
		})
	}

	result, err := userCollection().UpdateOne(ctx,
		bson.M{"_id": targetID},
		bson.M{"$set": bson.M{"role": req.Role}})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update user",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	recordActivity(ctx, c, "user.role_updated", "users", req.UserID, "role set to "+req.Role)

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "User role updated",
		Result: &fiber.Map{
			"userId": req.UserID,
			"role":   req.Role,
		},
	})
}
