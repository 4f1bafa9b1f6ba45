package controllers

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/nersony/essen-sub001/configs"
	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
)

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "users")
}

var emailRegex = regexp.MustCompile(`^(([^<>()[\]\.,;:\s@\"]+(\.[^<>()[\]\.,;:\s@\"]+)*)|(\".+\"))@(([^<>()[\]\.,;:\s@\"]+\.)+[^<>()[\]\.,;:\s@\"]{2,})$`)

// UserSignUp registers a new customer account.
func UserSignUp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if reqBody.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name is required",
		})
	}
	if utf8.RuneCountInString(reqBody.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Passwords must be 8 letters long",
		})
	}
	if reqBody.Password != reqBody.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Passwords do not match",
		})
	}
	if !emailRegex.MatchString(reqBody.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please enter a valid email address",
		})
	}

	var existingUser models.User
	err := userCollection().FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existingUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
		})
	} else if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User with same email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
		})
	}

	newUser := models.User{
		Id:       primitive.NewObjectID(),
		Name:     reqBody.Name,
		Email:    reqBody.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
		Cart:     []models.CartItem{},
	}
	if _, err := userCollection().InsertOne(ctx, newUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving user, please try again later",
		})
	}

	newUser.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "User created successfully",
		Result:  &fiber.Map{"data": newUser},
	})
}

// UserSignIn verifies credentials and issues a JWT carrying id and role.
func UserSignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var existingUser models.User
	err := userCollection().FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existingUser)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User with this account does not exist",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching from database",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(reqBody.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Incorrect password",
		})
	}

	token, err := createJwt(existingUser.Id.Hex(), existingUser.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result: &fiber.Map{
			"data": fiber.Map{
				"id":    existingUser.Id.Hex(),
				"name":  existingUser.Name,
				"email": existingUser.Email,
				"role":  existingUser.Role,
				"cart":  existingUser.Cart,
				"token": token,
			},
		},
	})
}

func createJwt(userId, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userId,
		"role": role,
		"exp":  time.Now().Add(time.Hour * 720).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.EnvJwtSecret()))
}

// GetUserProfile returns the authenticated user's account.
func GetUserProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Profile fetched successfully",
		Result:  &fiber.Map{"data": user},
	})
}

// UpdateUserProfile updates name and phone on the authenticated account.
func UpdateUserProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var reqBody struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	set := bson.M{}
	if reqBody.Name != "" {
		set["name"] = reqBody.Name
	}
	if reqBody.Phone != "" {
		set["phone"] = reqBody.Phone
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Nothing to update",
		})
	}

	if _, err := userCollection().UpdateOne(ctx, bson.M{"_id": userObjectID}, bson.M{"$set": set}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating profile",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
	})
}
