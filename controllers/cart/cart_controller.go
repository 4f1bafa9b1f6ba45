package cartController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nersony/essen-sub001/configs"
	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
)

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "users")
}

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "products")
}

type CartRequest struct {
	ProductID string `json:"productId"`
}

func currentUser(c *fiber.Ctx, ctx context.Context) (*models.User, *primitive.ObjectID, error) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid User ID format")
	}
	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Error fetching user details")
	}
	return &user, &userObjectID, nil
}

func respondError(c *fiber.Ctx, err error) error {
	ferr, ok := err.(*fiber.Error)
	if !ok {
		ferr = fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(ferr.Code).JSON(responses.AppResponse{
		Status:  ferr.Code,
		Message: ferr.Message,
	})
}

func saveCart(ctx context.Context, userID *primitive.ObjectID, cart []models.CartItem) error {
	_, err := userCollection().UpdateOne(ctx,
		bson.M{"_id": *userID},
		bson.M{"$set": bson.M{"cart": cart}})
	return err
}

// AddToCart adds one unit of the product to the user's cart, or bumps the
// quantity when it is already there.
func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request CartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	var product models.Product
	if err := productCollection().FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
		})
	}

	if product.Stock <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product is out of stock",
		})
	}

	user, userObjectID, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	found := false
	for i, item := range user.Cart {
		if item.Product.ID == productID {
			user.Cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		user.Cart = append(user.Cart, models.CartItem{Product: product, Quantity: 1})
	}

	if err := saveCart(ctx, userObjectID, user.Cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Product added to cart",
		Result:  &fiber.Map{"cart": user.Cart},
	})
}

// DecrementFromCart lowers the quantity by one, removing the line at zero.
func DecrementFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request CartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	user, userObjectID, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	for i, item := range user.Cart {
		if item.Product.ID == productID {
			if item.Quantity <= 1 {
				user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			} else {
				user.Cart[i].Quantity--
			}
			break
		}
	}

	if err := saveCart(ctx, userObjectID, user.Cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Cart updated",
		Result:  &fiber.Map{"cart": user.Cart},
	})
}

// RemoveFromCart deletes the whole line item.
func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var request CartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
		})
	}

	user, userObjectID, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	for i, item := range user.Cart {
		if item.Product.ID == productID {
			user.Cart = append(user.Cart[:i], user.Cart[i+1:]...)
			break
		}
	}

	if err := saveCart(ctx, userObjectID, user.Cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Product removed from cart",
		Result:  &fiber.Map{"cart": user.Cart},
	})
}

// GetCart returns the cart contents.
func GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, _, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Cart fetched successfully",
		Result:  &fiber.Map{"cart": user.Cart},
	})
}

// GetCartTotals computes the same totals checkout will use, so the cart page
// and the payment amount never disagree.
func GetCartTotals(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, _, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]models.OrderItem, 0, len(user.Cart))
	for _, item := range user.Cart {
		items = append(items, models.OrderItem{
			Price:    item.Product.Price,
			Quantity: item.Quantity,
		})
	}
	subtotal, shipping, tax, total := models.ComputeTotals(items)

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Cart totals fetched successfully",
		Result: &fiber.Map{
			"subtotal": subtotal,
			"shipping": shipping,
			"tax":      tax,
			"total":    total,
			"items":    len(user.Cart),
		},
	})
}
