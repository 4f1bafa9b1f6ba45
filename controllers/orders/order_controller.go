package orderController

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
	"github.com/nersony/essen-sub001/store"
)

// GetOrders lists the authenticated customer's orders, newest first.
func GetOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AppResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	page, limit := parsePaging(c)
	status := c.Query("status", "")
	if status != "" && !models.IsValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown order status",
		})
	}

	orders, total, err := Orders.List(ctx, store.OrderFilter{
		Status: status,
		UserID: &userObjectID,
	}, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
		})
	}

	summaries := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, fiber.Map{
			"id":              order.ID.Hex(),
			"referenceNumber": order.ReferenceNumber,
			"status":          order.Status,
			"total":           order.Total,
			"itemCount":       len(order.Items),
			"createdAt":       order.CreatedAt,
		})
	}

	totalPages := (total + limit - 1) / limit
	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result: &fiber.Map{
			"orders":      summaries,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalOrders": total,
		},
	})
}

// GetOrderById returns one of the customer's own orders in full.
func GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.AppResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	orderId := c.Query("id")
	if orderId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order ID is required",
		})
	}
	orderObjectID, err := primitive.ObjectIDFromHex(orderId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	order, err := Orders.FindByID(ctx, orderObjectID)
	if err == store.ErrOrderNotFound {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
		})
	}

	if order.UserID.Hex() != userId {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Result:  &fiber.Map{"order": order},
	})
}

// TrackOrder reports the status of an order by its reference number. Public:
// the reference number is the lookup capability.
func TrackOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	reference := c.Query("reference")
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Reference number is required",
		})
	}

	order, err := Orders.FindByReference(ctx, reference)
	if err == store.ErrOrderNotFound {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Result: &fiber.Map{
			"referenceNumber": order.ReferenceNumber,
			"status":          order.Status,
			"trackingNumber":  order.TrackingNumber,
			"total":           order.Total,
			"createdAt":       order.CreatedAt,
		},
	})
}

func parsePaging(c *fiber.Ctx) (page, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
