package adminController

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nersony/essen-sub001/models"
	"github.com/nersony/essen-sub001/responses"
	"github.com/nersony/essen-sub001/store"
)

// Package dependencies, wired in main.
var (
	Orders     store.OrderStore
	Activities store.ActivityStore
	Log        *slog.Logger = slog.Default()
)

const dateLayout = "2006-01-02"

// parseOrderFilter builds the explicit order-list filter from query
// parameters, validating the date bounds once here at the boundary.
func parseOrderFilter(c *fiber.Ctx) (store.OrderFilter, error) {
	filter := store.OrderFilter{Status: c.Query("status", "")}
	if filter.Status != "" && !models.IsValidStatus(filter.Status) {
		return filter, fiber.NewError(fiber.StatusBadRequest, "Unknown order status")
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD")
		}
		// inclusive day bound
		end := t.Add(24 * time.Hour)
		filter.To = &end
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fiber.NewError(fiber.StatusBadRequest, "'to' date is before 'from' date")
	}
	return filter, nil
}

// ListOrders returns all orders matching the status/date-range filter.
func ListOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter, err := parseOrderFilter(c)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(responses.AppResponse{
			Status:  ferr.Code,
			Message: ferr.Message,
		})
	}

	page, limit := parsePaging(c)
	orders, total, err := Orders.List(ctx, filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
		})
	}

	totalPages := (total + limit - 1) / limit
	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result: &fiber.Map{
			"orders":      orders,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalOrders": total,
		},
	})
}

// UpdateOrderStatusRequest is the manual status-edit payload.
type UpdateOrderStatusRequest struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	Notes          string `json:"notes"`
}

// UpdateOrderStatus changes an order's status by admin action, independent of
// the webhook path. Not-found is surfaced here, unlike on the webhook path.
func UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if !models.IsValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown order status",
		})
	}
	orderObjectID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AppResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	matched, err := Orders.SetStatus(ctx, orderObjectID, req.Status, req.TrackingNumber, req.Notes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AppResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
		})
	}
	if matched == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.AppResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	}

	recordActivity(ctx, c, "order.status_updated", "orders", req.OrderID,
		"status set to "+req.Status)

	return c.Status(fiber.StatusOK).JSON(responses.AppResponse{
		Status:  fiber.StatusOK,
		Message: "Order status updated",
		Result: &fiber.Map{
			"orderId": req.OrderID,
			"status":  req.Status,
		},
	})
}

// recordActivity appends an audit-log entry for the acting admin. Failures
// are logged, never surfaced; the admin action itself already succeeded.
func recordActivity(ctx context.Context, c *fiber.Ctx, action, target, targetID, detail string) {
	actorHex, _ := c.Locals("userId").(string)
	actorID, err := primitive.ObjectIDFromHex(actorHex)
	if err != nil {
		Log.Error("activity record skipped, bad actor id", "actorId", actorHex)
		return
	}
	activity := models.Activity{
		ID:        primitive.NewObjectID(),
		ActorID:   actorID,
		Action:    action,
		Target:    target,
		TargetID:  targetID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := Activities.Record(ctx, activity); err != nil {
		Log.Error("activity record failed", "action", action, "error", err)
	}
}

func parsePaging(c *fiber.Ctx) (page, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
