package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/services"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// Checkout turns the user's cart into an order and clears the cart
func Checkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type CheckoutInput struct {
		ShippingAddress string `json:"shipping_address"`
		DeliveryOption  string `json:"delivery_option"`
		Notes           string `json:"notes"`
	}

	input := new(CheckoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var user models.User
	if db.DB.First(&user, userID).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Unauthorized",
		})
	}
	if input.ShippingAddress == "" {
		input.ShippingAddress = user.Address
	}
	if input.ShippingAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Shipping address is required",
		})
	}

	order, err := services.Checkout(db.DB, userID, input.ShippingAddress, input.DeliveryOption, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Your cart is empty",
			})
		case errors.Is(err, services.ErrOutOfStock):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "One or more items are out of stock",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Checkout failed",
				Error:   err.Error(),
			})
		}
	}

	go sendOrderConfirmation(user.Email, user.Name, order)

	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetOrders lists the user's orders, newest first
func GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	orders, err := services.ListOrders(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetOrder returns one of the user's orders with its line items
func GetOrder(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid order ID",
		})
	}

	order, err := services.GetOrder(db.DB, userID, uint(orderID))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// Reorder adds a past order's items back into the cart at current prices
func Reorder(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid order ID",
		})
	}

	if err := services.Reorder(db.DB, userID, uint(orderID)); err != nil {
		return orderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Items added to cart"})
}

// UpdateOrderStatus advances an order through the fulfilment state machine
// (admin only)
func UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.OrderStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
		})
	}

	if err := order.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(order)
}

func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Unauthorized",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Order operation failed",
			Error:   err.Error(),
		})
	}
}

func sendOrderConfirmation(email, name string, order *models.Order) {
	subject := fmt.Sprintf("Order Confirmation - %s", order.OrderNumber)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your order.</p>
		<p><strong>Order number:</strong> %s</p>
		<p><strong>Total:</strong> %.2f</p>
		<p>We will let you know when it ships.</p>
	`, name, order.OrderNumber, order.TotalAmount)

	if err := utils.SendEmail(email, subject, body); err != nil {
		log.Printf("Failed to send order confirmation for %s: %v", order.OrderNumber, err)
	}
}
