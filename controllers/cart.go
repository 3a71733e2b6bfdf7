package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/services"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// GetCart returns the user's cart lines with subtotals and the grand total
func GetCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	summary, err := services.CartTotals(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch cart",
			Error:   err.Error(),
		})
	}
	return c.JSON(summary)
}

// AddToCart adds a product to the user's cart, merging with any existing line
func AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type AddInput struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}

	input := new(AddInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	item, err := services.AddToCart(db.DB, userID, input.ProductID, input.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateCartItem overwrites a line's quantity; zero or less removes the line
func UpdateCartItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid cart item ID",
		})
	}

	type UpdateInput struct {
		Quantity int `json:"quantity"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := services.SetQuantity(db.DB, userID, uint(itemID), input.Quantity); err != nil {
		return cartError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

// RemoveCartItem deletes one line from the user's cart
func RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid cart item ID",
		})
	}

	if err := services.RemoveFromCart(db.DB, userID, uint(itemID)); err != nil {
		return cartError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrBadQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Quantity must be at least 1",
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Not found",
		})
	case errors.Is(err, services.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Unauthorized",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Cart operation failed",
			Error:   err.Error(),
		})
	}
}
