package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// GetAllProducts returns the active catalog, optionally filtered by category
// or a name search, paginated in page/limit form.
func GetAllProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	offset := (page - 1) * limit

	filter := func() *gorm.DB {
		q := db.DB.Model(&models.Product{}).Where("is_active = ?", true)
		if category := c.Query("category"); category != "" {
			q = q.Where("category = ?", category)
		}
		if search := c.Query("q"); search != "" {
			q = q.Where("name ILIKE ?", "%"+search+"%")
		}
		return q
	}

	var count int64
	filter().Count(&count)

	var products []models.Product
	if err := filter().Limit(limit).Offset(offset).Order("name").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"products": products,
		"total":    count,
		"page":     page,
		"limit":    limit,
		"pages":    (int(count) + limit - 1) / limit,
	})
}

// GetProduct returns details for a single active product
func GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.Where("is_active = ?", true).First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}

	return c.JSON(product)
}

// CreateProduct adds a catalog item (admin only)
func CreateProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if product.Name == "" || product.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Product needs a name and a non-negative price",
		})
	}
	product.IsActive = true

	if err := db.DB.Create(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create product",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct edits a catalog item (admin only)
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}

	updates := new(models.Product)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&product).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update product",
			Error:   err.Error(),
		})
	}
	return c.JSON(product)
}

// DeactivateProduct hides a product from the storefront without deleting the
// rows historical orders still reference (admin only).
func DeactivateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Product not found",
		})
	}

	if err := db.DB.Model(&product).Update("is_active", false).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to deactivate product",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
