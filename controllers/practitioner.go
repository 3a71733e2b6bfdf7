package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// GetAllPractitioners returns the active practitioners
func GetAllPractitioners(c *fiber.Ctx) error {
	var practitioners []models.Practitioner
	if err := db.DB.Where("is_active = ?", true).Order("name").Find(&practitioners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch practitioners",
			Error:   err.Error(),
		})
	}
	return c.JSON(practitioners)
}

// GetPractitioner returns details for a single practitioner
func GetPractitioner(c *fiber.Ctx) error {
	id := c.Params("id")

	var practitioner models.Practitioner
	if err := db.DB.Where("is_active = ?", true).First(&practitioner, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Practitioner not found",
		})
	}

	var upcoming int64
	db.DB.Model(&models.Appointment{}).
		Where("practitioner_id = ? AND status = ?", practitioner.ID, models.StatusScheduled).
		Count(&upcoming)

	return c.JSON(fiber.Map{
		"practitioner":          practitioner,
		"upcoming_appointments": upcoming,
	})
}

// CreatePractitioner adds a practitioner (admin only)
func CreatePractitioner(c *fiber.Ctx) error {
	practitioner := new(models.Practitioner)
	if err := c.BodyParser(practitioner); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if practitioner.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Practitioner name is required",
		})
	}
	practitioner.IsActive = true

	if err := db.DB.Create(practitioner).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create practitioner",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(practitioner)
}

// UpdatePractitioner edits a practitioner record (admin only)
func UpdatePractitioner(c *fiber.Ctx) error {
	id := c.Params("id")

	var practitioner models.Practitioner
	if err := db.DB.First(&practitioner, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Practitioner not found",
		})
	}

	updates := new(models.Practitioner)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&practitioner).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update practitioner",
			Error:   err.Error(),
		})
	}
	return c.JSON(practitioner)
}
