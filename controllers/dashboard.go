package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// GetDashboard summarizes the account: recent orders and upcoming
// appointments. Admins additionally get storewide aggregates.
func GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var recentOrders []models.Order
	if err := db.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch dashboard",
			Error:   err.Error(),
		})
	}

	var upcoming []models.Appointment
	db.DB.Preload("Practitioner").
		Where("user_id = ? AND status = ? AND appointment_date >= ?",
			userID, models.StatusScheduled, time.Now()).
		Order("appointment_date").
		Limit(5).
		Find(&upcoming)

	response := fiber.Map{
		"recent_orders":         recentOrders,
		"upcoming_appointments": upcoming,
	}

	if role == models.RoleAdmin {
		var userCount, orderCount, appointmentCount int64
		var revenue float64
		db.DB.Model(&models.User{}).Count(&userCount)
		db.DB.Model(&models.Order{}).Count(&orderCount)
		db.DB.Model(&models.Appointment{}).Count(&appointmentCount)
		db.DB.Model(&models.Order{}).
			Where("status <> ?", models.OrderCancelled).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&revenue)

		response["admin"] = fiber.Map{
			"users":        userCount,
			"orders":       orderCount,
			"appointments": appointmentCount,
			"revenue":      revenue,
		}
	}

	return c.JSON(response)
}
