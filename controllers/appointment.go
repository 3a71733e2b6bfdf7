package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/services"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// BookAppointment books a consultation slot with a practitioner
func BookAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type BookingInput struct {
		PractitionerID  uint   `json:"practitioner_id"`
		Date            string `json:"date"` // 2006-01-02
		Time            string `json:"time"` // 15:04
		AppointmentType string `json:"appointment_type"`
		Notes           string `json:"notes"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := services.BookAppointment(db.DB, userID, input.PractitionerID,
		input.Date, input.Time, input.AppointmentType, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadTime):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date or time. Use YYYY-MM-DD and HH:MM.",
			})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Practitioner not found",
			})
		case errors.Is(err, services.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to book appointment",
				Error:   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetAppointments lists the user's appointments, most recent date first
func GetAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appointments, err := services.ListAppointments(db.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one of the user's appointments
func GetAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	appointmentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	appointment, err := services.GetAppointment(db.DB, userID, uint(appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "Unauthorized",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch appointment",
				Error:   err.Error(),
			})
		}
	}
	return c.JSON(appointment)
}

// UpdateAppointmentStatus completes or cancels an appointment (admin only)
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}
