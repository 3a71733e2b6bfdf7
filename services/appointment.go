package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// BookAppointment creates a scheduled appointment for the user with an active
// practitioner. The date and time strings are parsed against the fixed
// "2006-01-02 15:04" layout; a parse failure persists nothing. A practitioner
// can hold at most one non-cancelled appointment per instant.
func BookAppointment(db *gorm.DB, userID, practitionerID uint, date, timeOfDay, appointmentType, notes string) (*models.Appointment, error) {
	when, err := utils.ParseAppointmentTime(date, timeOfDay)
	if err != nil {
		return nil, ErrBadTime
	}

	var practitioner models.Practitioner
	if err := db.Where("id = ? AND is_active = ?", practitionerID, true).First(&practitioner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var conflict models.Appointment
	err = db.Where("practitioner_id = ? AND appointment_date = ? AND status <> ?",
		practitionerID, when, models.StatusCancelled).First(&conflict).Error
	if err == nil {
		return nil, ErrSlotTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	appointment := models.Appointment{
		UserID:          userID,
		PractitionerID:  practitionerID,
		AppointmentType: appointmentType,
		AppointmentDate: when,
		Status:          models.StatusScheduled,
		Notes:           notes,
	}
	if err := db.Create(&appointment).Error; err != nil {
		return nil, err
	}

	appointment.Practitioner = practitioner
	return &appointment, nil
}

// ListAppointments returns all of the user's appointments, most recent date
// first, history and future mixed.
func ListAppointments(db *gorm.DB, userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := db.Preload("Practitioner").
		Where("user_id = ?", userID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// GetAppointment fetches one appointment, ownership-checked.
func GetAppointment(db *gorm.DB, userID, appointmentID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := db.Preload("Practitioner").First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, ErrNotOwner
	}
	return &appointment, nil
}
