package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/siraj-eng/ShifaaEcommerce/db"
	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	err := db.DB.Preload("Practitioner").
		Where("status = ? AND appointment_date BETWEEN ? AND ?",
			models.StatusScheduled, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		var user models.User
		if db.DB.First(&user, appointment.UserID).RowsAffected == 0 {
			continue
		}
		if err := sendReminderEmail(&user, &appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, user.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(user *models.User, appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: %s consultation with %s",
		appointment.AppointmentType, appointment.Practitioner.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your consultation scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Practitioner:</strong> %s (%s)</li>
			<li><strong>Type:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule, contact us as soon as possible.</p>
	`, user.Name, appointment.Practitioner.Name, appointment.Practitioner.Title,
		appointment.AppointmentType,
		appointment.AppointmentDate.Format("2006-01-02 15:04"))

	return utils.SendEmail(user.Email, subject, body)
}
