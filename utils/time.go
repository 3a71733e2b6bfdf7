package utils

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentTimeLayout is the fixed layout booking forms submit against.
const AppointmentTimeLayout = "2006-01-02 15:04"

// ParseAppointmentTime combines a date and a time-of-day field into one
// timestamp. Both fields are required; a mismatch against the layout is a
// validation error.
func ParseAppointmentTime(date, timeOfDay string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" || timeOfDay == "" {
		return time.Time{}, fmt.Errorf("date and time are required")
	}
	return time.Parse(AppointmentTimeLayout, date+" "+timeOfDay)
}
