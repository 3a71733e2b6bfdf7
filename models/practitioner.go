package models

import (
	"time"
)

type Practitioner struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Title        string        `json:"title"` // e.g. "Herbalist", "Naturopath"
	Bio          string        `json:"bio"`
	Specialties  string        `json:"specialties"` // comma-separated
	ImageURL     string        `json:"image_url"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	IsActive     bool          `json:"is_active" gorm:"default:true"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:PractitionerID"`
	CreatedAt    time.Time     `json:"created_at"`
}
