package models

import (
	"time"
)

type Product struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Stock             int       `json:"stock" gorm:"default:0"`
	ImageURL          string    `json:"image_url"`
	Category          string    `json:"category"`
	UsageInstructions string    `json:"usage_instructions,omitempty"`
	Warnings          string    `json:"warnings,omitempty"`
	IsActive          bool      `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
