package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"uniqueIndex"`
	Password     string        `json:"-"`
	Role         string        `json:"role" gorm:"default:user"`
	Phone        string        `json:"phone,omitempty"`
	Address      string        `json:"address,omitempty"`
	CartItems    []CartItem    `json:"cart_items,omitempty" gorm:"foreignKey:UserID"`
	Orders       []Order       `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
