package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	DeliveryOption  string      `json:"delivery_option"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem freezes the product price at order time so later catalog price
// changes never alter historical orders.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderPending
	}
	return nil
}

// UpdateStatus enforces the fulfilment state machine:
// pending -> processing -> shipped -> delivered, with cancelled reachable
// from any non-terminal state.
func (o *Order) UpdateStatus(tx *gorm.DB, newStatus OrderStatus) error {
	switch o.Status {
	case OrderPending:
		if newStatus != OrderProcessing && newStatus != OrderCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case OrderProcessing:
		if newStatus != OrderShipped && newStatus != OrderCancelled {
			return fmt.Errorf("invalid transition from processing to %s", newStatus)
		}
	case OrderShipped:
		if newStatus != OrderDelivered && newStatus != OrderCancelled {
			return fmt.Errorf("invalid transition from shipped to %s", newStatus)
		}
	case OrderDelivered, OrderCancelled:
		return fmt.Errorf("no transitions allowed from %s", o.Status)
	}

	o.Status = newStatus
	return tx.Save(o).Error
}
