package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/siraj-eng/ShifaaEcommerce/models"
	"github.com/siraj-eng/ShifaaEcommerce/utils"
)

// Checkout materializes the user's cart into an immutable order. The order
// header, its line items, the stock decrements and the cart clear commit or
// roll back as a single transaction, so no partial state is ever observable.
func Checkout(db *gorm.DB, userID uint, shippingAddress, deliveryOption, notes string) (*models.Order, error) {
	var order *models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		for _, item := range items {
			if item.Product.Stock < item.Quantity {
				return ErrOutOfStock
			}
			total += item.Product.Price * float64(item.Quantity)
		}

		order = &models.Order{
			UserID:          userID,
			OrderNumber:     utils.GenerateOrderNumber(),
			TotalAmount:     total,
			Status:          models.OrderPending,
			ShippingAddress: shippingAddress,
			DeliveryOption:  deliveryOption,
			Notes:           notes,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range items {
			line := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price, // frozen at checkout time
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, line)
		}

		return ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the user's orders, newest first, with line items loaded.
func ListOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GetOrder fetches one order, rejecting access to another account's order.
func GetOrder(db *gorm.DB, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").Preload("Items.Product").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	return &order, nil
}

// Reorder merges a historical order's lines back into the current cart using
// the historical quantities. Current catalog prices apply at the next
// checkout, not the frozen ones.
func Reorder(db *gorm.DB, userID, orderID uint) error {
	order, err := GetOrder(db, userID, orderID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, line := range order.Items {
			var item models.CartItem
			err := tx.Where("user_id = ? AND product_id = ?", userID, line.ProductID).First(&item).Error
			switch {
			case err == nil:
				item.Quantity += line.Quantity
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				item = models.CartItem{UserID: userID, ProductID: line.ProductID, Quantity: line.Quantity}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
