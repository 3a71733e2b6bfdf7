package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/siraj-eng/ShifaaEcommerce/models"
)

// CartLine pairs a stored cart item with its line subtotal at current price.
type CartLine struct {
	Item     models.CartItem `json:"item"`
	Subtotal float64         `json:"subtotal"`
}

// CartSummary is derived fresh from stored state on every call; no total is
// ever persisted.
type CartSummary struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// AddToCart puts quantity units of a product into the user's cart. Repeated
// adds for the same product accumulate onto the existing line.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrBadQuantity
	}

	var product models.Product
	if err := db.Where("id = ? AND is_active = ?", productID, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	item.Product = product
	return &item, nil
}

// SetQuantity overwrites a cart line's quantity. A non-positive quantity
// removes the line. A line owned by another account is an authorization
// failure, not a not-found.
func SetQuantity(db *gorm.DB, userID, itemID uint, quantity int) error {
	var item models.CartItem
	if err := db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		return ErrNotOwner
	}

	if quantity <= 0 {
		return db.Delete(&item).Error
	}
	item.Quantity = quantity
	return db.Save(&item).Error
}

// RemoveFromCart deletes a cart line after checking ownership.
func RemoveFromCart(db *gorm.DB, userID, itemID uint) error {
	var item models.CartItem
	if err := db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		return ErrNotOwner
	}
	return db.Delete(&item).Error
}

// CartTotals loads the user's cart lines with their products and computes the
// grand total as the sum of price x quantity over current catalog prices.
func CartTotals(db *gorm.DB, userID uint) (*CartSummary, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}

	summary := &CartSummary{Lines: make([]CartLine, 0, len(items))}
	for _, item := range items {
		sub := item.Subtotal()
		summary.Lines = append(summary.Lines, CartLine{Item: item, Subtotal: sub})
		summary.Total += sub
	}
	return summary, nil
}

// ClearCart removes every cart line of the user. Callers pass the checkout
// transaction handle so the clear commits or rolls back with the order.
func ClearCart(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
