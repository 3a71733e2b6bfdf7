package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/siraj-eng/ShifaaEcommerce/models"
)

func TestCheckoutSnapshotsCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	oil := createTestProduct(t, db, "Black Seed Oil", 10.00, 50)
	honey := createTestProduct(t, db, "Sidr Honey", 5.00, 30)

	if _, err := AddToCart(db, user.ID, oil.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := AddToCart(db, user.ID, honey.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := Checkout(db, user.ID, "1 Herb Lane", "standard", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.TotalAmount != 25.00 {
		t.Errorf("expected total 25.00, got %.2f", order.TotalAmount)
	}
	if order.Status != models.OrderPending {
		t.Errorf("expected status pending, got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNumber, "SHF-") {
		t.Errorf("expected SHF- order number prefix, got %s", order.OrderNumber)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}

	// Cart is empty after checkout.
	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	if cartCount != 0 {
		t.Errorf("expected empty cart after checkout, found %d lines", cartCount)
	}

	// Exactly one order exists.
	var orderCount int64
	db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orderCount)
	if orderCount != 1 {
		t.Errorf("expected exactly one order, found %d", orderCount)
	}

	// Stock was decremented inside the same transaction.
	var reloaded models.Product
	db.First(&reloaded, oil.ID)
	if reloaded.Stock != 48 {
		t.Errorf("expected oil stock 48 after checkout, got %d", reloaded.Stock)
	}
}

func TestCheckoutFreezesPrices(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	oil := createTestProduct(t, db, "Black Seed Oil", 10.00, 50)

	if _, err := AddToCart(db, user.ID, oil.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, user.ID, "1 Herb Lane", "standard", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// A later catalog price change must not touch the historical order.
	if err := db.Model(&models.Product{}).Where("id = ?", oil.ID).Update("price", 99.99).Error; err != nil {
		t.Fatalf("price update failed: %v", err)
	}

	reloaded, err := GetOrder(db, user.ID, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if reloaded.TotalAmount != 20.00 {
		t.Errorf("expected frozen total 20.00, got %.2f", reloaded.TotalAmount)
	}
	if reloaded.Items[0].Price != 10.00 {
		t.Errorf("expected frozen line price 10.00, got %.2f", reloaded.Items[0].Price)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")

	if _, err := Checkout(db, user.ID, "1 Herb Lane", "standard", ""); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no order created, found %d", count)
	}
}

func TestCheckoutStockGateRollsBack(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	oil := createTestProduct(t, db, "Black Seed Oil", 10.00, 50)
	scarce := createTestProduct(t, db, "Rare Resin", 40.00, 1)

	if _, err := AddToCart(db, user.ID, oil.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := AddToCart(db, user.ID, scarce.ID, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := Checkout(db, user.ID, "1 Herb Lane", "standard", ""); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}

	// Nothing committed: no order, cart intact, stock untouched.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Errorf("expected no order after failed checkout, found %d", orderCount)
	}
	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	if cartCount != 2 {
		t.Errorf("expected cart untouched with 2 lines, found %d", cartCount)
	}
	var reloaded models.Product
	db.First(&reloaded, oil.ID)
	if reloaded.Stock != 50 {
		t.Errorf("expected oil stock unchanged at 50, got %d", reloaded.Stock)
	}
}

func TestGetOrderOwnership(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	mallory := createTestUser(t, db, "mallory@example.com")
	oil := createTestProduct(t, db, "Black Seed Oil", 10.00, 50)

	if _, err := AddToCart(db, alice.ID, oil.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, alice.ID, "1 Herb Lane", "standard", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := GetOrder(db, mallory.ID, order.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if _, err := GetOrder(db, alice.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReorderMergesIntoCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	oil := createTestProduct(t, db, "Black Seed Oil", 10.00, 50)
	honey := createTestProduct(t, db, "Sidr Honey", 5.00, 30)

	if _, err := AddToCart(db, user.ID, oil.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := AddToCart(db, user.ID, honey.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, user.ID, "1 Herb Lane", "standard", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// Pre-existing line for oil merges with the historical quantity.
	if _, err := AddToCart(db, user.ID, oil.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Reorder(db, user.ID, order.ID); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	summary, err := CartTotals(db, user.ID)
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	quantities := map[uint]int{}
	for _, line := range summary.Lines {
		quantities[line.Item.ProductID] = line.Item.Quantity
	}
	if quantities[oil.ID] != 3 {
		t.Errorf("expected oil quantity 1+2=3, got %d", quantities[oil.ID])
	}
	if quantities[honey.ID] != 1 {
		t.Errorf("expected honey quantity 1, got %d", quantities[honey.ID])
	}
}

func TestReorderOwnership(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	mallory := createTestUser(t, db, "mallory@example.com")
	oil := createTestProduct(t, db, "Black Seed Oil", 10.00, 50)

	if _, err := AddToCart(db, alice.ID, oil.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := Checkout(db, alice.ID, "1 Herb Lane", "standard", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := Reorder(db, mallory.ID, order.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", mallory.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no cart lines for the rejected account, found %d", count)
	}
}
