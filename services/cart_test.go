package services

import (
	"errors"
	"testing"

	"github.com/siraj-eng/ShifaaEcommerce/models"
)

func TestAddToCartAccumulates(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	product := createTestProduct(t, db, "Black Seed Oil", 14.99, 50)

	if _, err := AddToCart(db, user.ID, product.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := AddToCart(db, user.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if item.Quantity != 5 {
		t.Errorf("expected accumulated quantity 5, got %d", item.Quantity)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected a single cart line per (user, product), got %d", count)
	}
}

func TestAddToCartValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	product := createTestProduct(t, db, "Black Seed Oil", 14.99, 50)

	inactive := models.Product{Name: "Retired Tonic", Price: 5, Stock: 10, IsActive: false}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("failed to create inactive product: %v", err)
	}

	tests := []struct {
		name      string
		productID uint
		quantity  int
		wantErr   error
	}{
		{"zero quantity", product.ID, 0, ErrBadQuantity},
		{"negative quantity", product.ID, -1, ErrBadQuantity},
		{"unknown product", 9999, 1, ErrNotFound},
		{"inactive product", inactive.ID, 1, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AddToCart(db, user.ID, tt.productID, tt.quantity); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSetQuantity(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	product := createTestProduct(t, db, "Black Seed Oil", 14.99, 50)

	item, err := AddToCart(db, user.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := SetQuantity(db, user.ID, item.ID, 7); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	var stored models.CartItem
	if err := db.First(&stored, item.ID).Error; err != nil {
		t.Fatalf("failed to reload line: %v", err)
	}
	if stored.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", stored.Quantity)
	}

	// Zero or negative deletes the line instead of storing it.
	if err := SetQuantity(db, user.ID, item.ID, 0); err != nil {
		t.Fatalf("set quantity to zero failed: %v", err)
	}
	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected line deleted on zero quantity, found %d lines", count)
	}
}

func TestCartOwnershipChecks(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	mallory := createTestUser(t, db, "mallory@example.com")
	product := createTestProduct(t, db, "Black Seed Oil", 14.99, 50)

	item, err := AddToCart(db, alice.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := SetQuantity(db, mallory.ID, item.ID, 99); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on foreign update, got %v", err)
	}
	if err := RemoveFromCart(db, mallory.ID, item.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on foreign remove, got %v", err)
	}

	// No mutation happened.
	var stored models.CartItem
	if err := db.First(&stored, item.ID).Error; err != nil {
		t.Fatalf("line should still exist: %v", err)
	}
	if stored.Quantity != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", stored.Quantity)
	}
}

func TestCartTotals(t *testing.T) {
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

	summary, err := CartTotals(db, user.ID)
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(summary.Lines))
	}
	if summary.Total != 25.00 {
		t.Errorf("expected total 25.00, got %.2f", summary.Total)
	}
	if summary.Lines[0].Subtotal != 20.00 {
		t.Errorf("expected first subtotal 20.00, got %.2f", summary.Lines[0].Subtotal)
	}
}
