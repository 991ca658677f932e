package wishlist

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/cart"
	"github.com/mmeshcher/furnifindr/internal/model"
)

func TestSaveIsIdempotent(t *testing.T) {
	w := New()
	w.Save("1")
	w.Save("1")

	if w.Len() != 1 {
		t.Fatalf("Len() = %d after duplicate save, want 1", w.Len())
	}
}

func TestSavePreservesInsertionOrder(t *testing.T) {
	w := New()
	w.Save("3")
	w.Save("1")
	w.Save("2")

	items := w.Items()
	want := []string{"3", "1", "2"}
	for i, id := range want {
		if items[i] != id {
			t.Fatalf("Items() = %v, want %v", items, want)
		}
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	w := New()
	w.Save("1")
	w.Remove("ghost")

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}

	w.Remove("1")
	if w.Contains("1") {
		t.Fatalf("product still present after remove")
	}
}

func TestMoveToCart(t *testing.T) {
	w := New()
	c := cart.New()
	p := model.Product{ID: "1", Name: "Modern Lounge Chair", Price: decimal.RequireFromString("249.99")}

	w.Save("1")

	if err := w.MoveToCart(c, p); err != nil {
		t.Fatalf("MoveToCart error: %v", err)
	}
	if w.Contains("1") {
		t.Fatalf("product still in wishlist after move")
	}
	if q := c.Quantity("1"); q != 1 {
		t.Fatalf("cart quantity = %d, want 1", q)
	}
}

func TestMoveToCartNotSaved(t *testing.T) {
	w := New()
	c := cart.New()
	p := model.Product{ID: "1", Name: "Modern Lounge Chair", Price: decimal.RequireFromString("249.99")}

	err := w.MoveToCart(c, p)
	if !errors.Is(err, ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("cart must stay untouched, got %d lines", c.Len())
	}
}
