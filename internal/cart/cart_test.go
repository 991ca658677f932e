package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/model"
)

func product(id, name, price string) model.Product {
	return model.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestSubtotalEmptyCart(t *testing.T) {
	c := New()

	if !c.Subtotal().IsZero() {
		t.Fatalf("Subtotal() = %s, want 0", c.Subtotal())
	}
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
}

func TestSubtotalMatchesLineItems(t *testing.T) {
	c := New()
	c.Add(product("1", "Modern Lounge Chair", "249.99"))
	c.Add(product("2", "Minimalist Coffee Table", "199.99"))
	c.Increment("1")
	c.Increment("1")
	c.Decrement("1")

	// 2 × 249.99 + 1 × 199.99
	want := decimal.RequireFromString("699.97")
	if !c.Subtotal().Equal(want) {
		t.Fatalf("Subtotal() = %s, want %s", c.Subtotal(), want)
	}

	// Инвариант: сумма всегда равна Σ unitPrice × quantity по текущим позициям.
	sum := decimal.Zero
	for _, li := range c.Items() {
		sum = sum.Add(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	if !c.Subtotal().Equal(sum) {
		t.Fatalf("Subtotal() = %s, recomputed = %s", c.Subtotal(), sum)
	}
}

func TestAddExistingLineBumpsQuantity(t *testing.T) {
	c := New()
	p := product("1", "Modern Lounge Chair", "249.99")
	c.Add(p)
	c.Add(p)

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (no duplicate lines)", c.Len())
	}
	if q := c.Quantity("1"); q != 2 {
		t.Fatalf("Quantity(1) = %d, want 2", q)
	}
}

func TestIncrementAbsentIsNoop(t *testing.T) {
	c := New()
	c.Increment("ghost")

	if c.Len() != 0 {
		t.Fatalf("Increment must never create a line, got %d lines", c.Len())
	}
}

func TestDecrementFloorsAtOne(t *testing.T) {
	c := New()
	c.Add(product("1", "Modern Lounge Chair", "249.99"))

	c.Decrement("1")
	if q := c.Quantity("1"); q != 1 {
		t.Fatalf("Quantity(1) = %d after decrement at 1, want 1", q)
	}

	c.Increment("1")
	c.Decrement("1")
	if q := c.Quantity("1"); q != 1 {
		t.Fatalf("Quantity(1) = %d after increment+decrement, want 1", q)
	}
	if !c.Contains("1") {
		t.Fatalf("line must survive decrement")
	}
}

func TestRemoveBehavesLikeNeverAdded(t *testing.T) {
	c := New()
	c.Add(product("1", "Modern Lounge Chair", "249.99"))
	c.Add(product("2", "Minimalist Coffee Table", "199.99"))

	c.Remove("1")

	if c.Contains("1") {
		t.Fatalf("removed product still present")
	}
	if q := c.Quantity("1"); q != 0 {
		t.Fatalf("Quantity(1) = %d, want 0", q)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	// Повторное удаление и удаление неизвестного товара — no-op.
	c.Remove("1")
	c.Remove("ghost")
	if c.Len() != 1 {
		t.Fatalf("Len() = %d after noop removes, want 1", c.Len())
	}
}

func TestItemsPreserveOrderAndAreACopy(t *testing.T) {
	c := New()
	c.Add(product("2", "Minimalist Coffee Table", "199.99"))
	c.Add(product("1", "Modern Lounge Chair", "249.99"))

	items := c.Items()
	if items[0].ProductID != "2" || items[1].ProductID != "1" {
		t.Fatalf("items out of insertion order: %+v", items)
	}

	items[0].Quantity = 99
	if c.Quantity("2") != 1 {
		t.Fatalf("mutating the snapshot must not affect the cart")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(product("1", "Modern Lounge Chair", "249.99"))
	c.Clear()

	if c.Len() != 0 || !c.Subtotal().IsZero() {
		t.Fatalf("cart not empty after Clear: len=%d subtotal=%s", c.Len(), c.Subtotal())
	}
}
