// Package cart реализует модель корзины покупателя.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/model"
)

// Cart хранит упорядоченный список позиций корзины.
// Все операции — тотальные функции над текущим состоянием: неизвестный
// идентификатор товара означает "не найдено" и операция ничего не меняет.
type Cart struct {
	items []model.LineItem
}

// New создаёт пустую корзину.
func New() *Cart {
	return &Cart{}
}

// Add добавляет товар в корзину. Для нового товара создаётся позиция
// с количеством 1, для уже добавленного — увеличивается количество,
// корзина никогда не содержит двух позиций одного товара.
func (c *Cart) Add(p model.Product) {
	if i, ok := c.find(p.ID); ok {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, model.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// Increment увеличивает количество существующей позиции на единицу.
// Позиция не создаётся: добавление товара — отдельная явная операция Add.
func (c *Cart) Increment(productID string) {
	if i, ok := c.find(productID); ok {
		c.items[i].Quantity++
	}
}

// Decrement уменьшает количество позиции на единицу, но не ниже 1.
// При количестве 1 ничего не происходит, позиция не удаляется.
func (c *Cart) Decrement(productID string) {
	if i, ok := c.find(productID); ok && c.items[i].Quantity > 1 {
		c.items[i].Quantity--
	}
}

// Remove безусловно удаляет позицию из корзины. Подтверждение удаления —
// забота вызывающей стороны, модель его не запрашивает.
func (c *Cart) Remove(productID string) {
	if i, ok := c.find(productID); ok {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Contains сообщает, есть ли товар в корзине.
func (c *Cart) Contains(productID string) bool {
	_, ok := c.find(productID)
	return ok
}

// Quantity возвращает количество товара в корзине, 0 для отсутствующего.
func (c *Cart) Quantity(productID string) int {
	if i, ok := c.find(productID); ok {
		return c.items[i].Quantity
	}
	return 0
}

// Subtotal возвращает сумму позиций корзины до доставки, налога и скидки.
// Для пустой корзины возвращается 0.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range c.items {
		sum = sum.Add(li.Total())
	}
	return sum
}

// Items возвращает копию позиций корзины в порядке добавления.
func (c *Cart) Items() []model.LineItem {
	return append([]model.LineItem(nil), c.items...)
}

// Len возвращает число позиций корзины.
func (c *Cart) Len() int {
	return len(c.items)
}

// Clear опустошает корзину. Вызывается при оформлении заказа,
// когда позиции уже скопированы в снимок заказа.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) find(productID string) (int, bool) {
	for i, li := range c.items {
		if li.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}
