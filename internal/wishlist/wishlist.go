// Package wishlist реализует список отложенных товаров.
package wishlist

import (
	"github.com/go-faster/errors"

	"github.com/mmeshcher/furnifindr/internal/cart"
	"github.com/mmeshcher/furnifindr/internal/model"
)

// ErrNotSaved возвращается из MoveToCart, когда товар не был отложен:
// ни список, ни корзина при этом не меняются.
var ErrNotSaved = errors.New("product is not in the wishlist")

// Wishlist хранит идентификаторы отложенных товаров в порядке добавления.
type Wishlist struct {
	ids []string
}

// New создаёт пустой список отложенного.
func New() *Wishlist {
	return &Wishlist{}
}

// Save откладывает товар. Операция идемпотентна: повторное сохранение
// уже отложенного товара не создаёт дубликат.
func (w *Wishlist) Save(productID string) {
	if w.Contains(productID) {
		return
	}
	w.ids = append(w.ids, productID)
}

// Remove удаляет товар из отложенного, для отсутствующего товара — no-op.
func (w *Wishlist) Remove(productID string) {
	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return
		}
	}
}

// Contains сообщает, отложен ли товар.
func (w *Wishlist) Contains(productID string) bool {
	for _, id := range w.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// Items возвращает идентификаторы отложенных товаров в порядке добавления.
func (w *Wishlist) Items() []string {
	return append([]string(nil), w.ids...)
}

// Len возвращает число отложенных товаров.
func (w *Wishlist) Len() int {
	return len(w.ids)
}

// MoveToCart переносит отложенный товар в корзину: удаляет его из списка
// и создаёт позицию корзины с количеством 1. Если товар не был отложен,
// возвращается ErrNotSaved и ни одна из сторон не меняется.
func (w *Wishlist) MoveToCart(c *cart.Cart, p model.Product) error {
	if !w.Contains(p.ID) {
		return ErrNotSaved
	}
	w.Remove(p.ID)
	c.Add(p)
	return nil
}
