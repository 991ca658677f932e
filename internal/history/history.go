// Package history предоставляет историю заказов пользователя.
package history

import (
	"github.com/mmeshcher/furnifindr/internal/model"
)

// Book хранит заказы пользователя, новые — в начале списка.
// Извлечением истории из внешнего хранилища пакет не занимается:
// состояние живёт только в рамках сессии.
type Book struct {
	orders []model.Order
}

// New создаёт историю с предзаполненными заказами.
func New(seed []model.Order) *Book {
	return &Book{orders: append([]model.Order(nil), seed...)}
}

// List возвращает заказы от новых к старым.
func (b *Book) List() []model.Order {
	return append([]model.Order(nil), b.orders...)
}

// Get возвращает заказ по идентификатору.
func (b *Book) Get(id string) (model.Order, bool) {
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// Append добавляет размещённый заказ в начало истории.
func (b *Book) Append(order model.Order) {
	b.orders = append([]model.Order{order}, b.orders...)
}

// Len возвращает число заказов в истории.
func (b *Book) Len() int {
	return len(b.orders)
}
