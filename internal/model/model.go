// Package model содержит доменные сущности магазина FurniFindr.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product представляет товар каталога. После загрузки каталога не изменяется.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	Rating      decimal.Decimal
	Colors      []string
	Image       string
	Gallery     []string
	Featured    bool
}

// Category описывает категорию каталога.
type Category struct {
	ID    string
	Name  string
	Image string
}

// Review представляет отзыв покупателя о товаре.
type Review struct {
	ID        string
	ProductID string
	UserName  string
	Rating    int
	Text      string
	Date      string
}

// LineItem описывает позицию корзины или заказа: товар, цена за единицу и количество.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total возвращает стоимость позиции с учётом количества.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Address описывает адрес доставки пользователя.
type Address struct {
	ID        string
	Name      string
	Line1     string
	Line2     string
	City      string
	State     string
	Zip       string
	IsDefault bool
}

// PaymentMethod описывает сохранённый способ оплаты.
type PaymentMethod struct {
	ID         string
	Type       string
	Last4      string
	ExpiryDate string
	IsDefault  bool
}

// User представляет профиль пользователя с адресами и способами оплаты.
type User struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Addresses      []Address
	PaymentMethods []PaymentMethod
}

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusInTransit  OrderStatus = "In Transit"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// TimelineStep описывает один шаг в истории обработки заказа.
// Шаги упорядочены, выполненный шаг не возвращается в невыполненное состояние.
type TimelineStep struct {
	Title       string
	Description string
	Timestamp   time.Time
	Completed   bool
}

// Order представляет размещённый заказ: неизменяемый снимок корзины
// и рассчитанных сумм на момент оформления.
type Order struct {
	ID                string
	Number            string
	Items             []LineItem
	ShippingAddressID string
	PaymentMethodID   string
	CouponCode        string
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	Tax               decimal.Decimal
	Discount          decimal.Decimal
	Total             decimal.Decimal
	Status            OrderStatus
	PlacedAt          time.Time
	Timeline          []TimelineStep
}
