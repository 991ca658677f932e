package history

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/model"
)

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ts(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// SeedOrders возвращает предзаполненную историю заказов демо-пользователя.
// Продвижение статусов здесь статично: таймлайн отражает состояние на момент
// снимка, живого перехода между шагами в системе нет.
func SeedOrders() []model.Order {
	return []model.Order{
		{
			ID:     "order-123456",
			Number: "123456",
			Items: []model.LineItem{
				{ProductID: "1", Name: "Modern Lounge Chair", UnitPrice: amount("249.99"), Quantity: 1},
				{ProductID: "2", Name: "Minimalist Coffee Table", UnitPrice: amount("199.99"), Quantity: 1},
			},
			ShippingAddressID: "1",
			PaymentMethodID:   "1",
			Subtotal:          amount("449.98"),
			Shipping:          amount("15.00"),
			Tax:               amount("36.00"),
			Discount:          amount("0"),
			Total:             amount("500.98"),
			Status:            model.OrderStatusInTransit,
			PlacedAt:          ts(2025, time.May, 23, 10, 30),
			Timeline: []model.TimelineStep{
				{
					Title:       "Order Placed",
					Description: "Your order has been received and is being processed.",
					Timestamp:   ts(2025, time.May, 23, 10, 30),
					Completed:   true,
				},
				{
					Title:       "Order Processed",
					Description: "Your payment has been confirmed and your order is being prepared for shipping.",
					Timestamp:   ts(2025, time.May, 23, 14, 45),
					Completed:   true,
				},
				{
					Title:       "Order Shipped",
					Description: "Your order has been shipped. You can track your package with the tracking number provided.",
					Timestamp:   ts(2025, time.May, 24, 11, 15),
					Completed:   true,
				},
				{
					Title:       "Out for Delivery",
					Description: "Your order is out for delivery and should arrive today.",
					Timestamp:   ts(2025, time.May, 26, 0, 0),
					Completed:   false,
				},
				{
					Title:     "Delivered",
					Timestamp: ts(2025, time.May, 26, 0, 0),
					Completed: false,
				},
			},
		},
		{
			ID:     "order-123455",
			Number: "123455",
			Items: []model.LineItem{
				// Цена на момент покупки, до снижения в каталоге.
				{ProductID: "3", Name: "Scandinavian Sofa", UnitPrice: amount("634.25"), Quantity: 1},
			},
			ShippingAddressID: "1",
			PaymentMethodID:   "1",
			Subtotal:          amount("634.25"),
			Shipping:          amount("15.00"),
			Tax:               amount("50.74"),
			Discount:          amount("0"),
			Total:             amount("699.99"),
			Status:            model.OrderStatusDelivered,
			PlacedAt:          ts(2025, time.April, 15, 9, 0),
			Timeline: []model.TimelineStep{
				{Title: "Order Placed", Timestamp: ts(2025, time.April, 15, 9, 0), Completed: true},
				{Title: "Order Processed", Timestamp: ts(2025, time.April, 15, 13, 10), Completed: true},
				{Title: "Order Shipped", Timestamp: ts(2025, time.April, 16, 10, 0), Completed: true},
				{Title: "Out for Delivery", Timestamp: ts(2025, time.April, 18, 8, 30), Completed: true},
				{Title: "Delivered", Timestamp: ts(2025, time.April, 18, 16, 20), Completed: true},
			},
		},
		{
			ID:     "order-123454",
			Number: "123454",
			Items: []model.LineItem{
				{ProductID: "8", Name: "Pendant Light", UnitPrice: amount("129.99"), Quantity: 2},
				{ProductID: "10", Name: "Bedside Table", UnitPrice: amount("149.99"), Quantity: 1},
			},
			ShippingAddressID: "2",
			PaymentMethodID:   "2",
			Subtotal:          amount("409.97"),
			Shipping:          amount("15.00"),
			Tax:               amount("32.80"),
			Discount:          amount("108.79"),
			Total:             amount("348.98"),
			Status:            model.OrderStatusDelivered,
			PlacedAt:          ts(2025, time.March, 30, 12, 0),
			Timeline: []model.TimelineStep{
				{Title: "Order Placed", Timestamp: ts(2025, time.March, 30, 12, 0), Completed: true},
				{Title: "Order Processed", Timestamp: ts(2025, time.March, 30, 15, 40), Completed: true},
				{Title: "Order Shipped", Timestamp: ts(2025, time.March, 31, 9, 25), Completed: true},
				{Title: "Out for Delivery", Timestamp: ts(2025, time.April, 2, 8, 0), Completed: true},
				{Title: "Delivered", Timestamp: ts(2025, time.April, 2, 14, 5), Completed: true},
			},
		},
	}
}
