// Package pricing рассчитывает итоговые суммы заказа.
package pricing

import "github.com/shopspring/decimal"

// Engine рассчитывает налог, скидку и итог по сумме корзины.
// Ставка налога и стоимость доставки фиксируются при создании из конфигурации.
type Engine struct {
	taxRate     decimal.Decimal
	shippingFee decimal.Decimal
}

// NewEngine создаёт калькулятор с указанной налоговой ставкой и фиксированной
// стоимостью доставки. Доставка не зависит от веса или расстояния.
func NewEngine(taxRate, shippingFee decimal.Decimal) Engine {
	return Engine{taxRate: taxRate, shippingFee: shippingFee}
}

// Quote содержит разбивку стоимости заказа. Все значения точные:
// округление до двух знаков происходит только при форматировании.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ShippingFee возвращает фиксированную стоимость доставки.
func (e Engine) ShippingFee() decimal.Decimal {
	return e.shippingFee
}

// Quote рассчитывает разбивку: tax = subtotal × taxRate,
// total = subtotal + shipping + tax − discount. Скидка ограничивается
// суммой корзины, поэтому сама по себе не может увести итог в минус.
func (e Engine) Quote(subtotal, discount decimal.Decimal) Quote {
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	tax := subtotal.Mul(e.taxRate)

	return Quote{
		Subtotal: subtotal,
		Shipping: e.shippingFee,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(e.shippingFee).Add(tax).Sub(discount),
	}
}

// Format выводит сумму с двумя знаками после запятой для отображения.
// Округление — половина от нуля, внутренние значения остаются точными.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
