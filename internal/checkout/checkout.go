// Package checkout реализует оформление заказа: выбор адреса и способа
// оплаты, применение купона и размещение заказа.
package checkout

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/cart"
	"github.com/mmeshcher/furnifindr/internal/coupon"
	"github.com/mmeshcher/furnifindr/internal/model"
	"github.com/mmeshcher/furnifindr/internal/pricing"
)

// State описывает состояние оформления заказа.
type State string

const (
	// StateSelecting — выбор адреса, способа оплаты и купона.
	StateSelecting State = "SELECTING"
	// StatePlaced — заказ размещён, состояние терминальное.
	StatePlaced State = "PLACED"
)

var (
	// ErrEmptyCart возвращается при попытке начать оформление с пустой корзиной.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingAddress возвращается из Place, когда адрес доставки не выбран.
	// Проверяется раньше способа оплаты.
	ErrMissingAddress = errors.New("no shipping address selected")
	// ErrMissingPayment возвращается из Place, когда способ оплаты не выбран.
	ErrMissingPayment = errors.New("no payment method selected")
	// ErrAlreadyPlaced возвращается при повторном Place: размещение терминально.
	ErrAlreadyPlaced = errors.New("order already placed")
)

// HistorySink принимает размещённый заказ в историю заказов.
type HistorySink interface {
	Append(order model.Order)
}

// Flow ведёт оформление одного заказа. Ошибки валидации не меняют
// состояние: после любой из них можно исправить выбор и повторить Place.
type Flow struct {
	cart    *cart.Cart
	engine  pricing.Engine
	coupons *coupon.Resolver
	history HistorySink

	addresses []model.Address
	payments  []model.PaymentMethod

	addressID    string
	paymentID    string
	couponCode   string
	discountRate decimal.Decimal

	state State
}

// NewFlow создаёт оформление заказа по текущей корзине и фиксированным
// спискам адресов и способов оплаты. Адрес и способ оплаты, помеченные
// по умолчанию, выбираются сразу, как на исходном экране оформления.
func NewFlow(c *cart.Cart, engine pricing.Engine, coupons *coupon.Resolver, history HistorySink, addresses []model.Address, payments []model.PaymentMethod) *Flow {
	f := &Flow{
		cart:      c,
		engine:    engine,
		coupons:   coupons,
		history:   history,
		addresses: append([]model.Address(nil), addresses...),
		payments:  append([]model.PaymentMethod(nil), payments...),
		state:     StateSelecting,
	}

	for _, a := range f.addresses {
		if a.IsDefault {
			f.addressID = a.ID
			break
		}
	}
	for _, p := range f.payments {
		if p.IsDefault {
			f.paymentID = p.ID
			break
		}
	}

	return f
}

// State возвращает текущее состояние оформления.
func (f *Flow) State() State {
	return f.state
}

// Addresses возвращает список адресов-кандидатов.
func (f *Flow) Addresses() []model.Address {
	return append([]model.Address(nil), f.addresses...)
}

// Payments возвращает список способов оплаты.
func (f *Flow) Payments() []model.PaymentMethod {
	return append([]model.PaymentMethod(nil), f.payments...)
}

// SelectedAddress возвращает идентификатор выбранного адреса, пустую строку
// если адрес не выбран.
func (f *Flow) SelectedAddress() string {
	return f.addressID
}

// SelectedPayment возвращает идентификатор выбранного способа оплаты.
func (f *Flow) SelectedPayment() string {
	return f.paymentID
}

// SelectAddress выбирает один адрес из списка кандидатов. Неизвестный
// идентификатор не меняет выбор.
func (f *Flow) SelectAddress(id string) {
	for _, a := range f.addresses {
		if a.ID == id {
			f.addressID = id
			return
		}
	}
}

// SelectPayment выбирает один способ оплаты из списка кандидатов.
// Неизвестный идентификатор не меняет выбор.
func (f *Flow) SelectPayment(id string) {
	for _, p := range f.payments {
		if p.ID == id {
			f.paymentID = id
			return
		}
	}
}

// ApplyCoupon применяет купон к заказу. Неизвестный код сбрасывает ранее
// применённую скидку и возвращает coupon.ErrInvalidCoupon: скидки не
// складываются, последнее корректное состояние не сохраняется.
func (f *Flow) ApplyCoupon(code string) error {
	rate, err := f.coupons.Resolve(code)
	if err != nil {
		f.couponCode = ""
		f.discountRate = decimal.Zero
		return err
	}

	f.couponCode = code
	f.discountRate = rate
	return nil
}

// CouponCode возвращает код применённого купона, пустую строку без купона.
func (f *Flow) CouponCode() string {
	return f.couponCode
}

// Quote возвращает текущую разбивку стоимости заказа: скидка считается
// от текущей суммы корзины по ставке применённого купона.
func (f *Flow) Quote() pricing.Quote {
	subtotal := f.cart.Subtotal()
	discount := subtotal.Mul(f.discountRate)
	return f.engine.Quote(subtotal, discount)
}

// Place выполняет проверки и размещает заказ. Сначала проверяется адрес,
// затем способ оплаты; обе проверки независимы. При успехе создаётся
// неизменяемый снимок заказа, корзина очищается, заказ попадает в историю,
// а оформление становится терминальным.
func (f *Flow) Place() (*model.Order, error) {
	if f.state == StatePlaced {
		return nil, ErrAlreadyPlaced
	}
	if f.addressID == "" {
		return nil, ErrMissingAddress
	}
	if f.paymentID == "" {
		return nil, ErrMissingPayment
	}

	now := time.Now()
	q := f.Quote()
	id := uuid.New()

	order := model.Order{
		ID:                id.String(),
		Number:            orderNumber(id),
		Items:             f.cart.Items(),
		ShippingAddressID: f.addressID,
		PaymentMethodID:   f.paymentID,
		CouponCode:        f.couponCode,
		Subtotal:          q.Subtotal,
		Shipping:          q.Shipping,
		Tax:               q.Tax,
		Discount:          q.Discount,
		Total:             q.Total,
		Status:            model.OrderStatusProcessing,
		PlacedAt:          now,
		Timeline:          initialTimeline(now),
	}

	f.cart.Clear()
	f.state = StatePlaced

	if f.history != nil {
		f.history.Append(order)
	}

	return &order, nil
}

// orderNumber выводит короткий номер заказа из его идентификатора:
// заказы, размещённые в одну секунду, получают разные номера.
func orderNumber(id uuid.UUID) string {
	return fmt.Sprintf("%06d", binary.BigEndian.Uint32(id[:4])%1000000)
}

func initialTimeline(placedAt time.Time) []model.TimelineStep {
	return []model.TimelineStep{
		{
			Title:       "Order Placed",
			Description: "Your order has been received and is being processed.",
			Timestamp:   placedAt,
			Completed:   true,
		},
		{Title: "Order Processed"},
		{Title: "Order Shipped"},
		{Title: "Out for Delivery"},
		{Title: "Delivered"},
	}
}
