package checkout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/furnifindr/internal/cart"
	"github.com/mmeshcher/furnifindr/internal/coupon"
	"github.com/mmeshcher/furnifindr/internal/model"
	"github.com/mmeshcher/furnifindr/internal/pricing"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type recordingSink struct {
	orders []model.Order
}

func (s *recordingSink) Append(order model.Order) {
	s.orders = append(s.orders, order)
}

func referenceCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	c.Add(model.Product{ID: "1", Name: "Modern Lounge Chair", Price: dec("249.99")})
	c.Add(model.Product{ID: "2", Name: "Minimalist Coffee Table", Price: dec("199.99")})
	return c
}

func referenceAddresses() []model.Address {
	return []model.Address{
		{ID: "1", Name: "Home", IsDefault: true},
		{ID: "2", Name: "Work"},
	}
}

func referencePayments() []model.PaymentMethod {
	return []model.PaymentMethod{
		{ID: "1", Type: "visa", Last4: "4242", IsDefault: true},
		{ID: "2", Type: "mastercard", Last4: "8888"},
	}
}

func newFlow(t *testing.T, c *cart.Cart, sink HistorySink, addresses []model.Address, payments []model.PaymentMethod) *Flow {
	t.Helper()
	resolver, err := coupon.ParseTable("WELCOME20:0.20")
	require.NoError(t, err)
	engine := pricing.NewEngine(dec("0.08"), dec("15.00"))
	return NewFlow(c, engine, resolver, sink, addresses, payments)
}

func TestNewFlowPreselectsDefaults(t *testing.T) {
	f := newFlow(t, referenceCart(t), nil, referenceAddresses(), referencePayments())

	assert.Equal(t, "1", f.SelectedAddress())
	assert.Equal(t, "1", f.SelectedPayment())
	assert.Equal(t, StateSelecting, f.State())
}

func TestSelectUnknownIDKeepsSelection(t *testing.T) {
	f := newFlow(t, referenceCart(t), nil, referenceAddresses(), referencePayments())

	f.SelectAddress("2")
	f.SelectAddress("ghost")
	assert.Equal(t, "2", f.SelectedAddress())

	f.SelectPayment("ghost")
	assert.Equal(t, "1", f.SelectedPayment())
}

func TestApplyCouponReferenceDiscount(t *testing.T) {
	f := newFlow(t, referenceCart(t), nil, referenceAddresses(), referencePayments())

	require.NoError(t, f.ApplyCoupon("welcome20"))

	q := f.Quote()
	assert.True(t, q.Subtotal.Equal(dec("449.98")), "subtotal = %s", q.Subtotal)
	assert.True(t, q.Discount.Equal(dec("449.98").Mul(dec("0.20"))), "discount = %s", q.Discount)
}

func TestApplyInvalidCouponClearsDiscount(t *testing.T) {
	f := newFlow(t, referenceCart(t), nil, referenceAddresses(), referencePayments())

	require.NoError(t, f.ApplyCoupon("WELCOME20"))
	require.False(t, f.Quote().Discount.IsZero())

	err := f.ApplyCoupon("EXPIRED99")
	require.ErrorIs(t, err, coupon.ErrInvalidCoupon)

	assert.True(t, f.Quote().Discount.IsZero(), "discount must reset to 0")
	assert.Empty(t, f.CouponCode())
}

func TestPlaceMissingAddressCheckedFirst(t *testing.T) {
	// Ни одна запись не помечена по умолчанию: выбор обязан сделать пользователь.
	addresses := []model.Address{{ID: "1", Name: "Home"}}
	payments := []model.PaymentMethod{{ID: "1", Type: "visa", Last4: "4242"}}

	f := newFlow(t, referenceCart(t), nil, addresses, payments)
	f.SelectPayment("1")

	_, err := f.Place()
	require.ErrorIs(t, err, ErrMissingAddress)
	assert.Equal(t, StateSelecting, f.State())
}

func TestPlaceMissingPayment(t *testing.T) {
	addresses := []model.Address{{ID: "1", Name: "Home"}}
	payments := []model.PaymentMethod{{ID: "1", Type: "visa", Last4: "4242"}}

	f := newFlow(t, referenceCart(t), nil, addresses, payments)
	f.SelectAddress("1")

	_, err := f.Place()
	require.ErrorIs(t, err, ErrMissingPayment)

	// Ошибка не терминальна: после выбора оплаты заказ размещается.
	f.SelectPayment("1")
	_, err = f.Place()
	require.NoError(t, err)
}

func TestPlaceProducesConsistentOrder(t *testing.T) {
	c := referenceCart(t)
	sink := &recordingSink{}
	f := newFlow(t, c, sink, referenceAddresses(), referencePayments())

	require.NoError(t, f.ApplyCoupon("WELCOME20"))

	// Независимый расчёт той же корзины тем же калькулятором.
	engine := pricing.NewEngine(dec("0.08"), dec("15.00"))
	subtotal := c.Subtotal()
	wantQuote := engine.Quote(subtotal, subtotal.Mul(dec("0.20")))

	order, err := f.Place()
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(wantQuote.Total), "order total %s, want %s", order.Total, wantQuote.Total)
	assert.True(t, order.Discount.Equal(wantQuote.Discount))
	assert.True(t, order.Tax.Equal(wantQuote.Tax))
	assert.Equal(t, "1", order.ShippingAddressID)
	assert.Equal(t, "1", order.PaymentMethodID)
	assert.Equal(t, model.OrderStatusProcessing, order.Status)
	assert.NotEmpty(t, order.ID)
	require.Len(t, order.Items, 2)

	// Корзина очищена: заказ владеет собственной копией позиций.
	assert.Equal(t, 0, c.Len())
	assert.Len(t, order.Items, 2)

	// Заказ попал в историю.
	require.Len(t, sink.orders, 1)
	assert.Equal(t, order.ID, sink.orders[0].ID)

	// Первый шаг таймлайна завершён, остальные — нет.
	require.NotEmpty(t, order.Timeline)
	assert.True(t, order.Timeline[0].Completed)
	for _, step := range order.Timeline[1:] {
		assert.False(t, step.Completed)
	}
}

func TestOrderNumberDerivedFromID(t *testing.T) {
	f := newFlow(t, referenceCart(t), nil, referenceAddresses(), referencePayments())

	order, err := f.Place()
	require.NoError(t, err)

	require.Regexp(t, `^\d{6}$`, order.Number)

	// Номер — функция идентификатора, а не времени размещения: два заказа
	// в одну секунду не совпадают номерами.
	id, err := uuid.Parse(order.ID)
	require.NoError(t, err)
	assert.Equal(t, orderNumber(id), order.Number)
}

func TestPlaceIsTerminal(t *testing.T) {
	f := newFlow(t, referenceCart(t), nil, referenceAddresses(), referencePayments())

	_, err := f.Place()
	require.NoError(t, err)
	assert.Equal(t, StatePlaced, f.State())

	_, err = f.Place()
	require.ErrorIs(t, err, ErrAlreadyPlaced)
}

func TestOrderSnapshotIsImmutable(t *testing.T) {
	c := referenceCart(t)
	f := newFlow(t, c, nil, referenceAddresses(), referencePayments())

	order, err := f.Place()
	require.NoError(t, err)

	// Новая корзина и новые операции не влияют на размещённый заказ.
	c.Add(model.Product{ID: "9", Name: "Modern Sectional Sofa", Price: dec("899.99")})
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Subtotal.Equal(dec("449.98")))
}
