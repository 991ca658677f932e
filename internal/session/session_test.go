package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/furnifindr/internal/catalog"
	"github.com/mmeshcher/furnifindr/internal/checkout"
	"github.com/mmeshcher/furnifindr/internal/coupon"
	"github.com/mmeshcher/furnifindr/internal/pricing"
	"github.com/mmeshcher/furnifindr/internal/wishlist"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	resolver, err := coupon.ParseTable("WELCOME20:0.20")
	require.NoError(t, err)
	engine := pricing.NewEngine(decimal.RequireFromString("0.08"), decimal.RequireFromString("15.00"))
	return New(zap.NewNop(), catalog.SeedStore(), engine, resolver)
}

func TestAddToCartUnknownProductIsNoop(t *testing.T) {
	s := newSession(t)

	s.AddToCart("ghost")
	assert.Equal(t, 0, s.Cart().Len())

	s.AddToCart("1")
	assert.Equal(t, 1, s.Cart().Len())
}

func TestMoveToCartThroughSession(t *testing.T) {
	s := newSession(t)
	s.SaveToWishlist("3")

	require.NoError(t, s.MoveToCart("3"))
	assert.False(t, s.Wishlist().Contains("3"))
	assert.Equal(t, 1, s.Cart().Quantity("3"))

	err := s.MoveToCart("3")
	assert.ErrorIs(t, err, wishlist.ErrNotSaved)
}

func TestBeginCheckoutEmptyCart(t *testing.T) {
	s := newSession(t)

	_, err := s.BeginCheckout()
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestBeginCheckoutUsesProfileCandidates(t *testing.T) {
	s := newSession(t)
	s.AddToCart("1")

	flow, err := s.BeginCheckout()
	require.NoError(t, err)

	assert.Len(t, flow.Addresses(), 2)
	assert.Len(t, flow.Payments(), 2)
	// Записи по умолчанию из профиля выбраны сразу.
	assert.Equal(t, "1", flow.SelectedAddress())
	assert.Equal(t, "1", flow.SelectedPayment())
}

func TestPlacedOrderLandsInHistory(t *testing.T) {
	s := newSession(t)
	s.AddToCart("1")

	before := s.History().Len()

	flow, err := s.BeginCheckout()
	require.NoError(t, err)

	order, err := flow.Place()
	require.NoError(t, err)

	assert.Equal(t, before+1, s.History().Len())
	got, ok := s.History().Get(order.ID)
	require.True(t, ok)
	assert.True(t, got.Total.Equal(order.Total))
	assert.Equal(t, 0, s.Cart().Len())
}

func TestNewDemoSeedsCartAndWishlist(t *testing.T) {
	resolver, err := coupon.ParseTable("WELCOME20:0.20")
	require.NoError(t, err)
	engine := pricing.NewEngine(decimal.RequireFromString("0.08"), decimal.RequireFromString("15.00"))

	s := NewDemo(zap.NewNop(), catalog.SeedStore(), engine, resolver)

	assert.Equal(t, 2, s.Cart().Len())
	assert.True(t, s.Cart().Subtotal().Equal(decimal.RequireFromString("449.98")))
	assert.Equal(t, 3, s.Wishlist().Len())
}

func TestReset(t *testing.T) {
	s := newSession(t)
	s.AddToCart("1")
	s.SaveToWishlist("3")

	s.Reset()

	assert.Equal(t, 0, s.Cart().Len())
	assert.Equal(t, 0, s.Wishlist().Len())
	assert.Equal(t, 3, s.History().Len())
}
