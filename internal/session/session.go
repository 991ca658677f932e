// Package session объединяет состояние покупательской сессии: корзину,
// отложенное, историю заказов и профиль пользователя.
package session

import (
	"go.uber.org/zap"

	"github.com/mmeshcher/furnifindr/internal/cart"
	"github.com/mmeshcher/furnifindr/internal/catalog"
	"github.com/mmeshcher/furnifindr/internal/checkout"
	"github.com/mmeshcher/furnifindr/internal/coupon"
	"github.com/mmeshcher/furnifindr/internal/history"
	"github.com/mmeshcher/furnifindr/internal/model"
	"github.com/mmeshcher/furnifindr/internal/pricing"
	"github.com/mmeshcher/furnifindr/internal/wishlist"
)

// Session — явный объект состояния, которым владеет вызывающая сторона.
// Создаётся при входе пользователя, сбрасывается при выходе; глобального
// синглтона нет. Все операции синхронны и вызываются из одного потока
// управления — цикла событий презентационного слоя.
type Session struct {
	logger  *zap.Logger
	catalog *catalog.Store
	engine  pricing.Engine
	coupons *coupon.Resolver

	user     model.User
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	history  *history.Book
}

// New создаёт сессию с пустой корзиной и отложенным.
func New(logger *zap.Logger, store *catalog.Store, engine pricing.Engine, coupons *coupon.Resolver) *Session {
	return &Session{
		logger:   logger,
		catalog:  store,
		engine:   engine,
		coupons:  coupons,
		user:     SeedUser(),
		cart:     cart.New(),
		wishlist: wishlist.New(),
		history:  history.New(history.SeedOrders()),
	}
}

// NewDemo создаёт сессию с демо-наполнением исходного приложения:
// два товара в корзине и три отложенных.
func NewDemo(logger *zap.Logger, store *catalog.Store, engine pricing.Engine, coupons *coupon.Resolver) *Session {
	s := New(logger, store, engine, coupons)
	s.AddToCart("1")
	s.AddToCart("2")
	s.SaveToWishlist("3")
	s.SaveToWishlist("6")
	s.SaveToWishlist("8")
	return s
}

// Catalog возвращает каталог сессии.
func (s *Session) Catalog() *catalog.Store { return s.catalog }

// Cart возвращает корзину сессии.
func (s *Session) Cart() *cart.Cart { return s.cart }

// Wishlist возвращает список отложенных товаров.
func (s *Session) Wishlist() *wishlist.Wishlist { return s.wishlist }

// History возвращает историю заказов.
func (s *Session) History() *history.Book { return s.history }

// User возвращает профиль пользователя.
func (s *Session) User() model.User { return s.user }

// Pricing возвращает калькулятор стоимости сессии.
func (s *Session) Pricing() pricing.Engine { return s.engine }

// AddToCart добавляет товар каталога в корзину. Неизвестный идентификатор
// игнорируется: ошибкой для покупателя это не является.
func (s *Session) AddToCart(productID string) {
	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		s.logger.Warn("add to cart: unknown product", zap.String("product_id", productID))
		return
	}
	s.cart.Add(p)
	s.logger.Info("added to cart", zap.String("product_id", productID), zap.Int("quantity", s.cart.Quantity(productID)))
}

// SaveToWishlist откладывает товар каталога.
func (s *Session) SaveToWishlist(productID string) {
	if _, ok := s.catalog.ProductByID(productID); !ok {
		s.logger.Warn("save to wishlist: unknown product", zap.String("product_id", productID))
		return
	}
	s.wishlist.Save(productID)
	s.logger.Info("saved to wishlist", zap.String("product_id", productID))
}

// MoveToCart переносит отложенный товар в корзину.
func (s *Session) MoveToCart(productID string) error {
	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return wishlist.ErrNotSaved
	}

	if err := s.wishlist.MoveToCart(s.cart, p); err != nil {
		return err
	}
	s.logger.Info("moved to cart", zap.String("product_id", productID))
	return nil
}

// BeginCheckout начинает оформление заказа по текущей корзине.
// Пустую корзину оформить нельзя.
func (s *Session) BeginCheckout() (*checkout.Flow, error) {
	if s.cart.Len() == 0 {
		return nil, checkout.ErrEmptyCart
	}
	return checkout.NewFlow(s.cart, s.engine, s.coupons, s.history, s.user.Addresses, s.user.PaymentMethods), nil
}

// Reset возвращает сессию к состоянию на момент входа: пустые корзина и
// отложенное, история — заново из предзаполненных данных.
func (s *Session) Reset() {
	s.cart = cart.New()
	s.wishlist = wishlist.New()
	s.history = history.New(history.SeedOrders())
	s.logger.Info("session reset")
}
