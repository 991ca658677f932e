// Package catalog предоставляет неизменяемый каталог товаров и его фильтрацию.
package catalog

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/model"
)

// TagFeatured — производный тег товара, участвующего в подборке "Best Selling".
const TagFeatured = "featured"

var (
	// ErrDuplicateProduct возвращается при загрузке каталога с повторяющимся идентификатором товара.
	ErrDuplicateProduct = errors.New("duplicate product id")
	// ErrInvalidProduct возвращается, когда товар не проходит нормализацию при загрузке.
	ErrInvalidProduct = errors.New("invalid product")
)

// Store хранит загруженный каталог. После создания не изменяется,
// все методы возвращают копии срезов.
type Store struct {
	products   []model.Product
	byID       map[string]int
	categories []model.Category
	reviews    map[string][]model.Review
}

// Load создаёт каталог из переданных товаров и категорий.
// Нормализация выполняется один раз здесь, а не в местах использования:
// отсутствующие цвета и галерея становятся пустыми срезами, цена не может
// быть отрицательной, рейтинг должен лежать в диапазоне [0,5].
func Load(products []model.Product, categories []model.Category, reviews []model.Review) (*Store, error) {
	s := &Store{
		products:   make([]model.Product, 0, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: append([]model.Category(nil), categories...),
		reviews:    make(map[string][]model.Review),
	}

	maxRating := decimal.NewFromInt(5)

	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			return nil, errors.Wrapf(ErrInvalidProduct, "product %q: id and name are required", p.ID)
		}
		if _, ok := s.byID[p.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateProduct, "product %q", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidProduct, "product %q: negative price %s", p.ID, p.Price)
		}
		if p.Rating.IsNegative() || p.Rating.GreaterThan(maxRating) {
			return nil, errors.Wrapf(ErrInvalidProduct, "product %q: rating %s out of range", p.ID, p.Rating)
		}

		if p.Colors == nil {
			p.Colors = []string{}
		}
		if p.Gallery == nil {
			p.Gallery = []string{}
		}

		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	for _, r := range reviews {
		if _, ok := s.byID[r.ProductID]; !ok {
			return nil, errors.Wrapf(ErrInvalidProduct, "review %q references unknown product %q", r.ID, r.ProductID)
		}
		s.reviews[r.ProductID] = append(s.reviews[r.ProductID], r)
	}

	return s, nil
}

// Products возвращает все товары в порядке каталога.
func (s *Store) Products() []model.Product {
	return append([]model.Product(nil), s.products...)
}

// Categories возвращает список категорий.
func (s *Store) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

// ProductByID возвращает товар по идентификатору.
func (s *Store) ProductByID(id string) (model.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// Featured возвращает товары подборки "Best Selling" в порядке каталога.
func (s *Store) Featured() []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ReviewsFor возвращает отзывы о товаре в порядке добавления.
func (s *Store) ReviewsFor(productID string) []model.Review {
	return append([]model.Review(nil), s.reviews[productID]...)
}

// Filter возвращает товары, удовлетворяющие всем активным условиям:
// подстрока запроса в названии (без учёта регистра), категория и
// пересечение производных тегов товара с activeTags. Пустой запрос,
// пустая категория и пустой набор тегов условиями не являются.
// Порядок каталога сохраняется, пустой результат — корректный ответ.
func (s *Store) Filter(query, categoryID string, activeTags []string) []model.Product {
	q := strings.ToLower(query)

	out := []model.Product{}
	for _, p := range s.products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		if len(activeTags) > 0 && !tagsMatch(p, activeTags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func tagsMatch(p model.Product, activeTags []string) bool {
	for _, tag := range activeTags {
		if tag == TagFeatured && p.Featured {
			return true
		}
	}
	return false
}
