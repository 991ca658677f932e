// Package coupon реализует поиск купонов по коду.
package coupon

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCoupon возвращается для неизвестного кода купона.
	ErrInvalidCoupon = errors.New("invalid coupon code")
	// ErrInvalidRate возвращается при построении таблицы со ставкой вне диапазона (0,1].
	ErrInvalidRate = errors.New("coupon rate out of range")
)

// Resolver сопоставляет код купона со ставкой скидки.
// Неизвестный код — явная ошибка, а не пустая скидка: вызывающая сторона
// обязана сбросить ранее применённую скидку.
type Resolver struct {
	rates map[string]decimal.Decimal
}

// New создаёт резолвер по таблице код → ставка. Коды приводятся
// к верхнему регистру, ставка должна лежать в диапазоне (0,1].
func New(rates map[string]decimal.Decimal) (*Resolver, error) {
	r := &Resolver{rates: make(map[string]decimal.Decimal, len(rates))}
	one := decimal.NewFromInt(1)

	for code, rate := range rates {
		if !rate.IsPositive() || rate.GreaterThan(one) {
			return nil, errors.Wrapf(ErrInvalidRate, "coupon %q: rate %s", code, rate)
		}
		r.rates[strings.ToUpper(code)] = rate
	}
	return r, nil
}

// ParseTable строит резолвер из строки конфигурации вида
// "WELCOME20:0.20,SPRING10:0.10".
func ParseTable(table string) (*Resolver, error) {
	rates := make(map[string]decimal.Decimal)

	for _, entry := range strings.Split(table, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, rawRate, ok := strings.Cut(entry, ":")
		if !ok || code == "" {
			return nil, errors.Errorf("malformed coupon entry %q", entry)
		}

		rate, err := decimal.NewFromString(rawRate)
		if err != nil {
			return nil, errors.Wrapf(err, "coupon %q", code)
		}
		rates[code] = rate
	}

	return New(rates)
}

// Resolve возвращает ставку скидки для кода. Сравнение не зависит от
// регистра: код приводится к верхнему регистру перед поиском.
func (r *Resolver) Resolve(code string) (decimal.Decimal, error) {
	rate, ok := r.rates[strings.ToUpper(code)]
	if !ok {
		return decimal.Zero, ErrInvalidCoupon
	}
	return rate, nil
}
