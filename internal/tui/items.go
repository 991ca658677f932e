package tui

import (
	"fmt"

	"github.com/mmeshcher/furnifindr/internal/model"
	"github.com/mmeshcher/furnifindr/internal/pricing"
)

// productItem реализует list.Item для товара каталога.
type productItem struct {
	product model.Product
}

func (i productItem) Title() string {
	return i.product.Name
}

func (i productItem) Description() string {
	label := fmt.Sprintf("$%s • ★ %s", pricing.Format(i.product.Price), i.product.Rating.StringFixed(1))
	if i.product.Featured {
		label += " • Best Selling"
	}
	return label
}

func (i productItem) FilterValue() string {
	return i.product.Name
}
