package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/furnifindr/internal/model"
)

func price(s string) decimal.Decimal  { return decimal.RequireFromString(s) }
func rating(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedProducts возвращает эталонный каталог мебели демо-магазина.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Modern Lounge Chair",
			Price:       price("249.99"),
			Image:       "https://images.pexels.com/photos/1148955/pexels-photo-1148955.jpeg",
			Description: "A modern lounge chair with soft fabric upholstery and wooden legs. Perfect for your living room or reading nook.",
			Rating:      rating("4.5"),
			CategoryID:  "chairs",
			Colors:      []string{"#3C4043", "#E9EBED", "#D3A28C"},
			Featured:    true,
			Gallery: []string{
				"https://images.pexels.com/photos/6707628/pexels-photo-6707628.jpeg",
				"https://images.pexels.com/photos/6489083/pexels-photo-6489083.jpeg",
			},
		},
		{
			ID:          "2",
			Name:        "Minimalist Coffee Table",
			Price:       price("199.99"),
			Image:       "https://images.pexels.com/photos/1571453/pexels-photo-1571453.jpeg",
			Description: "A sleek minimalist coffee table with a sturdy wooden top and metal legs. The perfect centerpiece for your living room.",
			Rating:      rating("4.2"),
			CategoryID:  "tables",
			Colors:      []string{"#CBAE89", "#3C4043", "#E9EBED"},
			Featured:    true,
			Gallery: []string{
				"https://images.pexels.com/photos/6489118/pexels-photo-6489118.jpeg",
				"https://images.pexels.com/photos/4846461/pexels-photo-4846461.jpeg",
			},
		},
		{
			ID:          "3",
			Name:        "Scandinavian Sofa",
			Price:       price("599.99"),
			Image:       "https://images.pexels.com/photos/1866149/pexels-photo-1866149.jpeg",
			Description: "A comfortable three-seater sofa with Scandinavian design principles. Features high-quality fabric upholstery and solid wood frame.",
			Rating:      rating("4.7"),
			CategoryID:  "sofas",
			Colors:      []string{"#E9EBED", "#3C4043", "#B8BDAB"},
			Featured:    true,
			Gallery: []string{
				"https://images.pexels.com/photos/6580227/pexels-photo-6580227.jpeg",
				"https://images.pexels.com/photos/6480707/pexels-photo-6480707.jpeg",
			},
		},
		{
			ID:          "4",
			Name:        "Elegant Dining Table",
			Price:       price("349.99"),
			Image:       "https://images.pexels.com/photos/1813502/pexels-photo-1813502.jpeg",
			Description: "An elegant dining table that seats six people comfortably. Made from solid oak with a natural finish that showcases the wood grain.",
			Rating:      rating("4.3"),
			CategoryID:  "tables",
			Colors:      []string{"#CBAE89", "#3C4043"},
			Featured:    true,
			Gallery: []string{
				"https://images.pexels.com/photos/6207764/pexels-photo-6207764.jpeg",
				"https://images.pexels.com/photos/6207818/pexels-photo-6207818.jpeg",
			},
		},
		{
			ID:          "5",
			Name:        "Modern Platform Bed",
			Price:       price("499.99"),
			Image:       "https://images.pexels.com/photos/1743229/pexels-photo-1743229.jpeg",
			Description: "A modern platform bed with a padded headboard and minimalist design. Includes sturdy slats, eliminating the need for a box spring.",
			Rating:      rating("4.6"),
			CategoryID:  "beds",
			Colors:      []string{"#3C4043", "#E9EBED", "#CBAE89"},
			Featured:    false,
			Gallery: []string{
				"https://images.pexels.com/photos/6585598/pexels-photo-6585598.jpeg",
				"https://images.pexels.com/photos/6585602/pexels-photo-6585602.jpeg",
			},
		},
		{
			ID:          "6",
			Name:        "Wingback Armchair",
			Price:       price("299.99"),
			Image:       "https://images.pexels.com/photos/6539772/pexels-photo-6539772.jpeg",
			Description: "A classic wingback armchair with modern touches. Features high-quality fabric upholstery and comfortable padding.",
			Rating:      rating("4.4"),
			CategoryID:  "chairs",
			Colors:      []string{"#E9EBED", "#3C4043", "#D3A28C"},
			Featured:    false,
			Gallery: []string{
				"https://images.pexels.com/photos/6489096/pexels-photo-6489096.jpeg",
				"https://images.pexels.com/photos/6489097/pexels-photo-6489097.jpeg",
			},
		},
		{
			ID:          "7",
			Name:        "Modern Sideboard",
			Price:       price("399.99"),
			Image:       "https://images.pexels.com/photos/2062431/pexels-photo-2062431.jpeg",
			Description: "A spacious sideboard with plenty of storage for your dining room or living room. Features clean lines and minimalist hardware.",
			Rating:      rating("4.2"),
			CategoryID:  "storage",
			Colors:      []string{"#CBAE89", "#3C4043", "#E9EBED"},
			Featured:    false,
			Gallery: []string{
				"https://images.pexels.com/photos/4352247/pexels-photo-4352247.jpeg",
				"https://images.pexels.com/photos/4210809/pexels-photo-4210809.jpeg",
			},
		},
		{
			ID:          "8",
			Name:        "Pendant Light",
			Price:       price("129.99"),
			Image:       "https://images.pexels.com/photos/1123262/pexels-photo-1123262.jpeg",
			Description: "A stylish pendant light with a clean, modern design. Perfect for dining rooms, kitchens, or entryways.",
			Rating:      rating("4.0"),
			CategoryID:  "lighting",
			Colors:      []string{"#3C4043", "#CBAE89", "#E9EBED"},
			Featured:    false,
			Gallery: []string{
				"https://images.pexels.com/photos/6492398/pexels-photo-6492398.jpeg",
				"https://images.pexels.com/photos/6492401/pexels-photo-6492401.jpeg",
			},
		},
		{
			ID:          "9",
			Name:        "Modern Sectional Sofa",
			Price:       price("899.99"),
			Image:       "https://images.pexels.com/photos/6489118/pexels-photo-6489118.jpeg",
			Description: "A spacious sectional sofa perfect for family rooms and entertainment spaces. Features modular design and high-quality upholstery.",
			Rating:      rating("4.8"),
			CategoryID:  "sofas",
			Colors:      []string{"#3C4043", "#E9EBED", "#B8BDAB"},
			Featured:    false,
			Gallery: []string{
				"https://images.pexels.com/photos/6489104/pexels-photo-6489104.jpeg",
				"https://images.pexels.com/photos/6489105/pexels-photo-6489105.jpeg",
			},
		},
		{
			ID:          "10",
			Name:        "Bedside Table",
			Price:       price("149.99"),
			Image:       "https://images.pexels.com/photos/6207827/pexels-photo-6207827.jpeg",
			Description: "A stylish bedside table with drawer storage. The perfect companion to your bed, with room for all your nighttime essentials.",
			Rating:      rating("4.3"),
			CategoryID:  "tables",
			Colors:      []string{"#CBAE89", "#3C4043", "#E9EBED"},
			Featured:    false,
			Gallery: []string{
				"https://images.pexels.com/photos/6207826/pexels-photo-6207826.jpeg",
				"https://images.pexels.com/photos/6207828/pexels-photo-6207828.jpeg",
			},
		},
	}
}

// SeedCategories возвращает категории демо-каталога.
func SeedCategories() []model.Category {
	return []model.Category{
		{ID: "sofas", Name: "Sofas", Image: "https://images.pexels.com/photos/1866149/pexels-photo-1866149.jpeg"},
		{ID: "chairs", Name: "Chairs", Image: "https://images.pexels.com/photos/1148955/pexels-photo-1148955.jpeg"},
		{ID: "tables", Name: "Tables", Image: "https://images.pexels.com/photos/1571453/pexels-photo-1571453.jpeg"},
		{ID: "beds", Name: "Beds", Image: "https://images.pexels.com/photos/1743229/pexels-photo-1743229.jpeg"},
		{ID: "storage", Name: "Storage", Image: "https://images.pexels.com/photos/2062431/pexels-photo-2062431.jpeg"},
		{ID: "lighting", Name: "Lighting", Image: "https://images.pexels.com/photos/1123262/pexels-photo-1123262.jpeg"},
	}
}

// SeedReviews возвращает демо-отзывы о товарах каталога.
func SeedReviews() []model.Review {
	return []model.Review{
		{
			ID:        "1",
			ProductID: "1",
			UserName:  "Emma Wilson",
			Rating:    5,
			Text:      "This chair is absolutely gorgeous and super comfortable. The quality is excellent, and it fits perfectly in my living room. Highly recommend!",
			Date:      "May 15, 2025",
		},
		{
			ID:        "2",
			ProductID: "1",
			UserName:  "Michael Brown",
			Rating:    4,
			Text:      "Great chair overall. Comfortable and stylish, but assembly was a bit challenging. Still, very happy with my purchase.",
			Date:      "April 28, 2025",
		},
		{
			ID:        "3",
			ProductID: "1",
			UserName:  "Sophia Martinez",
			Rating:    5,
			Text:      "Absolutely love this chair! It's even more beautiful in person than in the photos. Very comfortable and well-made.",
			Date:      "April 12, 2025",
		},
		{
			ID:        "4",
			ProductID: "2",
			UserName:  "James Johnson",
			Rating:    4,
			Text:      "This coffee table is exactly what I was looking for. Sturdy construction and looks great in my living room. Assembly was straightforward.",
			Date:      "May 2, 2025",
		},
	}
}

// SeedStore загружает эталонный каталог. Фикстуры корректны по построению,
// поэтому ошибка загрузки здесь означает ошибку программиста.
func SeedStore() *Store {
	s, err := Load(SeedProducts(), SeedCategories(), SeedReviews())
	if err != nil {
		panic(err)
	}
	return s
}
