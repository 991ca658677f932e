package session

import "github.com/mmeshcher/furnifindr/internal/model"

// SeedUser возвращает профиль демо-пользователя с его адресами
// и способами оплаты.
func SeedUser() model.User {
	return model.User{
		ID:    "1",
		Name:  "John Doe",
		Email: "john.doe@example.com",
		Phone: "+1 (555) 123-4567",
		Addresses: []model.Address{
			{
				ID:        "1",
				Name:      "Home",
				Line1:     "123 Main St",
				Line2:     "Apt 4B",
				City:      "San Francisco",
				State:     "CA",
				Zip:       "94105",
				IsDefault: true,
			},
			{
				ID:        "2",
				Name:      "Work",
				Line1:     "456 Market St",
				Line2:     "Floor 10",
				City:      "San Francisco",
				State:     "CA",
				Zip:       "94103",
				IsDefault: false,
			},
		},
		PaymentMethods: []model.PaymentMethod{
			{
				ID:         "1",
				Type:       "visa",
				Last4:      "4242",
				ExpiryDate: "12/25",
				IsDefault:  true,
			},
			{
				ID:         "2",
				Type:       "mastercard",
				Last4:      "8888",
				ExpiryDate: "06/24",
				IsDefault:  false,
			},
		},
	}
}
