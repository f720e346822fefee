package corpus

import "github.com/soundscout/backend/internal/domain"

// Sample returns the fixed built-in corpus used when the external file
// cannot be loaded. Seven canonical rows. Form factor, connectivity and
// battery life are fixed here rather than extracted; text extraction is
// tuned for full catalog copy and misreads these short rows. Base model
// and the feature columns are still derived by the load pipeline.
func Sample() []domain.Product {
	return []domain.Product{
		{
			Name:             "HAMMER Bash Max Over The Ear Wireless Bluetooth Headphones",
			Brand:            "Hammer",
			Price:            2299,
			Rating:           3.7,
			Reviews:          3136,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/315ZO+wzU7L._SY300_SX300_.jpg",
			Description:      "Touch Control Headphone with 40 Hours Playtime, Comfort Fit, Latest Bluetooth v5.3",
			Availability:     33,
			LoyaltyPoints:    229,
			FormFactor:       domain.FormFactorOverEar,
			Connectivity:     domain.ConnectivityWireless,
			BatteryLifeHours: 40,
		},
		{
			Name:             "boAt Rockerz 450, 15 HRS Battery, 40mm Drivers",
			Brand:            "Boat",
			Price:            1499,
			Rating:           4.0,
			Reviews:          115737,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/31DU-7yXUyL._SX300_SY300_QL70_FMwebp_.jpg",
			Description:      "Provides a massive battery backup of upto 15 hours for a superior playback time with 40mm dynamic drivers",
			Availability:     53,
			LoyaltyPoints:    149,
			FormFactor:       domain.FormFactorOnEar,
			Connectivity:     domain.ConnectivityWireless,
			BatteryLifeHours: 15,
		},
		{
			Name:             "boAt Bassheads 100 in Ear Wired Earphones with Mic",
			Brand:            "Boat",
			Price:            297,
			Rating:           4.1,
			Reviews:          415342,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/313U7Xx9b4L._SX300_SY300_QL70_FMwebp_.jpg",
			Description:      "The stylish BassHeads 100 superior coated wired earphones with powerful 10mm dynamic driver",
			Availability:     58,
			LoyaltyPoints:    29,
			FormFactor:       domain.FormFactorInEar,
			Connectivity:     domain.ConnectivityWired,
			BatteryLifeHours: 0,
		},
		{
			Name:             "Sony WH-CH520 Wireless Bluetooth Headphones with Mic",
			Brand:            "Sony",
			Price:            3989,
			Rating:           4.2,
			Reviews:          17809,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/318RvHnDwHL._SX300_SY300_QL70_FMwebp_.jpg",
			Description:      "With up to 50-hour battery life and quick charging, great sound quality customizable with EQ Custom",
			Availability:     53,
			LoyaltyPoints:    398,
			FormFactor:       domain.FormFactorOnEar,
			Connectivity:     domain.ConnectivityWireless,
			BatteryLifeHours: 50,
		},
		{
			Name:             "ZEBRONICS THUNDER Bluetooth 5.3 Wireless Headphones",
			Brand:            "Zebronics",
			Price:            699,
			Rating:           3.8,
			Reviews:          75791,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/417gW8O1RzL._SX300_SY300_QL70_FMwebp_.jpg",
			Description:      "Comfortable Design with 60hrs Playback Time, Superior Sound Quality, and Multi Connectivity Options",
			Availability:     74,
			LoyaltyPoints:    69,
			FormFactor:       domain.FormFactorOverEar,
			Connectivity:     domain.ConnectivityWireless,
			BatteryLifeHours: 60,
		},
		{
			Name:             "boAt Bassheads 900 Pro Wired Headphones with 40Mm Drivers",
			Brand:            "Boat",
			Price:            898,
			Rating:           4.2,
			Reviews:          98203,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/4192vscwlSL._SX300_SY300_QL70_FMwebp_.jpg",
			Description:      "40mm Drivers, Lightweight Build, Remote Control, Unidirectional Mic, and Foldable Design",
			Availability:     41,
			LoyaltyPoints:    89,
			FormFactor:       domain.FormFactorOverEar,
			Connectivity:     domain.ConnectivityWired,
			BatteryLifeHours: 0,
		},
		{
			Name:             "Boult Q Over Ear Bluetooth Headphones with 70H Playtime",
			Brand:            "Boult",
			Price:            1799,
			Rating:           4.2,
			Reviews:          1747,
			Category:         "Headphone",
			ImageURL:         "https://m.media-amazon.com/images/I/318EgLiOMUL._SX300_SY300_QL70_FMwebp_.jpg",
			Description:      "70H Playtime, 40mm Bass Drivers, Zen ENC Mic, Type-C Fast Charging, 4 EQ Modes, Bluetooth 5.4",
			Availability:     27,
			LoyaltyPoints:    179,
			FormFactor:       domain.FormFactorOverEar,
			Connectivity:     domain.ConnectivityWireless,
			BatteryLifeHours: 70,
		},
	}
}
