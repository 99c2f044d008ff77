package repository

import (
	"time"

	"dreamsproperty/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// DemoProperties returns the listings shown in demo mode. The same set is
// used by cmd/seed to populate an empty database.
func DemoProperties() []domain.Property {
	now := time.Now().UTC()

	return []domain.Property{
		{
			ID:           1,
			Title:        "Modern Downtown Apartment",
			Description:  "A beautiful modern apartment in the heart of downtown with stunning city views.",
			Price:        350000,
			Location:     "Downtown, City Center",
			Bedrooms:     intPtr(2),
			Bathrooms:    floatPtr(2),
			Area:         intPtr(1200),
			ImageURL:     "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267",
			Amenities:    domain.AmenityList{"Parking", "Gym", "Swimming Pool", "Security"},
			ContactEmail: "contact@dreamsproperty.com",
			ContactPhone: "+1 (555) 123-4567",
			CreatedAt:    now.Add(-time.Minute),
		},
		{
			ID:           2,
			Title:        "Suburban Family Home",
			Description:  "Spacious family home in a quiet suburban neighborhood.",
			Price:        550000,
			Location:     "Oakridge Suburb",
			Bedrooms:     intPtr(4),
			Bathrooms:    floatPtr(3),
			Area:         intPtr(2500),
			ImageURL:     "https://images.unsplash.com/photo-1518780664697-55e3ad937233",
			Amenities:    domain.AmenityList{"Garden", "Garage", "Fireplace", "Central Heating/AC"},
			ContactEmail: "contact@dreamsproperty.com",
			ContactPhone: "+1 (555) 123-4567",
			CreatedAt:    now,
		},
	}
}
