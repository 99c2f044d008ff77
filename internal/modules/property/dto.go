package property

import "dreamsproperty/internal/domain"

// PropertyRequest is the payload for both create and update. Price uses a
// pointer so a missing price and an explicit 0 both fail the right rule.
type PropertyRequest struct {
	Title        string             `json:"title" validate:"required,min=3,max=255"`
	Description  string             `json:"description" validate:"required,min=10"`
	Price        *float64           `json:"price" validate:"required,gt=0"`
	Location     string             `json:"location" validate:"required,min=3,max=255"`
	Bedrooms     *int               `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *float64           `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Area         *int               `json:"area,omitempty" validate:"omitempty,gte=0"`
	ImageURL     string             `json:"imageUrl" validate:"omitempty,url"`
	Amenities    domain.AmenityList `json:"amenities,omitempty"`
	ContactEmail string             `json:"contactEmail" validate:"required,email"`
	ContactPhone string             `json:"contactPhone"`
}

func (req PropertyRequest) toProperty() domain.Property {
	amenities := req.Amenities
	if amenities == nil {
		amenities = domain.AmenityList{}
	}

	return domain.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		Location:     req.Location,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		ImageURL:     req.ImageURL,
		Amenities:    amenities,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
}
