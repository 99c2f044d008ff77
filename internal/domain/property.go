package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrPropertyNotFound is returned by any store when the id is absent.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrStoreUnavailable marks failures caused by the backend being
	// unreachable rather than by the query itself.
	ErrStoreUnavailable = errors.New("store unavailable")
)

type Property struct {
	ID           int64       `gorm:"primaryKey" json:"id"`
	Title        string      `gorm:"size:255;not null" json:"title"`
	Description  string      `gorm:"type:text;not null" json:"description"`
	Price        float64     `gorm:"not null" json:"price"`
	Location     string      `gorm:"size:255;not null" json:"location"`
	Bedrooms     *int        `json:"bedrooms,omitempty"`
	Bathrooms    *float64    `json:"bathrooms,omitempty"`
	Area         *int        `json:"area,omitempty"`
	ImageURL     string      `gorm:"size:255;column:image_url" json:"imageUrl,omitempty"`
	Amenities    AmenityList `gorm:"type:text" json:"amenities"`
	ContactEmail string      `gorm:"size:255;not null;column:contact_email" json:"contactEmail"`
	ContactPhone string      `gorm:"size:50;column:contact_phone" json:"contactPhone,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// AmenityList is stored as a single comma-delimited TEXT column and exposed
// as a JSON array. On input it also accepts a bare string ("Gym,Pool").
// An amenity containing a comma is split apart on the next read; the
// delimiter is not escaped.
type AmenityList []string

const amenityDelimiter = ","

func (a AmenityList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "", nil
	}
	return strings.Join(a, amenityDelimiter), nil
}

func (a *AmenityList) Scan(value interface{}) error {
	if value == nil {
		*a = AmenityList{}
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("amenities: unsupported column type %T", value)
	}

	if s == "" {
		*a = AmenityList{}
		return nil
	}
	*a = strings.Split(s, amenityDelimiter)
	return nil
}

func (a AmenityList) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

func (a *AmenityList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.New("amenities must be a string or an array of strings")
	}
	if single == "" {
		*a = AmenityList{}
		return nil
	}
	*a = strings.Split(single, amenityDelimiter)
	return nil
}
