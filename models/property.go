package models

import (
	"errors"
	"time"
)

// Location is a latitude/longitude pair attached to a property listing.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Property is a real-estate listing. Listings are immutable once created and
// are never deleted.
type Property struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       int       `bson:"price" json:"price"`
	Bedrooms    int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int       `bson:"bathrooms" json:"bathrooms"`
	Address     string    `bson:"address" json:"address"`
	Location    Location  `bson:"location" json:"location"`
	Images      []string  `bson:"images" json:"images"`
	UserID      int64     `bson:"userId" json:"userId"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertProperty is the request payload for creating a listing. The id and
// creation timestamp are assigned by the store.
type InsertProperty struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Address     string   `json:"address"`
	Location    Location `json:"location"`
	Images      []string `json:"images"`
	UserID      int64    `json:"userId"`
}

func (p *InsertProperty) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return errors.New("bedrooms and bathrooms must not be negative")
	}
	if p.Address == "" {
		return errors.New("address is required")
	}
	return nil
}
