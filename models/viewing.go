package models

import (
	"errors"
	"time"
)

// Viewing is a booked appointment to view a property. Viewings are immutable
// once created and are never deleted.
type Viewing struct {
	ID         int64     `bson:"_id" json:"id"`
	PropertyID int64     `bson:"propertyId" json:"propertyId"`
	UserID     int64     `bson:"userId" json:"userId"`
	Date       time.Time `bson:"date" json:"date"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	Message    string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// InsertViewing is the request payload for booking a viewing. Message is
// optional, everything else is required.
type InsertViewing struct {
	PropertyID int64     `json:"propertyId"`
	UserID     int64     `json:"userId"`
	Date       time.Time `json:"date"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message,omitempty"`
}

func (v *InsertViewing) Validate() error {
	if v.PropertyID <= 0 {
		return errors.New("propertyId is required")
	}
	if v.Date.IsZero() {
		return errors.New("date is required")
	}
	if v.Name == "" {
		return errors.New("name is required")
	}
	if !looksLikeEmail(v.Email) {
		return errors.New("a valid email is required")
	}
	if v.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
