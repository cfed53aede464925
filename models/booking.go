package models

import (
	"errors"
	"fmt"
	"strings"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type BookingType string

const (
	BookingOneTime  BookingType = "one-time"
	BookingContract BookingType = "contract"
)

var (
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidBookingType = errors.New("invalid booking type")
)

// Booking is either the customer's view (ids b*) or the provider's view
// (ids pb*) of a reservation. The two are written together but never reconciled.
type Booking struct {
	ID           string        `json:"id"`
	ProviderID   string        `json:"providerId"`
	ProviderName string        `json:"providerName"` // snapshot at creation
	Service      string        `json:"service"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Status       BookingStatus `json:"status"`
	Amount       float64       `json:"amount"`
	Type         BookingType   `json:"type"`
}

// BookingInput holds the customer's booking request.
type BookingInput struct {
	ProviderID string      `json:"providerId"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	Type       BookingType `json:"type"`
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ParseBookingType defaults to one-time when s is empty.
func ParseBookingType(s string) (BookingType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BookingOneTime, nil
	}
	switch t := BookingType(s); t {
	case BookingOneTime, BookingContract:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBookingType, s)
}
