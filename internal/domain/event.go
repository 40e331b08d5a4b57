package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	Location           string
	Date               time.Time
	Capacity           *int
	Price              *float64
	Featured           bool
	ImageURL           string
	RegistrationsCount int
	CreatedAt          time.Time
}

// SplitUpcoming partitions events into upcoming (date >= now) and past,
// both ascending by date. The input must already be sorted ascending.
func SplitUpcoming(events []Event, now time.Time) (upcoming []Event, past []Event) {
	for _, e := range events {
		if e.Date.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, past
}
