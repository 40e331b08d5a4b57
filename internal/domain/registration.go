package domain

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationActive    RegistrationStatus = "active"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type Registration struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	EventTitle  string
	Name        string
	Email       string
	Phone       string
	Source      string
	Comments    string
	Status      RegistrationStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
}
