package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole int

const (
	RoleAdmin     UserRole = 1
	RoleModerator UserRole = 2
	RoleUser      UserRole = 3
)

type User struct {
	ID        int64
	FirstName string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Role UserRole

	// FesthubUserID links the telegram account to a festhub profile.
	// uuid.Nil when the account is not linked.
	FesthubUserID uuid.UUID

	Subscribed bool
}
