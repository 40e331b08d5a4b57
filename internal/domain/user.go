package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Phone              string
	Bio                string
	Interests          []string
	PhotoURL           string
	EmailNotifications bool
	Points             int
	RegisteredEvents   mapset.Set[uuid.UUID]
	QuizzesCompleted   mapset.Set[uuid.UUID]
	CreatedAt          time.Time
}

func NewUser(id uuid.UUID, name string, email string) User {
	return User{
		ID:                 id,
		Name:               name,
		Email:              email,
		EmailNotifications: true,
		RegisteredEvents:   mapset.NewSet[uuid.UUID](),
		QuizzesCompleted:   mapset.NewSet[uuid.UUID](),
		CreatedAt:          time.Now(),
	}
}

func (u User) IsRegistered(eventID uuid.UUID) bool {
	return u.RegisteredEvents != nil && u.RegisteredEvents.Contains(eventID)
}
