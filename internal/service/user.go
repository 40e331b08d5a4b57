package service

import (
	"context"

	"festhub/internal/domain"
	"festhub/internal/normalize"
	"festhub/internal/storage"

	"github.com/google/uuid"
)

type UserService struct {
	userStorage storage.UserStorage
}

func NewUserService(userStorage storage.UserStorage) *UserService {
	return &UserService{userStorage: userStorage}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.userStorage.GetUser(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.userStorage.GetUserByEmail(ctx, normalize.Email(email))
}

// List returns all users ordered by points, highest first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.userStorage.ListUsers(ctx)
}

// CreateProfile stores the application profile matching a freshly signed
// up account. The id comes from the auth service so both records share it.
func (s *UserService) CreateProfile(ctx context.Context, id uuid.UUID, name string, email string) (domain.User, error) {
	user := domain.NewUser(id, normalize.Name(name), normalize.Email(email))
	err := s.userStorage.CreateUser(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

type ProfileUpdate struct {
	Name               string
	Phone              string
	Bio                string
	Interests          []string
	PhotoURL           string
	EmailNotifications bool
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (domain.User, error) {
	user, err := s.userStorage.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	user.Name = normalize.Name(update.Name)
	user.Phone = update.Phone
	user.Bio = update.Bio
	user.Interests = update.Interests
	user.PhotoURL = update.PhotoURL
	user.EmailNotifications = update.EmailNotifications
	err = s.userStorage.UpdateProfile(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
