package web

import (
	"errors"
	"regexp"
	"strings"

	"festhub/internal/domain"
	"festhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type signupRequest struct {
	name     string
	email    string
	password string
}

func parseSignUpRequest(ctx *fiber.Ctx) (signupRequest, error) {
	var err error
	name := strings.TrimSpace(ctx.FormValue("name", ""))
	err = errors.Join(err, validateName(name))
	email := strings.TrimSpace(ctx.FormValue("email", ""))
	err = errors.Join(err, validateEmail(email))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	passwordRepeat := ctx.FormValue("password-repeat", "")
	if passwordRepeat != password {
		err = errors.Join(err, errors.New("passwords do not match"))
	}
	if err != nil {
		return signupRequest{}, errors.Join(domain.ErrValidation, err)
	}
	return signupRequest{
		name:     name,
		email:    email,
		password: password,
	}, nil
}

type signInRequest struct {
	email    string
	password string
}

func parseSignInRequest(ctx *fiber.Ctx) (req signInRequest, err error) {
	email := strings.TrimSpace(ctx.FormValue("email", ""))
	err = errors.Join(err, validateEmail(email))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	if err != nil {
		return signInRequest{}, errors.Join(domain.ErrValidation, err)
	}
	return signInRequest{
		email:    email,
		password: password,
	}, nil
}

func parseRegistrationForm(ctx *fiber.Ctx) (service.RegistrationForm, error) {
	var err error
	email := strings.TrimSpace(ctx.FormValue("email", ""))
	if email != "" {
		err = errors.Join(err, validateEmail(email))
	}
	if err != nil {
		return service.RegistrationForm{}, errors.Join(domain.ErrValidation, err)
	}
	return service.RegistrationForm{
		Name:     strings.TrimSpace(ctx.FormValue("name", "")),
		Email:    email,
		Phone:    strings.TrimSpace(ctx.FormValue("phone", "")),
		Source:   ctx.FormValue("source", ""),
		Comments: ctx.FormValue("comments", ""),
	}, nil
}

func parseProfileForm(ctx *fiber.Ctx) (service.ProfileUpdate, error) {
	var err error
	name := strings.TrimSpace(ctx.FormValue("name", ""))
	err = errors.Join(err, validateName(name))
	if err != nil {
		return service.ProfileUpdate{}, errors.Join(domain.ErrValidation, err)
	}
	return service.ProfileUpdate{
		Name:               name,
		Phone:              strings.TrimSpace(ctx.FormValue("phone", "")),
		Bio:                ctx.FormValue("bio", ""),
		Interests:          splitInterests(ctx.FormValue("interests", "")),
		PhotoURL:           strings.TrimSpace(ctx.FormValue("photo-url", "")),
		EmailNotifications: ctx.FormValue("email-notifications") == "on",
	}, nil
}

func splitInterests(raw string) []string {
	var interests []string
	for _, interest := range strings.Split(raw, ",") {
		interest = strings.TrimSpace(interest)
		if interest != "" {
			interests = append(interests, interest)
		}
	}
	return interests
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

func validateEmail(email string) error {
	var err error
	if email == "" {
		err = errors.Join(err, errors.New("email must not be empty"))
	}
	if !emailRegexp.MatchString(email) {
		err = errors.Join(err, errors.New("email address is not valid"))
	}
	return err
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
