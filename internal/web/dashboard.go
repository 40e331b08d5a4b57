package web

import (
	"time"

	"festhub/internal/domain"
	"festhub/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	upcoming, _, err := s.registrations.ListForUser(ctx.Context(), profile)
	if err != nil {
		return err
	}
	unread, err := s.notifications.Unread(ctx.Context(), profile.ID)
	if err != nil {
		return err
	}
	return ctx.Render("dashboard", newData("Dashboard").
		WithUser(authUser).
		With("Profile", profile).
		With("Upcoming", upcoming).
		With("Unread", unread), "layouts/main")
}

func (s *Server) handleMyEvents(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	upcoming, past, err := s.registrations.ListForUser(ctx.Context(), profile)
	if err != nil {
		return err
	}
	return ctx.Render("myEvents", newData("My Events").
		WithUser(authUser).
		With("Upcoming", upcoming).
		With("Past", past), "layouts/main")
}

func (s *Server) handleMyQuizzes(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	results, err := s.quizzes.ListForUser(ctx.Context(), profile.ID)
	if err != nil {
		return err
	}
	// Past registered events without a result yet are open for feedback.
	_, past, err := s.registrations.ListForUser(ctx.Context(), profile)
	if err != nil {
		return err
	}
	var open []domain.Event
	for _, event := range past {
		if _, done, err := s.quizzes.Completed(ctx.Context(), profile.ID, event.ID); err != nil {
			return err
		} else if !done {
			open = append(open, event)
		}
	}
	return ctx.Render("myQuizzes", newData("My Quizzes").
		WithUser(authUser).
		With("Results", results).
		With("Open", open), "layouts/main")
}

func (s *Server) handleProfileGet(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	return ctx.Render("profile", newData("My Profile").
		WithUser(authUser).
		With("Profile", profile).
		With("MemberSince", profile.CreatedAt.Format(time.DateOnly)), "layouts/main")
}

func (s *Server) handleProfilePost(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	update, err := parseProfileForm(ctx)
	if err != nil {
		return ctx.Render("profile", newData("My Profile").
			WithUser(authUser).
			With("Profile", profile).
			WithErrors(err), "layouts/main")
	}
	_, err = s.users.UpdateProfile(ctx.Context(), profile.ID, update)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiProfile)
}
