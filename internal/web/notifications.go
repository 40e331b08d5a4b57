package web

import (
	"festhub/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (s *Server) handleNotifications(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	notifs, err := s.notifications.List(ctx.Context(), profile.ID)
	if err != nil {
		return err
	}
	unread, err := s.notifications.Unread(ctx.Context(), profile.ID)
	if err != nil {
		return err
	}
	return ctx.Render("notifications", newData("Notifications").
		WithUser(authUser).
		With("Notifications", notifs).
		With("Unread", unread), "layouts/main")
}

func (s *Server) handleNotificationRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	if err := s.notifications.MarkRead(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiNotifications)
}

func (s *Server) handleNotificationsReadAll(ctx *fiber.Ctx) error {
	_, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.notifications.MarkAllRead(ctx.Context(), profile.ID); err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiNotifications)
}

func (s *Server) handleNotificationDelete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	if err := s.notifications.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiNotifications)
}

func (s *Server) handleNotificationsClear(ctx *fiber.Ctx) error {
	_, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.notifications.DeleteAll(ctx.Context(), profile.ID); err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiNotifications)
}
