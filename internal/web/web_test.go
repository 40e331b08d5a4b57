package web

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	embedded "festhub"
	"festhub/auth/users"
	"festhub/internal/domain"
	"festhub/internal/logger"
	"festhub/internal/service"
	"festhub/internal/storage/mem"
	"festhub/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
)

// newTestServer builds a Server over in-memory storage with a stub
// middleware in place of cookie auth, for handler-level tests.
func newTestServer(t *testing.T) (*Server, *mem.Storage, domain.User, domain.Event) {
	t.Helper()
	st := mem.New()
	user := domain.NewUser(uuid.New(), "Alice Smith", "alice@example.com")
	if err := st.CreateUser(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	event := domain.Event{
		ID:       uuid.New(),
		Title:    "Summer Music Festival",
		Location: "Riverside Park",
		Date:     time.Now().Add(72 * time.Hour),
	}
	st.AddEvent(event)

	notifications := service.NewNotificationService(logger.New(false), st)
	server := &Server{
		users:         service.NewUserService(st),
		events:        service.NewEventService(st),
		registrations: service.NewRegistrationService(st, st, notifications),
		quizzes:       service.NewQuizService(st, st, notifications),
		notifications: notifications,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		t.Fatal(err)
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.AddFunc("FormatDate", formatDate)
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		c.Context().SetUserValue(userKey, users.User{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		})
		return c.Next()
	})
	app.Post(webpath.ApiRegister, server.handleRegister)
	app.Post(webpath.ApiCancel, server.handleCancel)
	server.app = app
	return server, st, user, event
}

func TestCancelNotRegistered(t *testing.T) {
	server, st, user, event := newTestServer(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/events/"+event.ID.String()+"/cancel", nil)
	resp, err := server.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "you are not registered for this event") {
		t.Error("error notice missing from response")
	}

	stored, err := st.GetUser(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.IsRegistered(event.ID) {
		t.Error("registered set changed by failed cancel")
	}
}

func TestCancelRedirects(t *testing.T) {
	server, _, user, event := newTestServer(t)

	if _, err := server.registrations.Register(context.Background(), user, event.ID, service.RegistrationForm{}); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(fiber.MethodPost, "/api/events/"+event.ID.String()+"/cancel", nil)
	resp, err := server.app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != webpath.ApiMyEvents {
		t.Errorf("redirect = %q, want %q", loc, webpath.ApiMyEvents)
	}
}
