package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "festhub"
	authservice "festhub/auth/service"
	"festhub/auth/users"
	"festhub/internal/config"
	"festhub/internal/domain"
	"festhub/internal/service"
	"festhub/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
)

type Server struct {
	auth          *authservice.Service
	users         *service.UserService
	events        *service.EventService
	registrations *service.RegistrationService
	quizzes       *service.QuizService
	notifications *service.NotificationService
	app           *fiber.App
	cfg           config.Server
}

func New(
	cfg config.Server,
	authService *authservice.Service,
	userService *service.UserService,
	eventService *service.EventService,
	registrationService *service.RegistrationService,
	quizService *service.QuizService,
	notificationService *service.NotificationService,
) (*Server, error) {
	server := Server{
		auth:          authService,
		users:         userService,
		events:        eventService,
		registrations: registrationService,
		quizzes:       quizService,
		notifications: notificationService,
		cfg:           cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})

	app.Get(webpath.Signin, server.HandleGetSignIn)
	app.Post(webpath.Signin, server.HandlePostSignIn)
	app.Get(webpath.Signup, server.HandleGetSignup)
	app.Post(webpath.Signup, server.HandlePostSignup)
	app.Get(webpath.Signout, server.HandleSignOut)
	app.Get(webpath.Home, server.handleHome)
	app.Get(webpath.Events, server.handleEvents)
	app.Get(webpath.Event, server.handleEvent)

	app.Get(webpath.ApiHome, server.handleDashboard)
	app.Get(webpath.ApiMyEvents, server.handleMyEvents)
	app.Get(webpath.ApiMyQuizzes, server.handleMyQuizzes)
	app.Get(webpath.ApiRegister, server.handleRegisterGet)
	app.Post(webpath.ApiRegister, server.handleRegister)
	app.Post(webpath.ApiCancel, server.handleCancel)
	app.Get(webpath.ApiQuiz, server.handleQuizGet)
	app.Post(webpath.ApiQuiz, server.handleQuizPost)
	app.Get(webpath.ApiQuizResult, server.handleQuizResult)
	app.Get(webpath.ApiNotifications, server.handleNotifications)
	app.Post(webpath.ApiNotificationRead, server.handleNotificationRead)
	app.Post(webpath.ApiNotificationsRead, server.handleNotificationsReadAll)
	app.Post(webpath.ApiNotificationDel, server.handleNotificationDelete)
	app.Post(webpath.ApiNotificationsDel, server.handleNotificationsClear)
	app.Get(webpath.ApiProfile, server.handleProfileGet)
	app.Post(webpath.ApiProfile, server.handleProfilePost)
	app.Get(webpath.ApiUsers, server.handleUsers)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

// currentUser returns the authenticated account set by the api
// middleware together with the application profile behind it.
func (s *Server) currentUser(ctx *fiber.Ctx) (users.User, domain.User, error) {
	authUser, _ := ctx.Context().UserValue(userKey).(users.User)
	if authUser.ID == uuid.Nil {
		return authUser, domain.User{}, domain.ErrNotFound
	}
	profile, err := s.users.Get(ctx.Context(), authUser.ID)
	if err != nil {
		return authUser, domain.User{}, err
	}
	return authUser, profile, nil
}

func (s *Server) handleHome(ctx *fiber.Ctx) error {
	featured, err := s.events.Featured(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("index", newData("FestHub").
		With("Featured", featured), "layouts/main")
}

func (s *Server) handleEvents(ctx *fiber.Ctx) error {
	events, err := s.events.List(ctx.Context())
	if err != nil {
		return err
	}
	upcoming, past := domain.SplitUpcoming(events, time.Now())
	return ctx.Render("events", newData("Events").
		With("Upcoming", upcoming).
		With("Past", past), "layouts/main")
}

func (s *Server) handleEvent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	event, err := s.events.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.Render("event", newData(event.Title).
		With("Event", event), "layouts/main")
}

func (s *Server) HandleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign In"), "layouts/main")
}

func (s *Server) HandlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Sign In").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.email, req.password)
	if err != nil {
		return ctx.Render("signin", newData("Sign In").
			WithErrors(errors.New("wrong email or password")), "layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) HandleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Sign Up"), "layouts/main")
}

func (s *Server) HandlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Sign Up").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.SignUp(ctx.Context(), req.name, req.email, req.password)
	if err != nil {
		return ctx.Render("signup", newData("Sign Up").WithErrors(err), "layouts/main")
	}
	_, err = s.users.CreateProfile(ctx.Context(), user.ID, req.name, req.email)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) HandleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleRegisterGet(ctx *fiber.Ctx) error {
	_, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	event, err := s.events.Get(ctx.Context(), eventID)
	if err != nil {
		return err
	}
	if profile.IsRegistered(eventID) {
		return ctx.Redirect(webpath.ApiMyEvents)
	}
	return ctx.Render("register", newData(event.Title).
		With("Event", event).
		With("Profile", profile), "layouts/main")
}

func (s *Server) handleRegister(ctx *fiber.Ctx) error {
	_, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	form, err := parseRegistrationForm(ctx)
	if err != nil {
		event, eventErr := s.events.Get(ctx.Context(), eventID)
		if eventErr != nil {
			return eventErr
		}
		return ctx.Render("event", newData(event.Title).
			With("Event", event).
			WithErrors(err), "layouts/main")
	}
	_, err = s.registrations.Register(ctx.Context(), profile, eventID, form)
	if errors.Is(err, domain.ErrAlreadyRegistered) {
		event, eventErr := s.events.Get(ctx.Context(), eventID)
		if eventErr != nil {
			return eventErr
		}
		return ctx.Render("event", newData(event.Title).
			With("Event", event).
			WithErrors(errors.New("you are already registered for this event")), "layouts/main")
	}
	if err != nil {
		return err
	}
	s.events.Invalidate()
	return ctx.Redirect(webpath.ApiMyEvents)
}

func (s *Server) handleCancel(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	err = s.registrations.Cancel(ctx.Context(), profile, eventID)
	if errors.Is(err, domain.ErrNotRegistered) {
		upcoming, past, listErr := s.registrations.ListForUser(ctx.Context(), profile)
		if listErr != nil {
			return listErr
		}
		return ctx.Render("myEvents", newData("My Events").
			WithUser(authUser).
			With("Upcoming", upcoming).
			With("Past", past).
			WithErrors(errors.New("you are not registered for this event")), "layouts/main")
	}
	if err != nil {
		return err
	}
	s.events.Invalidate()
	return ctx.Redirect(webpath.ApiMyEvents)
}

func (s *Server) handleUsers(ctx *fiber.Ctx) error {
	list, err := s.users.List(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	resp := make([]fiber.Map, 0, len(list))
	for _, user := range list {
		resp = append(resp, fiber.Map{
			"id":               user.ID,
			"name":             user.Name,
			"points":           user.Points,
			"interests":        user.Interests,
			"photoUrl":         user.PhotoURL,
			"registeredEvents": user.RegisteredEvents.Cardinality(),
			"quizzesCompleted": user.QuizzesCompleted.Cardinality(),
			"createdAt":        user.CreatedAt,
		})
	}
	return ctx.JSON(resp)
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
