package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"
	Events  = "/events"
	Event   = Events + "/:id"

	Api                  = "/api"
	ApiHome              = Api + Home
	ApiMyEvents          = Api + "/my-events"
	ApiMyQuizzes         = Api + "/my-quizzes"
	ApiRegister          = Api + "/events/:id/register"
	ApiCancel            = Api + "/events/:id/cancel"
	ApiQuiz              = Api + "/events/:id/quiz"
	ApiQuizResult        = Api + "/quiz-results/:id"
	ApiNotifications     = Api + "/notifications"
	ApiNotificationRead  = ApiNotifications + "/:id/read"
	ApiNotificationsRead = ApiNotifications + "/read-all"
	ApiNotificationDel   = ApiNotifications + "/:id/delete"
	ApiNotificationsDel  = ApiNotifications + "/clear"
	ApiProfile           = Api + "/profile"
	ApiUsers             = Api + "/users"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":               Signup,
		"SignIn":               Signin,
		"SignOut":              Signout,
		"Home":                 Home,
		"Events":               Events,
		"Api":                  Api,
		"ApiHome":              ApiHome,
		"ApiMyEvents":          ApiMyEvents,
		"ApiMyQuizzes":         ApiMyQuizzes,
		"ApiNotifications":     ApiNotifications,
		"ApiNotificationsRead": ApiNotificationsRead,
		"ApiNotificationsDel":  ApiNotificationsDel,
		"ApiProfile":           ApiProfile,
		"ApiUsers":             ApiUsers,
	}
}
