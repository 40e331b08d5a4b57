package sel

const (
	Logo = ".brand-logo"

	SignUpFormName    = "#name-field"
	SignUpFormEmail   = "#email-field"
	SignUpFormPass    = "#password-field"
	SignUpFormPassRep = "#password-repeat-field"
	SignUpFormSubmit  = "#signup-form-submit"

	SignInFormEmail  = "#email-field"
	SignInFormPass   = "#password-field"
	SignInFormSubmit = "#signin-form-submit"

	FeaturedEvents = "#featured-events"
	EventList      = "#event-list"
	EventListRow   = ".event-list-row"
	EventTitle     = "#event-title"

	RegistrationFormName   = "#registration-form-name"
	RegistrationFormEmail  = "#registration-form-email"
	RegistrationFormSubmit = "#registration-form-submit"

	QuizFormSubmit  = "#quiz-form-submit"
	QuizResultScore = "#quiz-result-score"

	NotificationList = "#notification-list"
	NotificationRow  = ".notification-row"
	UnreadCount      = "#unread-count"
	MarkAllRead      = "#mark-all-read"

	ProfileFormName   = "#profile-form-name"
	ProfileFormSubmit = "#profile-form-submit"

	DashboardPoints = "#dashboard-points"
)
