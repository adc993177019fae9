package cli

// Screen names one page of the interactive client.
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenLogin     Screen = "login"
	ScreenRegister  Screen = "register"
	ScreenDashboard Screen = "dashboard"
)

// Session is the navigation state: the active screen and, on the dashboard,
// the logged-in user.
type Session struct {
	Screen      Screen
	CurrentUser string
}

func NewSession() Session {
	return Session{Screen: ScreenHome}
}

func (s *Session) LoggedIn() bool {
	return s.CurrentUser != ""
}

// LogIn records username and moves to the dashboard.
func (s *Session) LogIn(username string) {
	s.CurrentUser = username
	s.Screen = ScreenDashboard
}

// LogOut clears the user and returns home.
func (s *Session) LogOut() {
	s.CurrentUser = ""
	s.Screen = ScreenHome
}
