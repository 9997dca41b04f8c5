package model

// Screen identifies which view the session is showing.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
)

// Event is a navigation trigger raised by a screen.
type Event string

const (
	EventLoggedIn     Event = "logged_in"
	EventGuestEntered Event = "guest_entered"
	EventOpenRegister Event = "open_register"
	EventRegistered   Event = "registered"
	EventOpenLogin    Event = "open_login"
	EventLoggedOut    Event = "logged_out"
)

// DirectoryBackend selects the CredentialStore implementation.
type DirectoryBackend string

const (
	DirectoryBackendMemory DirectoryBackend = "memory"
	DirectoryBackendSQLite DirectoryBackend = "sqlite"
)
