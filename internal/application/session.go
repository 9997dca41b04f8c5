package application

import (
	"fmt"
	"sync"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// transitionKey indexes the transition table.
type transitionKey struct {
	from  model.Screen
	event model.Event
}

// transitions is the complete navigation graph. Any (screen, event) pair not
// listed is rejected.
var transitions = map[transitionKey]model.Screen{
	{model.ScreenLogin, model.EventLoggedIn}:      model.ScreenHome,
	{model.ScreenLogin, model.EventGuestEntered}:  model.ScreenHome,
	{model.ScreenLogin, model.EventOpenRegister}:  model.ScreenRegister,
	{model.ScreenRegister, model.EventRegistered}: model.ScreenLogin,
	{model.ScreenRegister, model.EventOpenLogin}:  model.ScreenLogin,
	{model.ScreenHome, model.EventLoggedOut}:      model.ScreenLogin,
	{model.ScreenHome, model.EventOpenRegister}:   model.ScreenRegister,
	{model.ScreenHome, model.EventOpenLogin}:      model.ScreenLogin,
}

// Notice is a one-shot message shown after a successful registration. It
// stays until DismissNotice is called.
type Notice struct {
	Text     string
	Username string
}

// Session tracks which screen is shown, who is signed in, and any pending
// notice. It is owned by the presentation layer; the CredentialDirectory
// never sees it.
type Session struct {
	mu       sync.RWMutex
	screen   model.Screen
	identity model.Identity
	notice   *Notice
}

// NewSession returns a session on the login screen with nobody signed in.
func NewSession() *Session {
	return &Session{screen: model.ScreenLogin}
}

// Screen returns the current screen.
func (s *Session) Screen() model.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen
}

// Identity returns the signed-in identity, or the zero Identity.
func (s *Session) Identity() model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Notice returns the pending notice, or nil.
func (s *Session) Notice() *Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notice == nil {
		return nil
	}
	n := *s.notice
	return &n
}

// DismissNotice clears the pending notice.
func (s *Session) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

// Fire applies event to the session. id is the identity produced by the
// directory: the signed-in identity for EventLoggedIn and EventGuestEntered,
// the registered username for EventRegistered, ignored otherwise. Undefined
// transitions return model.ErrInvalidTransition and change nothing.
func (s *Session) Fire(event model.Event, id model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := transitions[transitionKey{from: s.screen, event: event}]
	if !ok {
		return fmt.Errorf("%w: %s on %s", model.ErrInvalidTransition, event, s.screen)
	}

	switch event {
	case model.EventLoggedIn, model.EventGuestEntered:
		s.identity = id
	case model.EventRegistered:
		s.notice = &Notice{Text: "Registration successful", Username: id.Name}
	case model.EventLoggedOut:
		s.identity = model.Identity{}
	}

	s.screen = next
	return nil
}

// Allowed returns whether event is defined for the current screen.
func (s *Session) Allowed(event model.Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := transitions[transitionKey{from: s.screen, event: event}]
	return ok
}
