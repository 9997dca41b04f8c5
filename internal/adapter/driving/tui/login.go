package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

const (
	loginEmail = iota
	loginPassword
)

// loginScreen collects an email and password. Its state is rebuilt every
// time the screen is entered.
type loginScreen struct {
	form    form
	message string
	pending bool
}

func newLoginScreen() loginScreen {
	return loginScreen{
		form: newForm(
			field{label: "Email", placeholder: "you@example.com"},
			field{label: "Password", placeholder: "password", secret: true},
		),
	}
}

// loginResultMsg carries the outcome of an Authenticate call.
type loginResultMsg struct {
	identity model.Identity
	err      error
}

func (m Model) updateLogin(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.login.pending = false
		switch {
		case msg.err == nil:
			return m.fire(model.EventLoggedIn, msg.identity)
		case errors.Is(msg.err, model.ErrInvalidCredentials):
			m.login.message = "Invalid credentials"
		default:
			m.logger.Error("login failed", "error", msg.err)
			m.login.message = "Something went wrong, please try again"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Submit):
			if m.login.pending {
				return m, nil
			}
			m.login.pending = true
			return m, m.authenticateCmd(m.login.form.value(loginEmail), m.login.form.value(loginPassword))
		case key.Matches(msg, keys.Register):
			return m.fire(model.EventOpenRegister, model.Identity{})
		case key.Matches(msg, keys.Guest):
			return m.fire(model.EventGuestEntered, m.dir.GuestAuthenticate())
		}
	}

	cmd := m.login.form.update(msg)
	return m, cmd
}

func (m Model) authenticateCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		id, err := m.dir.Authenticate(m.ctx, email, password)
		return loginResultMsg{identity: id, err: err}
	}
}

func (m Model) viewLogin() string {
	email := m.login.form.value(loginEmail)
	flagged := map[int]bool{loginEmail: email != "" && !application.ValidEmail(email)}

	body := titleStyle.Render("Sign in") + "\n" + m.login.form.view(flagged)
	if m.login.message != "" {
		body += messageStyle.Render(errorStyle.Render(m.login.message)) + "\n"
	}
	return body + "\n" + m.help.ShortHelpView([]key.Binding{
		keys.Submit, keys.Next, keys.Register, keys.Guest, keys.Quit,
	})
}
