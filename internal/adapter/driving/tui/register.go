package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
)

// registerScreen collects a username, email, and password.
type registerScreen struct {
	form    form
	message string
	pending bool
}

func newRegisterScreen() registerScreen {
	return registerScreen{
		form: newForm(
			field{label: "Username", placeholder: "alice"},
			field{label: "Email", placeholder: "you@example.com"},
			field{label: "Password", placeholder: "password", secret: true},
		),
	}
}

// registerResultMsg carries the outcome of a Register call.
type registerResultMsg struct {
	identity model.Identity
	err      error
}

func (m Model) updateRegister(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.register.pending = false
		switch {
		case msg.err == nil:
			return m.fire(model.EventRegistered, msg.identity)
		case errors.Is(msg.err, model.ErrValidation):
			m.register.message = "Please complete all fields correctly"
		case errors.Is(msg.err, model.ErrDuplicateEmail):
			m.register.message = "Email is already registered"
		default:
			m.logger.Error("registration failed", "error", msg.err)
			m.register.message = "Something went wrong, please try again"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Submit):
			if m.register.pending {
				return m, nil
			}
			m.register.pending = true
			return m, m.registerCmd(model.Registration{
				Username: m.register.form.value(registerUsername),
				Email:    m.register.form.value(registerEmail),
				Password: m.register.form.value(registerPassword),
			})
		case key.Matches(msg, keys.Back):
			return m.fire(model.EventOpenLogin, model.Identity{})
		}
	}

	cmd := m.register.form.update(msg)
	return m, cmd
}

func (m Model) registerCmd(reg model.Registration) tea.Cmd {
	return func() tea.Msg {
		id, err := m.dir.Register(m.ctx, reg)
		return registerResultMsg{identity: id, err: err}
	}
}

func (m Model) viewRegister() string {
	email := m.register.form.value(registerEmail)
	flagged := map[int]bool{registerEmail: email != "" && !application.ValidEmail(email)}

	body := titleStyle.Render("Create an account") + "\n" + m.register.form.view(flagged)
	if m.register.message != "" {
		body += messageStyle.Render(errorStyle.Render(m.register.message)) + "\n"
	}
	return body + "\n" + m.help.ShortHelpView([]key.Binding{
		keys.Submit, keys.Next, keys.Back, keys.Quit,
	})
}
