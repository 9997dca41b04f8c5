// Package tui is the terminal front end: login, registration, and a mock
// store listing, driven by bubbletea.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// Directory is the subset of the credential directory the screens call.
type Directory interface {
	Register(ctx context.Context, reg model.Registration) (model.Identity, error)
	Authenticate(ctx context.Context, email, password string) (model.Identity, error)
	GuestAuthenticate() model.Identity
}

// Catalog is the product lookup used by the home screen.
type Catalog interface {
	Search(ctx context.Context, query string) ([]model.Product, error)
}

// Model is the root bubbletea model. It routes messages to the screen the
// session is on and rebuilds a screen's state whenever it is entered.
type Model struct {
	ctx     context.Context
	dir     Directory
	catalog Catalog
	session *application.Session
	logger  *slog.Logger
	help    help.Model

	login    loginScreen
	register registerScreen
	home     homeScreen
}

// New creates the root model on the login screen.
func New(ctx context.Context, dir Directory, catalog Catalog, session *application.Session, logger *slog.Logger) Model {
	m := Model{
		ctx:      ctx,
		dir:      dir,
		catalog:  catalog,
		session:  session,
		logger:   logger,
		help:     help.New(),
		login:    newLoginScreen(),
		register: newRegisterScreen(),
		home:     newHomeScreen(),
	}
	m, _ = m.enter(session.Screen())
	return m
}

// Init starts the cursor blinking and, on the home screen, loads products.
func (m Model) Init() tea.Cmd {
	if m.session.Screen() == model.ScreenHome {
		return tea.Batch(textinput.Blink, m.searchCmd(m.home.search.Value()))
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Dismiss):
			if m.session.Notice() != nil {
				m.session.DismissNotice()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.session.Screen() {
	case model.ScreenLogin:
		m, cmd = m.updateLogin(msg)
	case model.ScreenRegister:
		m, cmd = m.updateRegister(msg)
	case model.ScreenHome:
		m, cmd = m.updateHome(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.session.Screen() {
	case model.ScreenLogin:
		body = m.viewLogin()
	case model.ScreenRegister:
		body = m.viewRegister()
	case model.ScreenHome:
		body = m.viewHome()
	}

	if n := m.session.Notice(); n != nil {
		banner := noticeStyle.Render(successStyle.Render(n.Text+", "+n.Username+"!") + "  " +
			labelStyle.Render(keys.Dismiss.Help().Key+" OK"))
		body = banner + "\n" + body
	}
	return frameStyle.Render(body)
}

// fire applies event to the session and, on success, resets the screen it
// lands on.
func (m Model) fire(event model.Event, id model.Identity) (Model, tea.Cmd) {
	if err := m.session.Fire(event, id); err != nil {
		m.logger.Warn("navigation rejected", "event", event, "screen", m.session.Screen(), "error", err)
		return m, nil
	}
	m.logger.Debug("navigated", "event", event, "screen", m.session.Screen())
	return m.enter(m.session.Screen())
}

// enter resets the state of screen and returns the commands it needs.
func (m Model) enter(screen model.Screen) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch screen {
	case model.ScreenLogin:
		m.login = newLoginScreen()
		cmd = m.login.form.focusFirst()
	case model.ScreenRegister:
		m.register = newRegisterScreen()
		cmd = m.register.form.focusFirst()
	case model.ScreenHome:
		m.home = newHomeScreen()
		cmd = tea.Batch(m.home.search.Focus(), m.searchCmd(""))
	}
	return m, cmd
}

// Run starts the program on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
