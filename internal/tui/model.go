// Package tui renders the groups and roster screens in the terminal with
// Bubbletea. Store calls run as tea commands; views report navigation and
// dialogs through the host, which the model drains after each command.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aidar/turmas/internal/view"
)

// viewChangedMsg is sent when a view operation finished
type viewChangedMsg struct {
	// syncInput copies the view's composed name back into the input
	syncInput bool
}

// modal is a pending alert (no choices) or confirmation
type modal struct {
	title    string
	message  string
	choices  []view.Choice
	selected int
}

// Model is the Bubbletea model of the application
type Model struct {
	ctx    context.Context
	store  view.Store
	logger *slog.Logger
	host   *host
	keys   keyMap
	help   help.Model

	screen   view.Route
	groups   *view.GroupListView
	roster   *view.RosterView
	newGroup *view.NewGroupView

	cursor  int
	input   textinput.Model
	spinner spinner.Model
	modals  []modal

	width  int
	height int
}

// New creates the model, starting on the groups screen
func New(ctx context.Context, store view.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = logoStyle

	h := &host{}
	return Model{
		ctx:     ctx,
		store:   store,
		logger:  logger,
		host:    h,
		keys:    defaultKeyMap(),
		help:    help.New(),
		screen:  view.RouteGroups,
		groups:  view.NewGroupListView(store, h, h, logger),
		input:   ti,
		spinner: sp,
	}
}

// Init starts the spinner and loads the groups
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start())
}

// start activates the initial screen
func (m Model) start() tea.Cmd {
	return m.run(m.groups.OnActivate, false)
}

// run executes a view operation off the event loop
func (m Model) run(op func(context.Context), syncInput bool) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		op(ctx)
		return viewChangedMsg{syncInput: syncInput}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case viewChangedMsg:
		if msg.syncInput && m.screen == view.RoutePlayers && m.roster != nil {
			state := m.roster.State()
			m.input.SetValue(state.PlayerName)
			if !state.InputFocused {
				m.input.Blur()
			}
		}
		return m.applyRequests()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if len(m.modals) > 0 {
			return m.handleModalKey(msg)
		}
		switch m.screen {
		case view.RouteNew:
			return m.handleNewGroupKey(msg)
		case view.RoutePlayers:
			return m.handleRosterKey(msg)
		default:
			return m.handleGroupsKey(msg)
		}
	}

	return m, nil
}

// applyRequests handles navigation and dialogs queued by the views
func (m Model) applyRequests() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, r := range m.host.drain() {
		switch r.kind {
		case requestNavigate:
			var cmd tea.Cmd
			m, cmd = m.navigate(r.route, r.params)
			cmds = append(cmds, cmd)
		case requestAlert:
			m.modals = append(m.modals, modal{title: r.title, message: r.message})
		case requestConfirm:
			m.modals = append(m.modals, newConfirm(r.title, r.message, r.choices))
		}
	}
	return m, tea.Batch(cmds...)
}

// newConfirm builds a confirmation with the cancel choice preselected
func newConfirm(title, message string, choices []view.Choice) modal {
	md := modal{title: title, message: message, choices: choices}
	for i, c := range choices {
		if c.Style == view.ChoiceCancel {
			md.selected = i
			break
		}
	}
	return md
}

// navigate switches screens, creating a fresh view for the target
func (m Model) navigate(route view.Route, params *view.RouteParams) (Model, tea.Cmd) {
	m.cursor = 0
	m.input.Reset()

	switch route {
	case view.RouteNew:
		m.screen = route
		m.newGroup = view.NewNewGroupView(m.store, m.host, m.host, m.logger)
		m.input.Placeholder = view.NewGroupPlaceholder
		m.input.Focus()
		return m, nil

	case view.RoutePlayers:
		if params == nil || params.Group == "" {
			m.logger.Warn("Ignoring navigation without group", "route", route)
			return m, nil
		}
		m.screen = route
		m.roster = view.NewRosterView(view.RosterParams{Group: params.Group}, m.store, m.host, m.host, m.logger)
		m.roster.FocusInput()
		m.input.Placeholder = view.PlayerPlaceholder
		m.input.Focus()
		return m, m.run(m.roster.OnActivate, false)

	default:
		m.screen = view.RouteGroups
		m.groups = view.NewGroupListView(m.store, m.host, m.host, m.logger)
		m.input.Blur()
		return m, m.run(m.groups.OnActivate, false)
	}
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	md := &m.modals[0]

	// Alert: any confirming key dismisses it
	if len(md.choices) == 0 {
		if key.Matches(msg, m.keys.Confirm, m.keys.Dismiss) {
			m.modals = m.modals[1:]
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		md.selected = (md.selected + len(md.choices) - 1) % len(md.choices)
	case key.Matches(msg, m.keys.Right):
		md.selected = (md.selected + 1) % len(md.choices)
	case key.Matches(msg, m.keys.Dismiss):
		m.modals = m.modals[1:]
	case key.Matches(msg, m.keys.Confirm):
		choice := md.choices[md.selected]
		m.modals = m.modals[1:]
		if choice.OnPress != nil {
			return m, m.run(choice.OnPress, false)
		}
	}
	return m, nil
}

func (m Model) handleGroupsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.groups.State().Groups

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(groups)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(groups) {
			m.groups.OpenGroup(groups[m.cursor])
			return m.applyRequests()
		}
	case key.Matches(msg, m.keys.New):
		m.groups.NewGroup()
		return m.applyRequests()
	case key.Matches(msg, m.keys.Reload):
		return m, m.run(m.groups.OnActivate, false)
	}
	return m, nil
}

func (m Model) handleNewGroupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.navigate(view.RouteGroups, nil)
	case key.Matches(msg, m.keys.Submit):
		m.newGroup.SetName(m.input.Value())
		return m, m.run(m.newGroup.Create, false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Team) {
		cmd := m.switchTeam()
		return m, cmd
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.roster.SetPlayerName(m.input.Value())
			return m, m.run(m.roster.AddPlayer, true)
		case key.Matches(msg, m.keys.Back):
			m.roster.BlurInput()
			m.input.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	players := m.roster.State().Players

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.navigate(view.RouteGroups, nil)
	case key.Matches(msg, m.keys.Edit):
		m.roster.FocusInput()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(players)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Remove):
		if m.cursor < len(players) {
			name := players[m.cursor].Name
			if m.cursor > 0 && m.cursor == len(players)-1 {
				m.cursor--
			}
			return m, m.run(func(ctx context.Context) { m.roster.RemovePlayer(ctx, name) }, false)
		}
	case key.Matches(msg, m.keys.Delete):
		m.roster.RequestGroupRemoval()
		return m.applyRequests()
	}
	return m, nil
}

// switchTeam moves the filter to the next team
func (m *Model) switchTeam() tea.Cmd {
	state := m.roster.State()
	next := state.Teams[0]
	for i, team := range state.Teams {
		if team == state.Team {
			next = state.Teams[(i+1)%len(state.Teams)]
			break
		}
	}
	m.cursor = 0
	roster := m.roster
	return m.run(func(ctx context.Context) { roster.OnFilterChange(ctx, next) }, false)
}
