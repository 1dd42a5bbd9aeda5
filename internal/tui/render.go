package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/aidar/turmas/internal/view"
)

// View renders the active screen, or the first pending modal on top of it
func (m Model) View() string {
	var body string
	switch m.screen {
	case view.RouteNew:
		body = m.renderNewGroup()
	case view.RoutePlayers:
		body = m.renderRoster()
	default:
		body = m.renderGroups()
	}

	if len(m.modals) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", renderModal(m.modals[0]))
	}
	return body + "\n"
}

func (m Model) renderHeader(showBack bool) string {
	logo := logoStyle.Render("● turmas")
	if !showBack {
		return logo
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, backStyle.Render("‹ esc  "), logo)
}

func renderHighlight(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		subtitleStyle.Render(subtitle),
	)
}

func (m Model) renderGroups() string {
	state := m.groups.State()

	var b strings.Builder
	b.WriteString(m.renderHeader(false))
	b.WriteString("\n")
	b.WriteString(renderHighlight(state.Title, state.Subtitle))
	b.WriteString("\n")

	switch {
	case state.Loading:
		b.WriteString(m.spinner.View())
	case state.EmptyMessage != "":
		b.WriteString(emptyStyle.Render(state.EmptyMessage))
	default:
		for i, group := range state.Groups {
			b.WriteString(renderCard("👥 "+group, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(buttonPrimaryStyle.Render(view.NewGroupButton))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Open, m.keys.New, m.keys.Reload, m.keys.Quit}))
	return b.String()
}

func (m Model) renderNewGroup() string {
	state := m.newGroup.State()

	var b strings.Builder
	b.WriteString(m.renderHeader(true))
	b.WriteString("\n")
	b.WriteString(renderHighlight(state.Title, state.Subtitle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if state.Creating {
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	}
	b.WriteString(buttonPrimaryStyle.Render(view.NewGroupCreate))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Back}))
	return b.String()
}

func (m Model) renderRoster() string {
	state := m.roster.State()

	var b strings.Builder
	b.WriteString(m.renderHeader(true))
	b.WriteString("\n")
	b.WriteString(renderHighlight(state.Group, state.Subtitle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(state.Teams)+1)
	for _, team := range state.Teams {
		if team == state.Team {
			tabs = append(tabs, tabActiveStyle.Render(strings.ToUpper(team)))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(strings.ToUpper(team)))
		}
	}
	tabs = append(tabs, countStyle.Render(strconv.Itoa(state.Count)))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
	b.WriteString("\n")

	switch {
	case state.Loading:
		b.WriteString(m.spinner.View())
	case state.EmptyMessage != "":
		b.WriteString(emptyStyle.Render(state.EmptyMessage))
	default:
		for i, player := range state.Players {
			b.WriteString(renderCard("👤 "+player.Name, !m.input.Focused() && i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(buttonSecondaryStyle.Render(view.RemoveGroupButton))
	b.WriteString("\n")

	bindings := []key.Binding{m.keys.Submit, m.keys.Team, m.keys.Back}
	if !m.input.Focused() {
		bindings = []key.Binding{m.keys.Edit, m.keys.Team, m.keys.Up, m.keys.Down, m.keys.Remove, m.keys.Delete, m.keys.Back}
	}
	b.WriteString(m.help.ShortHelpView(bindings))
	return b.String()
}

func renderCard(text string, selected bool) string {
	if selected {
		return cardSelectedStyle.Render("› " + text)
	}
	return cardStyle.Render("  " + text)
}

func renderModal(md modal) string {
	parts := []string{modalTitleStyle.Render(md.title), md.message}

	if len(md.choices) == 0 {
		parts = append(parts, "", choiceSelectedStyle.Render("OK"))
		return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	buttons := make([]string, len(md.choices))
	for i, c := range md.choices {
		switch {
		case i != md.selected:
			buttons[i] = choiceStyle.Render(c.Text)
		case c.Style == view.ChoiceDestructive:
			buttons[i] = choiceDestructiveSelectedStyle.Render(c.Text)
		default:
			buttons[i] = choiceSelectedStyle.Render(c.Text)
		}
	}
	parts = append(parts, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
