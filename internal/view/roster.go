package view

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aidar/turmas/internal/domain"
)

// RosterParams identifies the group a roster screen shows
type RosterParams struct {
	Group string
}

// RosterState is a snapshot of the roster screen
type RosterState struct {
	Group        string
	Subtitle     string
	Teams        []string
	Team         string
	PlayerName   string
	InputFocused bool
	Status       Status
	Loading      bool
	Players      []domain.Player
	Count        int
	// EmptyMessage is set when the loaded roster is empty
	EmptyMessage string
}

// RosterView shows the players of one team of a group and edits the group
type RosterView struct {
	params  RosterParams
	store   Store
	nav     Navigator
	dialogs Dialogs
	logger  *slog.Logger

	mu           sync.Mutex
	team         string
	playerName   string
	inputFocused bool
	status       Status
	players      []domain.Player

	// mutating is set while an add/remove is in flight; further mutations are dropped
	mutating atomic.Bool
}

// NewRosterView creates the roster screen for params.Group, filtered on "Time A"
func NewRosterView(params RosterParams, store Store, nav Navigator, dialogs Dialogs, logger *slog.Logger) *RosterView {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterView{
		params:  params,
		store:   store,
		nav:     nav,
		dialogs: dialogs,
		logger:  logger.With("view", "players", "group", params.Group),
		team:    domain.TeamA,
	}
}

// Group returns the group shown by the view
func (v *RosterView) Group() string {
	return v.params.Group
}

// OnActivate fetches the roster of the active team
func (v *RosterView) OnActivate(ctx context.Context) {
	v.fetch(ctx)
}

// OnFilterChange switches the team filter and fetches its roster.
// Selecting the active team or an unknown team does nothing.
func (v *RosterView) OnFilterChange(ctx context.Context, team string) {
	if !domain.IsValidTeam(team) {
		v.logger.Warn("Ignoring unknown team", "team", team)
		return
	}

	v.mu.Lock()
	if v.team == team {
		v.mu.Unlock()
		return
	}
	v.team = team
	v.mu.Unlock()

	v.fetch(ctx)
}

// SetPlayerName updates the name being composed
func (v *RosterView) SetPlayerName(name string) {
	v.mu.Lock()
	v.playerName = name
	v.mu.Unlock()
}

// FocusInput marks the name input as focused
func (v *RosterView) FocusInput() {
	v.mu.Lock()
	v.inputFocused = true
	v.mu.Unlock()
}

// BlurInput marks the name input as not focused
func (v *RosterView) BlurInput() {
	v.mu.Lock()
	v.inputFocused = false
	v.mu.Unlock()
}

// AddPlayer adds the composed name to the active team
func (v *RosterView) AddPlayer(ctx context.Context) {
	v.mu.Lock()
	name := strings.TrimSpace(v.playerName)
	team := v.team
	v.mu.Unlock()

	if name == "" {
		v.dialogs.Alert(NewPlayerTitle, NewPlayerEmptyName)
		return
	}

	if !v.mutating.CompareAndSwap(false, true) {
		return
	}
	defer v.mutating.Store(false)

	err := v.store.AddPlayerToGroup(ctx, domain.Player{Name: name, Team: team}, v.params.Group)
	if err != nil {
		if domainErr, ok := domain.AsDomainError(err); ok {
			v.dialogs.Alert(NewPlayerTitle, domainErr.Message)
			return
		}
		v.logger.Error("Failed to add player", "player", name, "team", team, "error", err)
		v.dialogs.Alert(NewPlayerTitle, NewPlayerFailed)
		return
	}

	v.mu.Lock()
	v.inputFocused = false
	v.playerName = ""
	v.mu.Unlock()

	v.fetch(ctx)
}

// RemovePlayer removes a player from the group
func (v *RosterView) RemovePlayer(ctx context.Context, playerName string) {
	if !v.mutating.CompareAndSwap(false, true) {
		return
	}
	defer v.mutating.Store(false)

	if err := v.store.RemovePlayerFromGroup(ctx, playerName, v.params.Group); err != nil {
		v.logger.Error("Failed to remove player", "player", playerName, "error", err)
		v.dialogs.Alert(RemovePlayerTitle, RemovePlayerFailed)
		return
	}

	v.fetch(ctx)
}

// RequestGroupRemoval asks for confirmation before removing the group.
// Only the "Sim" choice removes it.
func (v *RosterView) RequestGroupRemoval() {
	v.dialogs.Confirm(ConfirmRemoveTitle, ConfirmRemoveText, []Choice{
		{Text: ConfirmRemoveCancel, Style: ChoiceCancel},
		{Text: ConfirmRemoveAccept, Style: ChoiceDestructive, OnPress: v.removeGroup},
	})
}

func (v *RosterView) removeGroup(ctx context.Context) {
	if !v.mutating.CompareAndSwap(false, true) {
		return
	}
	defer v.mutating.Store(false)

	if err := v.store.RemoveGroup(ctx, v.params.Group); err != nil {
		v.logger.Error("Failed to remove group", "error", err)
		v.dialogs.Alert(RemoveGroupTitle, RemoveGroupFailed)
		return
	}

	v.nav.Navigate(RouteGroups, nil)
}

// fetch replaces the roster with the players of the active team.
// A result for a team that is no longer active is dropped.
func (v *RosterView) fetch(ctx context.Context) {
	v.mu.Lock()
	team := v.team
	v.status = StatusLoading
	v.mu.Unlock()

	players, err := v.store.GetPlayersByGroupAndTeam(ctx, v.params.Group, team)

	v.mu.Lock()
	if team != v.team {
		v.mu.Unlock()
		return
	}
	if err != nil {
		v.status = StatusFailed
		v.mu.Unlock()

		v.logger.Error("Failed to load players", "team", team, "error", err)
		v.dialogs.Alert(NewPlayerTitle, RosterLoadFailed)
		return
	}
	v.players = players
	v.status = StatusLoaded
	v.mu.Unlock()
}

// State returns a snapshot for rendering
func (v *RosterView) State() RosterState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := RosterState{
		Group:        v.params.Group,
		Subtitle:     RosterSubtitle,
		Teams:        domain.Teams(),
		Team:         v.team,
		PlayerName:   v.playerName,
		InputFocused: v.inputFocused,
		Status:       v.status,
		Loading:      v.status.showsLoading(),
		Players:      slices.Clone(v.players),
		Count:        len(v.players),
	}
	if !state.Loading && len(state.Players) == 0 {
		state.EmptyMessage = RosterEmpty
	}
	return state
}
