// Package view holds the screen logic of the groups and roster screens as
// host-agnostic view models. A host (the terminal UI, tests) drives the
// lifecycle hooks and renders State snapshots; navigation, dialogs and
// persistence are injected at construction.
package view

import (
	"context"

	"github.com/aidar/turmas/internal/domain"
)

// Route names a screen
type Route string

// Screens
const (
	RouteGroups  Route = "groups"
	RouteNew     Route = "new"
	RoutePlayers Route = "players"
)

// RouteParams carries the typed context of a route. Only RoutePlayers uses it.
type RouteParams struct {
	Group string
}

// Navigator switches the active screen
type Navigator interface {
	Navigate(route Route, params *RouteParams)
}

// ChoiceStyle hints how a host renders a confirmation choice
type ChoiceStyle int

const (
	ChoiceDefault ChoiceStyle = iota
	ChoiceCancel
	ChoiceDestructive
)

// Choice is one option of a confirmation prompt. OnPress may be nil.
type Choice struct {
	Text    string
	Style   ChoiceStyle
	OnPress func(ctx context.Context)
}

// Dialogs shows modal messages. Confirm must treat the ChoiceCancel choice
// as the default selection.
type Dialogs interface {
	Alert(title, message string)
	Confirm(title, message string, choices []Choice)
}

// Store is the persistence the screens depend on. It is implemented by
// service.Store (local) and client.Client (remote).
//
// AddPlayerToGroup and CreateGroup report validation failures as
// *domain.DomainError; every other error is unexpected.
type Store interface {
	GetAllGroups(ctx context.Context) ([]string, error)
	CreateGroup(ctx context.Context, name string) error
	RemoveGroup(ctx context.Context, name string) error
	AddPlayerToGroup(ctx context.Context, player domain.Player, group string) error
	RemovePlayerFromGroup(ctx context.Context, playerName, group string) error
	GetPlayersByGroupAndTeam(ctx context.Context, group, team string) ([]domain.Player, error)
}

// Status is the fetch state of a view
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "error"
	default:
		return "unknown"
	}
}

// showsLoading reports whether the loading indicator is visible.
// A view that has not fetched yet shows it too.
func (s Status) showsLoading() bool {
	return s == StatusIdle || s == StatusLoading
}
