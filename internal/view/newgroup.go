package view

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/aidar/turmas/internal/domain"
)

// NewGroupState is a snapshot of the group creation screen
type NewGroupState struct {
	Title    string
	Subtitle string
	Name     string
	Creating bool
}

// NewGroupView creates a group and opens its roster
type NewGroupView struct {
	store   Store
	nav     Navigator
	dialogs Dialogs
	logger  *slog.Logger

	mu       sync.Mutex
	name     string
	creating atomic.Bool
}

// NewNewGroupView creates the group creation screen
func NewNewGroupView(store Store, nav Navigator, dialogs Dialogs, logger *slog.Logger) *NewGroupView {
	if logger == nil {
		logger = slog.Default()
	}
	return &NewGroupView{
		store:   store,
		nav:     nav,
		dialogs: dialogs,
		logger:  logger.With("view", "new"),
	}
}

// SetName updates the group name being composed
func (v *NewGroupView) SetName(name string) {
	v.mu.Lock()
	v.name = name
	v.mu.Unlock()
}

// Create creates the group and navigates to its roster
func (v *NewGroupView) Create(ctx context.Context) {
	v.mu.Lock()
	name := strings.TrimSpace(v.name)
	v.mu.Unlock()

	if name == "" {
		v.dialogs.Alert(NewGroupAlertTitle, NewGroupEmptyName)
		return
	}

	if !v.creating.CompareAndSwap(false, true) {
		return
	}
	defer v.creating.Store(false)

	if err := v.store.CreateGroup(ctx, name); err != nil {
		if domainErr, ok := domain.AsDomainError(err); ok {
			v.dialogs.Alert(NewGroupAlertTitle, domainErr.Message)
			return
		}
		v.logger.Error("Failed to create group", "group", name, "error", err)
		v.dialogs.Alert(NewGroupAlertTitle, NewGroupFailed)
		return
	}

	v.mu.Lock()
	v.name = ""
	v.mu.Unlock()

	v.nav.Navigate(RoutePlayers, &RouteParams{Group: name})
}

// State returns a snapshot for rendering
func (v *NewGroupView) State() NewGroupState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return NewGroupState{
		Title:    NewGroupTitle,
		Subtitle: NewGroupSubtitle,
		Name:     v.name,
		Creating: v.creating.Load(),
	}
}
