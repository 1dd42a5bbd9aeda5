package view

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// GroupListState is a snapshot of the groups screen
type GroupListState struct {
	Title    string
	Subtitle string
	Status   Status
	Loading  bool
	Groups   []string
	// EmptyMessage is set when the loaded list is empty
	EmptyMessage string
}

// GroupListView lists all groups and opens them
type GroupListView struct {
	store   Store
	nav     Navigator
	dialogs Dialogs
	logger  *slog.Logger

	mu     sync.Mutex
	status Status
	groups []string
}

// NewGroupListView creates the groups screen
func NewGroupListView(store Store, nav Navigator, dialogs Dialogs, logger *slog.Logger) *GroupListView {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupListView{
		store:   store,
		nav:     nav,
		dialogs: dialogs,
		logger:  logger.With("view", "groups"),
	}
}

// OnActivate fetches all groups. Called every time the screen gains focus.
func (v *GroupListView) OnActivate(ctx context.Context) {
	v.mu.Lock()
	v.status = StatusLoading
	v.mu.Unlock()

	groups, err := v.store.GetAllGroups(ctx)

	v.mu.Lock()
	if err != nil {
		v.status = StatusFailed
		v.mu.Unlock()

		v.logger.Error("Failed to load groups", "error", err)
		v.dialogs.Alert(GroupsTitle, GroupsLoadFailed)
		return
	}
	v.groups = groups
	v.status = StatusLoaded
	v.mu.Unlock()
}

// OpenGroup navigates to the roster of group
func (v *GroupListView) OpenGroup(group string) {
	v.nav.Navigate(RoutePlayers, &RouteParams{Group: group})
}

// NewGroup navigates to group creation
func (v *GroupListView) NewGroup() {
	v.nav.Navigate(RouteNew, nil)
}

// State returns a snapshot for rendering
func (v *GroupListView) State() GroupListState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := GroupListState{
		Title:    GroupsTitle,
		Subtitle: GroupsSubtitle,
		Status:   v.status,
		Loading:  v.status.showsLoading(),
		Groups:   slices.Clone(v.groups),
	}
	if !state.Loading && len(state.Groups) == 0 {
		state.EmptyMessage = GroupsEmpty
	}
	return state
}
