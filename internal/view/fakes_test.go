package view

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/aidar/turmas/internal/domain"
)

// fakeStore keeps groups and players in memory and records calls.
// Setting an err* field makes the matching operation fail.
type fakeStore struct {
	mu      sync.Mutex
	groups  []string
	players map[string][]domain.Player
	calls   []string

	errGetAll  error
	errCreate  error
	errRemove  error
	errAdd     error
	errRemoveP error
	errGet     error

	// blockAdd, when set, is received from before AddPlayerToGroup returns
	blockAdd chan struct{}
	// blockFetch holds GetPlayersByGroupAndTeam for the given team until closed
	blockFetch map[string]chan struct{}
}

func newFakeStore(groups ...string) *fakeStore {
	return &fakeStore{groups: groups, players: map[string][]domain.Player{}}
}

func (s *fakeStore) record(call string) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

func (s *fakeStore) callCount(call string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (s *fakeStore) GetAllGroups(context.Context) ([]string, error) {
	s.record("GetAllGroups")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errGetAll != nil {
		return nil, s.errGetAll
	}
	return append([]string(nil), s.groups...), nil
}

func (s *fakeStore) CreateGroup(_ context.Context, name string) error {
	s.record("CreateGroup")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errCreate != nil {
		return s.errCreate
	}
	s.groups = append(s.groups, name)
	return nil
}

func (s *fakeStore) RemoveGroup(_ context.Context, name string) error {
	s.record("RemoveGroup")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errRemove != nil {
		return s.errRemove
	}
	for i, g := range s.groups {
		if g == name {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			delete(s.players, name)
			return nil
		}
	}
	return domain.ErrGroupNotFound
}

func (s *fakeStore) AddPlayerToGroup(_ context.Context, player domain.Player, group string) error {
	s.record("AddPlayerToGroup")
	if s.blockAdd != nil {
		<-s.blockAdd
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errAdd != nil {
		return s.errAdd
	}
	for _, p := range s.players[group] {
		if p.Name == player.Name {
			return domain.ErrPlayerExists
		}
	}
	s.players[group] = append(s.players[group], player)
	return nil
}

func (s *fakeStore) RemovePlayerFromGroup(_ context.Context, playerName, group string) error {
	s.record("RemovePlayerFromGroup")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errRemoveP != nil {
		return s.errRemoveP
	}
	players := s.players[group]
	for i, p := range players {
		if p.Name == playerName {
			s.players[group] = append(players[:i], players[i+1:]...)
			return nil
		}
	}
	return domain.ErrPlayerNotFound
}

func (s *fakeStore) GetPlayersByGroupAndTeam(_ context.Context, group, team string) ([]domain.Player, error) {
	s.record("GetPlayersByGroupAndTeam:" + team)
	if block, ok := s.blockFetch[team]; ok {
		<-block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errGet != nil {
		return nil, s.errGet
	}
	var out []domain.Player
	for _, p := range s.players[group] {
		if p.Team == team {
			out = append(out, p)
		}
	}
	return out, nil
}

type navigation struct {
	route  Route
	params *RouteParams
}

type fakeNavigator struct {
	navigations []navigation
}

func (n *fakeNavigator) Navigate(route Route, params *RouteParams) {
	n.navigations = append(n.navigations, navigation{route: route, params: params})
}

type alert struct {
	title, message string
}

type confirm struct {
	title, message string
	choices        []Choice
}

type fakeDialogs struct {
	mu       sync.Mutex
	alerts   []alert
	confirms []confirm
}

func (d *fakeDialogs) Alert(title, message string) {
	d.mu.Lock()
	d.alerts = append(d.alerts, alert{title, message})
	d.mu.Unlock()
}

func (d *fakeDialogs) Confirm(title, message string, choices []Choice) {
	d.confirms = append(d.confirms, confirm{title, message, choices})
}

// press runs the choice labelled text of the last confirmation
func (d *fakeDialogs) press(ctx context.Context, text string) {
	last := d.confirms[len(d.confirms)-1]
	for _, c := range last.choices {
		if c.Text == text && c.OnPress != nil {
			c.OnPress(ctx)
		}
	}
}

var errDisk = errors.New("disk unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
