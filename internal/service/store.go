package service

import (
	"context"

	"github.com/aidar/turmas/internal/domain"
)

// Store exposes group and roster operations through the narrow contract
// the screens depend on (see view.Store). It is the local counterpart of
// client.Client.
type Store struct {
	groups  *GroupService
	players *PlayerService
}

// NewStore creates a Store over the group and player services
func NewStore(groups *GroupService, players *PlayerService) *Store {
	return &Store{groups: groups, players: players}
}

// GetAllGroups returns the names of all groups in creation order
func (s *Store) GetAllGroups(ctx context.Context) ([]string, error) {
	return s.groups.GroupNames(ctx)
}

// CreateGroup creates an empty group
func (s *Store) CreateGroup(ctx context.Context, name string) error {
	_, err := s.groups.CreateGroup(ctx, name)
	return err
}

// RemoveGroup deletes a group and all its players
func (s *Store) RemoveGroup(ctx context.Context, name string) error {
	return s.groups.RemoveGroup(ctx, name)
}

// AddPlayerToGroup adds a player to a group
func (s *Store) AddPlayerToGroup(ctx context.Context, player domain.Player, group string) error {
	_, err := s.players.AddPlayer(ctx, group, player)
	return err
}

// RemovePlayerFromGroup removes a player from a group
func (s *Store) RemovePlayerFromGroup(ctx context.Context, playerName, group string) error {
	return s.players.RemovePlayer(ctx, group, playerName)
}

// GetPlayersByGroupAndTeam returns the roster of one team
func (s *Store) GetPlayersByGroupAndTeam(ctx context.Context, group, team string) ([]domain.Player, error) {
	return s.players.PlayersByTeam(ctx, group, team)
}

// ShuffleTeams re-splits the players of a group across both teams
func (s *Store) ShuffleTeams(ctx context.Context, group string) ([]domain.Player, error) {
	return s.players.ShuffleTeams(ctx, group)
}
