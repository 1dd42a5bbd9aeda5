package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/events"
	"github.com/aidar/turmas/internal/repository"
)

// PlayerService handles business logic for group rosters
type PlayerService struct {
	playerRepo repository.PlayerRepository
	groupRepo  repository.GroupRepository
	splitter   *TeamSplitter
	publisher  events.Publisher
	clock      clockwork.Clock
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(
	playerRepo repository.PlayerRepository,
	groupRepo repository.GroupRepository,
	splitter *TeamSplitter,
	publisher events.Publisher,
	clock clockwork.Clock,
) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		groupRepo:  groupRepo,
		splitter:   splitter,
		publisher:  publisher,
		clock:      clock,
	}
}

// AddPlayer adds a player to a group.
// Names are unique per group regardless of team.
func (s *PlayerService) AddPlayer(ctx context.Context, groupName string, player domain.Player) (*domain.Player, error) {
	groupName = domain.NormalizeName(groupName)
	player.Name = domain.NormalizeName(player.Name)
	if player.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if !domain.IsValidTeam(player.Team) {
		return nil, domain.ErrInvalidTeam
	}

	if err := s.ensureGroup(ctx, groupName); err != nil {
		return nil, err
	}

	if err := s.playerRepo.Add(ctx, groupName, player); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.PlayerAdded,
		Group:      groupName,
		Player:     &player,
		OccurredAt: s.clock.Now().UTC(),
	})

	return &player, nil
}

// RemovePlayer removes a player from a group
func (s *PlayerService) RemovePlayer(ctx context.Context, groupName, playerName string) error {
	groupName = domain.NormalizeName(groupName)
	playerName = domain.NormalizeName(playerName)

	if err := s.playerRepo.Remove(ctx, groupName, playerName); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.PlayerRemoved,
		Group:      groupName,
		Player:     &domain.Player{Name: playerName},
		OccurredAt: s.clock.Now().UTC(),
	})

	return nil
}

// PlayersByTeam returns the roster of one team of a group
func (s *PlayerService) PlayersByTeam(ctx context.Context, groupName, team string) ([]domain.Player, error) {
	groupName = domain.NormalizeName(groupName)
	if !domain.IsValidTeam(team) {
		return nil, domain.ErrInvalidTeam
	}

	if err := s.ensureGroup(ctx, groupName); err != nil {
		return nil, err
	}

	return s.playerRepo.ListByGroupAndTeam(ctx, groupName, team)
}

// ShuffleTeams randomly re-splits all players of a group across both teams
func (s *PlayerService) ShuffleTeams(ctx context.Context, groupName string) ([]domain.Player, error) {
	groupName = domain.NormalizeName(groupName)
	if err := s.ensureGroup(ctx, groupName); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByGroup(ctx, groupName)
	if err != nil {
		return nil, err
	}

	shuffled := s.splitter.Split(players)
	if err := s.playerRepo.UpdateTeams(ctx, groupName, shuffled); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.GroupShuffled,
		Group:      groupName,
		OccurredAt: s.clock.Now().UTC(),
	})

	return shuffled, nil
}

func (s *PlayerService) ensureGroup(ctx context.Context, groupName string) error {
	exists, err := s.groupRepo.Exists(ctx, groupName)
	if err != nil {
		return fmt.Errorf("check group: %w", err)
	}
	if !exists {
		return domain.ErrGroupNotFound
	}
	return nil
}
