package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/events"
	"github.com/aidar/turmas/internal/repository"
)

// GroupService handles business logic for groups
type GroupService struct {
	groupRepo repository.GroupRepository
	publisher events.Publisher
	clock     clockwork.Clock
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo repository.GroupRepository, publisher events.Publisher, clock clockwork.Clock) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		publisher: publisher,
		clock:     clock,
	}
}

// CreateGroup creates a new, empty group
func (s *GroupService) CreateGroup(ctx context.Context, name string) (*domain.Group, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	// Check if group already exists
	exists, err := s.groupRepo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check group: %w", err)
	}
	if exists {
		return nil, domain.ErrGroupExists
	}

	group := &domain.Group{
		Name:      name,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.GroupCreated,
		Group:      name,
		OccurredAt: group.CreatedAt,
	})

	return group, nil
}

// GroupNames returns the names of all groups in creation order
func (s *GroupService) GroupNames(ctx context.Context) ([]string, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(groups))
	for i, group := range groups {
		names[i] = group.Name
	}
	return names, nil
}

// RemoveGroup deletes a group together with all its players
func (s *GroupService) RemoveGroup(ctx context.Context, name string) error {
	name = domain.NormalizeName(name)
	if err := s.groupRepo.Delete(ctx, name); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.GroupRemoved,
		Group:      name,
		OccurredAt: s.clock.Now().UTC(),
	})

	return nil
}
