package service

import (
	"context"

	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/repository"
)

// Stats represents combined statistics
type Stats struct {
	Groups       []*domain.GroupStats `json:"groups"`
	TotalGroups  int                  `json:"total_groups"`
	TotalPlayers int                  `json:"total_players"`
}

// StatsService handles statistics queries
type StatsService struct {
	groupRepo repository.GroupRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(groupRepo repository.GroupRepository) *StatsService {
	return &StatsService{groupRepo: groupRepo}
}

// GetStats returns per-group team counts and overall totals
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	groups, err := s.groupRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Groups:      groups,
		TotalGroups: len(groups),
	}
	for _, g := range groups {
		stats.TotalPlayers += g.Total
	}

	return stats, nil
}

// GroupStats returns the team counts of a single group
func (s *StatsService) GroupStats(ctx context.Context, groupName string) (*domain.GroupStats, error) {
	groupName = domain.NormalizeName(groupName)

	groups, err := s.groupRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.GroupName == groupName {
			return g, nil
		}
	}

	return nil, domain.ErrGroupNotFound
}
