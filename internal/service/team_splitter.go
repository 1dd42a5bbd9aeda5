package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aidar/turmas/internal/domain"
)

// TeamSplitter handles the logic of splitting a group into two teams
type TeamSplitter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTeamSplitter creates a new TeamSplitter with its own random source
func NewTeamSplitter() *TeamSplitter {
	return NewTeamSplitterWithSeed(time.Now().UnixNano())
}

// NewTeamSplitterWithSeed creates a TeamSplitter with a deterministic random source
func NewTeamSplitterWithSeed(seed int64) *TeamSplitter {
	return &TeamSplitter{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Split randomly assigns players to "Time A" and "Time B".
// Team sizes differ by at most one; "Time A" gets the extra player.
// The result keeps the input order, only Team changes.
func (s *TeamSplitter) Split(players []domain.Player) []domain.Player {
	if len(players) == 0 {
		return []domain.Player{}
	}

	// Randomly shuffle positions and send the first half to Time A
	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}

	s.mu.Lock()
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	s.mu.Unlock()

	sizeA := (len(players) + 1) / 2
	result := make([]domain.Player, len(players))
	copy(result, players)
	for rank, idx := range order {
		if rank < sizeA {
			result[idx].Team = domain.TeamA
		} else {
			result[idx].Team = domain.TeamB
		}
	}

	return result
}
