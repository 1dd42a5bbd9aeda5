package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidar/turmas/internal/domain"
)

func TestTeamSplitter_Split(t *testing.T) {
	splitter := NewTeamSplitterWithSeed(42)

	t.Run("empty roster", func(t *testing.T) {
		assert.Empty(t, splitter.Split(nil))
	})

	for _, n := range []int{1, 2, 5, 10, 11} {
		t.Run(fmt.Sprintf("%d players", n), func(t *testing.T) {
			players := make([]domain.Player, n)
			for i := range players {
				players[i] = domain.Player{Name: fmt.Sprintf("P%d", i), Team: domain.TeamA}
			}

			result := splitter.Split(players)

			counts := map[string]int{}
			for i, p := range result {
				assert.Equal(t, players[i].Name, p.Name, "order must be preserved")
				assert.True(t, domain.IsValidTeam(p.Team))
				counts[p.Team]++
			}
			assert.Equal(t, (n+1)/2, counts[domain.TeamA])
			assert.Equal(t, n/2, counts[domain.TeamB])

			// Input is not modified
			for _, p := range players {
				assert.Equal(t, domain.TeamA, p.Team)
			}
		})
	}
}
