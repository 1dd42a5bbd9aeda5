package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/turmas/internal/domain"
)

func newTestRepositories(t *testing.T) (*GroupRepository, *PlayerRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "turmas.db"))
	require.NoError(t, err, "Failed to open database")
	t.Cleanup(func() { _ = db.Close() })

	return NewGroupRepository(db), NewPlayerRepository(db)
}

func createGroup(t *testing.T, repo *GroupRepository, name string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.Group{Name: name, CreatedAt: time.Now()}))
}

func TestGroupRepository(t *testing.T) {
	groups, players := newTestRepositories(t)
	ctx := context.Background()

	t.Run("List is empty on a fresh database", func(t *testing.T) {
		list, err := groups.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Create keeps creation order", func(t *testing.T) {
		createGroup(t, groups, "U13")
		createGroup(t, groups, "U11")

		list, err := groups.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "U13", list[0].Name)
		assert.Equal(t, "U11", list[1].Name)
	})

	t.Run("Create rejects duplicate names", func(t *testing.T) {
		err := groups.Create(ctx, &domain.Group{Name: "U13", CreatedAt: time.Now()})
		assert.ErrorIs(t, err, domain.ErrGroupExists)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := groups.Exists(ctx, "U11")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = groups.Exists(ctx, "U15")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete cascades to players", func(t *testing.T) {
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Alice", Team: domain.TeamA}))
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Bruno", Team: domain.TeamB}))

		require.NoError(t, groups.Delete(ctx, "U11"))

		list, err := players.ListByGroup(ctx, "U11")
		require.NoError(t, err)
		assert.Empty(t, list)

		// Recreating the group starts with an empty roster
		createGroup(t, groups, "U11")
		list, err = players.ListByGroup(ctx, "U11")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Delete unknown group", func(t *testing.T) {
		assert.ErrorIs(t, groups.Delete(ctx, "nope"), domain.ErrGroupNotFound)
	})
}

func TestPlayerRepository(t *testing.T) {
	groups, players := newTestRepositories(t)
	ctx := context.Background()
	createGroup(t, groups, "U11")
	createGroup(t, groups, "U13")

	t.Run("Add and list by team in insertion order", func(t *testing.T) {
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Carla", Team: domain.TeamA}))
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Alice", Team: domain.TeamA}))
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Bruno", Team: domain.TeamB}))

		teamA, err := players.ListByGroupAndTeam(ctx, "U11", domain.TeamA)
		require.NoError(t, err)
		assert.Equal(t, []domain.Player{
			{Name: "Carla", Team: domain.TeamA},
			{Name: "Alice", Team: domain.TeamA},
		}, teamA)

		teamB, err := players.ListByGroupAndTeam(ctx, "U11", domain.TeamB)
		require.NoError(t, err)
		assert.Equal(t, []domain.Player{{Name: "Bruno", Team: domain.TeamB}}, teamB)
	})

	t.Run("Names are unique per group, not per team", func(t *testing.T) {
		err := players.Add(ctx, "U11", domain.Player{Name: "Alice", Team: domain.TeamB})
		assert.ErrorIs(t, err, domain.ErrPlayerExists)

		// Same name in another group is fine
		require.NoError(t, players.Add(ctx, "U13", domain.Player{Name: "Alice", Team: domain.TeamA}))
	})

	t.Run("Add to unknown group", func(t *testing.T) {
		err := players.Add(ctx, "U99", domain.Player{Name: "Dora", Team: domain.TeamA})
		assert.ErrorIs(t, err, domain.ErrGroupNotFound)
	})

	t.Run("Add with invalid team", func(t *testing.T) {
		err := players.Add(ctx, "U11", domain.Player{Name: "Dora", Team: "Time C"})
		assert.ErrorIs(t, err, domain.ErrInvalidTeam)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, players.Remove(ctx, "U11", "Carla"))
		assert.ErrorIs(t, players.Remove(ctx, "U11", "Carla"), domain.ErrPlayerNotFound)

		teamA, err := players.ListByGroupAndTeam(ctx, "U11", domain.TeamA)
		require.NoError(t, err)
		assert.Equal(t, []domain.Player{{Name: "Alice", Team: domain.TeamA}}, teamA)
	})

	t.Run("UpdateTeams", func(t *testing.T) {
		err := players.UpdateTeams(ctx, "U11", []domain.Player{
			{Name: "Alice", Team: domain.TeamB},
			{Name: "Bruno", Team: domain.TeamA},
		})
		require.NoError(t, err)

		all, err := players.ListByGroup(ctx, "U11")
		require.NoError(t, err)
		assert.Equal(t, []domain.Player{
			{Name: "Alice", Team: domain.TeamB},
			{Name: "Bruno", Team: domain.TeamA},
		}, all)
	})

	t.Run("UpdateTeams rolls back on unknown player", func(t *testing.T) {
		err := players.UpdateTeams(ctx, "U11", []domain.Player{
			{Name: "Alice", Team: domain.TeamA},
			{Name: "Ghost", Team: domain.TeamA},
		})
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

		all, err := players.ListByGroup(ctx, "U11")
		require.NoError(t, err)
		assert.Equal(t, domain.TeamB, all[0].Team, "rollback keeps the previous team")
	})

	t.Run("UpdateTeams rejects unknown team", func(t *testing.T) {
		err := players.UpdateTeams(ctx, "U11", []domain.Player{{Name: "Alice", Team: "Time C"}})
		assert.ErrorIs(t, err, domain.ErrInvalidTeam)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := groups.Stats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "U11", stats[0].GroupName)
		assert.Equal(t, 1, stats[0].TeamCounts[domain.TeamA])
		assert.Equal(t, 1, stats[0].TeamCounts[domain.TeamB])
		assert.Equal(t, 2, stats[0].Total)

		assert.Equal(t, "U13", stats[1].GroupName)
		assert.Equal(t, 1, stats[1].Total)
	})
}
