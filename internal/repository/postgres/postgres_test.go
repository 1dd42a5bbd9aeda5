package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aidar/turmas/internal/domain"
)

// setupPool запускает PostgreSQL контейнер и применяет миграции
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping PostgreSQL test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("turmas_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool), "Failed to apply migrations")
	// Повторный запуск миграций не должен падать
	require.NoError(t, Migrate(ctx, pool))

	return pool
}

func TestRepositories(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	groups := NewGroupRepository(pool)
	players := NewPlayerRepository(pool)

	t.Run("Create and list groups", func(t *testing.T) {
		require.NoError(t, groups.Create(ctx, &domain.Group{Name: "U11", CreatedAt: time.Now()}))
		require.NoError(t, groups.Create(ctx, &domain.Group{Name: "U13", CreatedAt: time.Now()}))

		list, err := groups.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "U11", list[0].Name)
		assert.Equal(t, "U13", list[1].Name)

		err = groups.Create(ctx, &domain.Group{Name: "U11", CreatedAt: time.Now()})
		assert.ErrorIs(t, err, domain.ErrGroupExists)
	})

	t.Run("Players", func(t *testing.T) {
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Alice", Team: domain.TeamA}))
		require.NoError(t, players.Add(ctx, "U11", domain.Player{Name: "Bruno", Team: domain.TeamB}))

		assert.ErrorIs(t, players.Add(ctx, "U11", domain.Player{Name: "Alice", Team: domain.TeamB}), domain.ErrPlayerExists)
		assert.ErrorIs(t, players.Add(ctx, "U99", domain.Player{Name: "Alice", Team: domain.TeamA}), domain.ErrGroupNotFound)
		assert.ErrorIs(t, players.Add(ctx, "U11", domain.Player{Name: "Carla", Team: "Time C"}), domain.ErrInvalidTeam)

		teamA, err := players.ListByGroupAndTeam(ctx, "U11", domain.TeamA)
		require.NoError(t, err)
		assert.Equal(t, []domain.Player{{Name: "Alice", Team: domain.TeamA}}, teamA)

		require.NoError(t, players.UpdateTeams(ctx, "U11", []domain.Player{{Name: "Alice", Team: domain.TeamB}}))
		teamB, err := players.ListByGroupAndTeam(ctx, "U11", domain.TeamB)
		require.NoError(t, err)
		assert.Len(t, teamB, 2)

		// Недопустимая команда откатывает всю транзакцию
		err = players.UpdateTeams(ctx, "U11", []domain.Player{
			{Name: "Bruno", Team: domain.TeamA},
			{Name: "Alice", Team: "Time C"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTeam)
		teamB, err = players.ListByGroupAndTeam(ctx, "U11", domain.TeamB)
		require.NoError(t, err)
		assert.Len(t, teamB, 2)

		require.NoError(t, players.Remove(ctx, "U11", "Bruno"))
		assert.ErrorIs(t, players.Remove(ctx, "U11", "Bruno"), domain.ErrPlayerNotFound)
	})

	t.Run("Stats", func(t *testing.T) {
		stats, err := groups.Stats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 1, stats[0].TeamCounts[domain.TeamB])
		assert.Equal(t, 0, stats[1].Total)
	})

	t.Run("Delete cascades", func(t *testing.T) {
		require.NoError(t, groups.Delete(ctx, "U11"))
		assert.ErrorIs(t, groups.Delete(ctx, "U11"), domain.ErrGroupNotFound)

		all, err := players.ListByGroup(ctx, "U11")
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
