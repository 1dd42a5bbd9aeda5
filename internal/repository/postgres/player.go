package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/turmas/internal/domain"
)

// PlayerRepository реализует repository.PlayerRepository для PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создает новый экземпляр PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Add добавляет игрока в группу
func (r *PlayerRepository) Add(ctx context.Context, groupName string, player domain.Player) error {
	query := `
		INSERT INTO players (group_name, player_name, team)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, groupName, player.Name, player.Team)
	return mapPlayerError(err)
}

// mapPlayerError переводит нарушения ограничений таблицы players в доменные ошибки
func mapPlayerError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return domain.ErrPlayerExists
		case "23503": // foreign_key_violation
			return domain.ErrGroupNotFound
		case "23514": // check_violation
			return domain.ErrInvalidTeam
		}
	}
	return err
}

// Remove удаляет игрока из группы
func (r *PlayerRepository) Remove(ctx context.Context, groupName, playerName string) error {
	query := `DELETE FROM players WHERE group_name = $1 AND player_name = $2`

	result, err := r.db.Exec(ctx, query, groupName, playerName)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

// ListByGroupAndTeam возвращает игроков команды в порядке добавления
func (r *PlayerRepository) ListByGroupAndTeam(ctx context.Context, groupName, team string) ([]domain.Player, error) {
	query := `
		SELECT player_name, team
		FROM players
		WHERE group_name = $1 AND team = $2
		ORDER BY seq
	`

	return r.list(ctx, query, groupName, team)
}

// ListByGroup возвращает всех игроков группы в порядке добавления
func (r *PlayerRepository) ListByGroup(ctx context.Context, groupName string) ([]domain.Player, error) {
	query := `
		SELECT player_name, team
		FROM players
		WHERE group_name = $1
		ORDER BY seq
	`

	return r.list(ctx, query, groupName)
}

// UpdateTeams переназначает команды игроков группы в одной транзакции
func (r *PlayerRepository) UpdateTeams(ctx context.Context, groupName string, players []domain.Player) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	query := `
		UPDATE players
		SET team = $1, updated_at = NOW()
		WHERE group_name = $2 AND player_name = $3
	`

	for _, player := range players {
		result, err := tx.Exec(ctx, query, player.Team, groupName, player.Name)
		if err != nil {
			return mapPlayerError(err)
		}
		if result.RowsAffected() == 0 {
			return domain.ErrPlayerNotFound
		}
	}

	return tx.Commit(ctx)
}

func (r *PlayerRepository) list(ctx context.Context, query string, args ...any) ([]domain.Player, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]domain.Player, 0)
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(&player.Name, &player.Team); err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}
