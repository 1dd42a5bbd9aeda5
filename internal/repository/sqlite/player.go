package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aidar/turmas/internal/domain"
)

// PlayerRepository implements repository.PlayerRepository using SQLite.
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a PlayerRepository over an opened database.
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Add inserts a player into a group.
func (r *PlayerRepository) Add(ctx context.Context, groupName string, player domain.Player) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO players (group_name, player_name, team, created_at) VALUES (?, ?, ?, ?)",
		groupName, player.Name, player.Team, time.Now().Unix(),
	)
	if err != nil {
		switch constraintOf(err) {
		case constraintUnique:
			return domain.ErrPlayerExists
		case constraintForeignKey:
			return domain.ErrGroupNotFound
		case constraintCheck:
			return domain.ErrInvalidTeam
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}

	return nil
}

// Remove deletes a player from a group.
func (r *PlayerRepository) Remove(ctx context.Context, groupName, playerName string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM players WHERE group_name = ? AND player_name = ?",
		groupName, playerName,
	)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrPlayerNotFound
	}

	return nil
}

// ListByGroupAndTeam returns the players of one team in insertion order.
func (r *PlayerRepository) ListByGroupAndTeam(ctx context.Context, groupName, team string) ([]domain.Player, error) {
	return r.list(ctx,
		"SELECT player_name, team FROM players WHERE group_name = ? AND team = ? ORDER BY id",
		groupName, team,
	)
}

// ListByGroup returns all players of a group in insertion order.
func (r *PlayerRepository) ListByGroup(ctx context.Context, groupName string) ([]domain.Player, error) {
	return r.list(ctx,
		"SELECT player_name, team FROM players WHERE group_name = ? ORDER BY id",
		groupName,
	)
}

// UpdateTeams reassigns teams for the given players in a single transaction.
func (r *PlayerRepository) UpdateTeams(ctx context.Context, groupName string, players []domain.Player) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, player := range players {
		result, err := tx.ExecContext(ctx,
			"UPDATE players SET team = ? WHERE group_name = ? AND player_name = ?",
			player.Team, groupName, player.Name,
		)
		if err != nil {
			if constraintOf(err) == constraintCheck {
				return domain.ErrInvalidTeam
			}
			return fmt.Errorf("failed to update player team: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return domain.ErrPlayerNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *PlayerRepository) list(ctx context.Context, query string, args ...any) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]domain.Player, 0)
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(&player.Name, &player.Team); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}
