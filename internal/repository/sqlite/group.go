package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aidar/turmas/internal/domain"
)

// GroupRepository implements repository.GroupRepository using SQLite.
type GroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a GroupRepository over an opened database.
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, group *domain.Group) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO player_groups (group_name, created_at) VALUES (?, ?)",
		group.Name, group.CreatedAt.Unix(),
	)
	if err != nil {
		if constraintOf(err) == constraintUnique {
			return domain.ErrGroupExists
		}
		return fmt.Errorf("failed to insert group: %w", err)
	}

	return nil
}

// List returns every group in creation order.
func (r *GroupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT group_name, created_at FROM player_groups ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		var (
			group     domain.Group
			createdAt int64
		)
		if err := rows.Scan(&group.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		group.CreatedAt = time.Unix(createdAt, 0).UTC()
		groups = append(groups, &group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// Exists reports whether a group with the given name exists.
func (r *GroupRepository) Exists(ctx context.Context, name string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM player_groups WHERE group_name = ?", name).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check group existence: %w", err)
	}

	return true, nil
}

// Delete removes a group; its players go with it through ON DELETE CASCADE.
func (r *GroupRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM player_groups WHERE group_name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrGroupNotFound
	}

	return nil
}

// Stats returns per-team player counts for every group.
func (r *GroupRepository) Stats(ctx context.Context) ([]*domain.GroupStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			g.group_name,
			COALESCE(SUM(CASE WHEN p.team = 'Time A' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN p.team = 'Time B' THEN 1 ELSE 0 END), 0)
		FROM player_groups g
		LEFT JOIN players p ON p.group_name = g.group_name
		GROUP BY g.group_name
		ORDER BY g.rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.GroupStats, 0)
	for rows.Next() {
		var (
			name         string
			teamA, teamB int
		)
		if err := rows.Scan(&name, &teamA, &teamB); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, &domain.GroupStats{
			GroupName:  name,
			TeamCounts: map[string]int{domain.TeamA: teamA, domain.TeamB: teamB},
			Total:      teamA + teamB,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stats: %w", err)
	}

	return stats, nil
}
