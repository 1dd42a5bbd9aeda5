package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/turmas/internal/domain"
)

// GroupRepository реализует repository.GroupRepository для PostgreSQL
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository создает новый экземпляр GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create создает новую группу
func (r *GroupRepository) Create(ctx context.Context, group *domain.Group) error {
	query := `INSERT INTO player_groups (group_name, created_at) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, group.Name, group.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrGroupExists
		}
		return err
	}

	return nil
}

// List возвращает все группы в порядке создания
func (r *GroupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	query := `
		SELECT group_name, created_at
		FROM player_groups
		ORDER BY seq
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.Name, &group.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// Exists проверяет существование группы
func (r *GroupRepository) Exists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM player_groups WHERE group_name = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, name).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}

// Delete удаляет группу; игроки удаляются каскадно (ON DELETE CASCADE)
func (r *GroupRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM player_groups WHERE group_name = $1`

	result, err := r.db.Exec(ctx, query, name)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrGroupNotFound
	}

	return nil
}

// Stats возвращает количество игроков по командам для каждой группы
func (r *GroupRepository) Stats(ctx context.Context) ([]*domain.GroupStats, error) {
	query := `
		SELECT
			g.group_name,
			COUNT(p.seq) FILTER (WHERE p.team = 'Time A') AS team_a,
			COUNT(p.seq) FILTER (WHERE p.team = 'Time B') AS team_b
		FROM player_groups g
		LEFT JOIN players p ON p.group_name = g.group_name
		GROUP BY g.group_name, g.seq
		ORDER BY g.seq
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.GroupStats, 0)
	for rows.Next() {
		var (
			name         string
			teamA, teamB int
		)
		if err := rows.Scan(&name, &teamA, &teamB); err != nil {
			return nil, err
		}
		stats = append(stats, &domain.GroupStats{
			GroupName: name,
			TeamCounts: map[string]int{
				domain.TeamA: teamA,
				domain.TeamB: teamB,
			},
			Total: teamA + teamB,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
