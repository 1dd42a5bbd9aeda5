package repository

import (
	"context"

	"github.com/aidar/turmas/internal/domain"
)

// GroupRepository определяет методы для работы с данными групп
type GroupRepository interface {
	// Create создает новую группу; ErrGroupExists если имя занято
	Create(ctx context.Context, group *domain.Group) error

	// List возвращает все группы в порядке создания
	List(ctx context.Context) ([]*domain.Group, error)

	// Exists проверяет существование группы
	Exists(ctx context.Context, name string) (bool, error)

	// Delete удаляет группу вместе со всеми игроками
	Delete(ctx context.Context, name string) error

	// Stats возвращает количество игроков по командам для каждой группы
	Stats(ctx context.Context) ([]*domain.GroupStats, error)
}

// PlayerRepository определяет методы для работы с данными игроков
type PlayerRepository interface {
	// Add добавляет игрока в группу; ErrPlayerExists если имя занято в группе
	Add(ctx context.Context, groupName string, player domain.Player) error

	// Remove удаляет игрока из группы
	Remove(ctx context.Context, groupName, playerName string) error

	// ListByGroupAndTeam возвращает игроков команды в порядке добавления
	ListByGroupAndTeam(ctx context.Context, groupName, team string) ([]domain.Player, error)

	// ListByGroup возвращает всех игроков группы в порядке добавления
	ListByGroup(ctx context.Context, groupName string) ([]domain.Player, error)

	// UpdateTeams переназначает команды игроков группы в одной транзакции
	UpdateTeams(ctx context.Context, groupName string, players []domain.Player) error
}
