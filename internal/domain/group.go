package domain

import (
	"strings"
	"time"
)

// Group представляет группу игроков (turma); имя является первичным ключом
type Group struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupStats содержит количество игроков группы по командам
type GroupStats struct {
	GroupName  string         `json:"group_name"`
	TeamCounts map[string]int `json:"team_counts"`
	Total      int            `json:"total"`
}

// NormalizeName убирает пробелы по краям имени группы или игрока
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
