package domain

// Команды, на которые делится группа
const (
	TeamA = "Time A"
	TeamB = "Time B"
)

// Teams возвращает команды в порядке отображения
func Teams() []string {
	return []string{TeamA, TeamB}
}

// IsValidTeam проверяет, что команда одна из двух допустимых
func IsValidTeam(team string) bool {
	return team == TeamA || team == TeamB
}

// Player представляет игрока в составе группы
type Player struct {
	Name string `json:"name"`
	Team string `json:"team"`
}
