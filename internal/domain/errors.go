package domain

import "errors"

// ErrorCode представляет коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeGroupExists  ErrorCode = "GROUP_EXISTS"  // Группа с таким именем уже существует
	CodePlayerExists ErrorCode = "PLAYER_EXISTS" // Игрок с таким именем уже есть в группе
	CodeInvalidTeam  ErrorCode = "INVALID_TEAM"  // Неизвестная команда
	CodeEmptyName    ErrorCode = "EMPTY_NAME"    // Пустое имя
	CodeNotFound     ErrorCode = "NOT_FOUND"     // Ресурс не найден
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"  // Нет или невалиден токен
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// DomainError - ошибка валидации с сообщением, которое можно показать пользователю
type DomainError struct {
	Code    ErrorCode
	Message string
}

// NewDomainError создает новую доменную ошибку
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func (e *DomainError) Error() string {
	return e.Message
}

// Доменные ошибки: сообщения показываются пользователю как есть
var (
	// ErrGroupExists возвращается при попытке создать уже существующую группу
	ErrGroupExists = NewDomainError(CodeGroupExists, "Já existe um grupo cadastrado com esse nome.")

	// ErrPlayerExists возвращается при добавлении игрока с уже занятым в группе именем
	ErrPlayerExists = NewDomainError(CodePlayerExists, "Nome já existe nessa turma.")

	// ErrInvalidTeam возвращается для команды, отличной от "Time A"/"Time B"
	ErrInvalidTeam = NewDomainError(CodeInvalidTeam, `Time inválido. Use "Time A" ou "Time B".`)

	// ErrEmptyName возвращается при пустом имени группы или игрока
	ErrEmptyName = NewDomainError(CodeEmptyName, "Informe um nome.")
)

// Прочие ошибки (не предназначены для показа пользователю)
var (
	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrGroupNotFound возвращается когда группа не найдена
	ErrGroupNotFound = errors.New("group not found")

	// ErrPlayerNotFound возвращается когда игрок не найден в группе
	ErrPlayerNotFound = errors.New("player not found")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// AsDomainError извлекает доменную ошибку из цепочки
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// DomainErrorByCode возвращает известную доменную ошибку по коду.
// Для неизвестного кода создается новая ошибка с переданным сообщением.
func DomainErrorByCode(code ErrorCode, message string) *DomainError {
	switch code {
	case CodeGroupExists:
		return ErrGroupExists
	case CodePlayerExists:
		return ErrPlayerExists
	case CodeInvalidTeam:
		return ErrInvalidTeam
	case CodeEmptyName:
		return ErrEmptyName
	default:
		return NewDomainError(code, message)
	}
}

// MapErrorToCode преобразует ошибки в коды ошибок API.
// Все, что не распознано, считается внутренней ошибкой.
func MapErrorToCode(err error) ErrorCode {
	if domainErr, ok := AsDomainError(err); ok {
		return domainErr.Code
	}

	switch {
	case errors.Is(err, ErrGroupNotFound), errors.Is(err, ErrPlayerNotFound), errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}
