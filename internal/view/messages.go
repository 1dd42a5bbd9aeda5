package view

// Texts shown to the user
const (
	GroupsTitle       = "Turmas"
	GroupsSubtitle    = "jogue com a sua turma"
	GroupsEmpty       = "Que tal cadastrar a primeira turma?"
	GroupsLoadFailed  = "Não foi possivel carregar as turmas."
	NewGroupButton    = "Criar nova turma"
	RosterSubtitle    = "adicione a galera e separe os times"
	RosterEmpty       = "Não há pessoas nesse time."
	RemoveGroupButton = "Remover turma"
	PlayerPlaceholder = "Nome da pessoa"

	NewPlayerTitle      = "Nova pessoa"
	NewPlayerEmptyName  = "Informe o nome da pessoa para adicionar"
	NewPlayerFailed     = "Não foi possivel adicionar"
	RosterLoadFailed    = "Não foi possivel carregar as pessoas do time selecionado"
	RemovePlayerTitle   = "Remover pessoa"
	RemovePlayerFailed  = "Não foi possivel remover essa pessoa."
	RemoveGroupTitle    = "Remover turma"
	RemoveGroupFailed   = "Não foi possivel remover a turma."
	ConfirmRemoveTitle  = "Remover"
	ConfirmRemoveText   = "Deseja remover a turma?"
	ConfirmRemoveCancel = "Não"
	ConfirmRemoveAccept = "Sim"

	NewGroupTitle       = "Nova turma"
	NewGroupSubtitle    = "crie a turma para adicionar as pessoas"
	NewGroupPlaceholder = "Nome da turma"
	NewGroupCreate      = "Criar"
	NewGroupAlertTitle  = "Novo Grupo"
	NewGroupEmptyName   = "Informe o nome da turma."
	NewGroupFailed      = "Não foi possível criar um novo grupo."
)
