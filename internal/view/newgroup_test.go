package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/turmas/internal/domain"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

func TestNewGroupView_Create(t *testing.T) {
	store := newFakeStore()
	nav := &fakeNavigator{}
	v := NewNewGroupView(store, nav, &fakeDialogs{}, discardLogger())

	v.SetName(" U11 ")
	v.Create(context.Background())

	assert.Equal(t, []string{"U11"}, store.groups)
	require.Len(t, nav.navigations, 1)
	assert.Equal(t, RoutePlayers, nav.navigations[0].route)
	assert.Equal(t, &RouteParams{Group: "U11"}, nav.navigations[0].params)
	assert.Empty(t, v.State().Name)
}

func TestNewGroupView_EmptyName(t *testing.T) {
	store := newFakeStore()
	dialogs := &fakeDialogs{}
	nav := &fakeNavigator{}
	v := NewNewGroupView(store, nav, dialogs, discardLogger())

	v.SetName("  ")
	v.Create(context.Background())

	assert.Zero(t, store.callCount("CreateGroup"))
	assert.Empty(t, nav.navigations)
	require.Len(t, dialogs.alerts, 1)
	assert.Equal(t, alert{"Novo Grupo", "Informe o nome da turma."}, dialogs.alerts[0])
}

func TestNewGroupView_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"duplicate", domain.ErrGroupExists, "Já existe um grupo cadastrado com esse nome."},
		{"unexpected", errDisk, "Não foi possível criar um novo grupo."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.errCreate = tt.err
			dialogs := &fakeDialogs{}
			nav := &fakeNavigator{}
			v := NewNewGroupView(store, nav, dialogs, discardLogger())

			v.SetName("U11")
			v.Create(context.Background())

			require.Len(t, dialogs.alerts, 1)
			assert.Equal(t, alert{"Novo Grupo", tt.message}, dialogs.alerts[0])
			assert.Empty(t, nav.navigations)
			assert.Equal(t, "U11", v.State().Name)
		})
	}
}

func TestNewGroupView_State(t *testing.T) {
	v := NewNewGroupView(newFakeStore(), &fakeNavigator{}, &fakeDialogs{}, discardLogger())

	state := v.State()
	assert.Equal(t, "Nova turma", state.Title)
	assert.Equal(t, "crie a turma para adicionar as pessoas", state.Subtitle)
	assert.False(t, state.Creating)
}
