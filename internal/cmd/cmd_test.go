package cmd

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/turmas/internal/app"
	"github.com/aidar/turmas/internal/config"
	"github.com/aidar/turmas/internal/domain"
)

// executeCommand runs a fresh command tree with args and returns captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func lines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "turmas", root.Use)

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, expected := range []string{"ui", "groups", "players"} {
		assert.True(t, names[expected], "expected subcommand %q", expected)
	}
}

func TestLocalStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "turmas.db")

	out, err := executeCommand(t, "--db", db, "groups", "list")
	require.NoError(t, err)
	assert.Empty(t, lines(out))

	_, err = executeCommand(t, "--db", db, "groups", "create", "Turma B")
	require.NoError(t, err)
	_, err = executeCommand(t, "--db", db, "groups", "create", "Turma A")
	require.NoError(t, err)

	out, err = executeCommand(t, "--db", db, "groups", "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"Turma B", "Turma A"}, lines(out))

	_, err = executeCommand(t, "--db", db, "groups", "create", "Turma A")
	assert.ErrorIs(t, err, domain.ErrGroupExists)

	for _, p := range []struct{ name, team string }{
		{"Ana", domain.TeamA},
		{"Bia", domain.TeamA},
		{"Caio", domain.TeamB},
		{"Duda", domain.TeamB},
	} {
		_, err := executeCommand(t, "--db", db, "players", "add", p.name, "--group", "Turma A", "--team", p.team)
		require.NoError(t, err)
	}

	out, err = executeCommand(t, "--db", db, "players", "list", "-g", "Turma A")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bia"}, lines(out))

	out, err = executeCommand(t, "--db", db, "players", "list", "-g", "Turma A", "-t", domain.TeamB)
	require.NoError(t, err)
	assert.Equal(t, []string{"Caio", "Duda"}, lines(out))

	_, err = executeCommand(t, "--db", db, "players", "add", "Ana", "-g", "Turma A", "-t", domain.TeamB)
	assert.ErrorIs(t, err, domain.ErrPlayerExists)

	_, err = executeCommand(t, "--db", db, "players", "add", "Eva", "-g", "Turma A", "-t", "Time C")
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)

	_, err = executeCommand(t, "--db", db, "players", "add", "Eva", "-g", "Turma Z")
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	out, err = executeCommand(t, "--db", db, "players", "shuffle", "-g", "Turma A")
	require.NoError(t, err)
	shuffled := lines(out)
	require.Len(t, shuffled, 4)
	assert.Equal(t, 2, strings.Count(out, domain.TeamA))
	assert.Equal(t, 2, strings.Count(out, domain.TeamB))

	_, err = executeCommand(t, "--db", db, "players", "remove", "Ana", "-g", "Turma A")
	require.NoError(t, err)

	listA, err := executeCommand(t, "--db", db, "players", "list", "-g", "Turma A", "-t", domain.TeamA)
	require.NoError(t, err)
	listB, err := executeCommand(t, "--db", db, "players", "list", "-g", "Turma A", "-t", domain.TeamB)
	require.NoError(t, err)
	assert.Len(t, append(lines(listA), lines(listB)...), 3)
	assert.NotContains(t, listA+listB, "Ana")

	_, err = executeCommand(t, "--db", db, "groups", "remove", "Turma A")
	require.NoError(t, err)

	out, err = executeCommand(t, "--db", db, "groups", "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"Turma B"}, lines(out))
}

func TestPlayersRequiresGroup(t *testing.T) {
	db := filepath.Join(t.TempDir(), "turmas.db")

	_, err := executeCommand(t, "--db", db, "players", "list")
	assert.ErrorContains(t, err, "group")
}

func TestConfigSources(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "env.db")
		t.Setenv("TURMAS_DB", db)

		_, err := executeCommand(t, "groups", "create", "Turma Env")
		require.NoError(t, err)
		assert.FileExists(t, db)
	})

	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		db := filepath.Join(dir, "file.db")
		cfgPath := filepath.Join(dir, "turmas.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("db: "+db+"\n"), 0o644))

		_, err := executeCommand(t, "--config", cfgPath, "groups", "create", "Turma Arquivo")
		require.NoError(t, err)
		assert.FileExists(t, db)

		out, err := executeCommand(t, "--config", cfgPath, "groups", "list")
		require.NoError(t, err)
		assert.Equal(t, []string{"Turma Arquivo"}, lines(out))
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "groups", "list")
		assert.Error(t, err)
	})
}

func TestRemoteStore(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:     config.StorageDriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "server.db"),
		},
		JWT:  config.JWTConfig{Secret: "cmd-test-secret", ExpirationHours: 1},
		Auth: config.AuthConfig{Enabled: true},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
		Log:  config.LogConfig{Level: "error", Format: "json"},
	}

	application, err := app.New(cfg)
	require.NoError(t, err)
	require.NoError(t, application.Initialize(context.Background()))

	server := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		server.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = application.Shutdown(ctx)
	})

	_, err = executeCommand(t, "--server", server.URL, "groups", "list")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	remote := []string{"--server", server.URL, "--device", "cli-test"}

	_, err = executeCommand(t, append(remote, "groups", "create", "Turma/Remota")...)
	require.NoError(t, err)

	_, err = executeCommand(t, append(remote, "players", "add", "Ana", "-g", "Turma/Remota", "-t", domain.TeamB)...)
	require.NoError(t, err)

	out, err := executeCommand(t, append(remote, "players", "list", "-g", "Turma/Remota", "-t", domain.TeamB)...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, lines(out))

	_, err = executeCommand(t, append(remote, "players", "add", "Ana", "-g", "Turma/Remota")...)
	assert.ErrorIs(t, err, domain.ErrPlayerExists)

	out, err = executeCommand(t, append(remote, "groups", "list")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Turma/Remota"}, lines(out))
}
