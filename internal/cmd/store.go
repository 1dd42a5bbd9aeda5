package cmd

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/viper"

	"github.com/aidar/turmas/internal/client"
	"github.com/aidar/turmas/internal/domain"
	"github.com/aidar/turmas/internal/events"
	"github.com/aidar/turmas/internal/repository/sqlite"
	"github.com/aidar/turmas/internal/service"
	"github.com/aidar/turmas/internal/view"
)

// backend is a view.Store that can also re-split a group
type backend interface {
	view.Store
	ShuffleTeams(ctx context.Context, group string) ([]domain.Player, error)
}

var (
	_ backend = (*service.Store)(nil)
	_ backend = (*client.Client)(nil)
)

// openStore returns the remote client when --server is set, the local
// SQLite store otherwise. The returned func releases the store.
func openStore(ctx context.Context, v *viper.Viper) (backend, func() error, error) {
	if server := v.GetString(keyServer); server != "" {
		return openRemote(ctx, v, server)
	}
	return openLocal(v.GetString(keyDB))
}

func openRemote(ctx context.Context, v *viper.Viper, server string) (backend, func() error, error) {
	c := client.New(server, client.WithToken(v.GetString(keyToken)))

	if v.GetString(keyToken) == "" {
		if device := v.GetString(keyDevice); device != "" {
			if _, err := c.Login(ctx, device); err != nil {
				return nil, nil, fmt.Errorf("failed to log in as %q: %w", device, err)
			}
		}
	}

	return c, func() error { return nil }, nil
}

func openLocal(path string) (backend, func() error, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, err
	}

	clock := clockwork.NewRealClock()
	groupRepo := sqlite.NewGroupRepository(db)
	playerRepo := sqlite.NewPlayerRepository(db)

	store := service.NewStore(
		service.NewGroupService(groupRepo, events.NopPublisher{}, clock),
		service.NewPlayerService(playerRepo, groupRepo, service.NewTeamSplitter(), events.NopPublisher{}, clock),
	)
	return store, db.Close, nil
}
