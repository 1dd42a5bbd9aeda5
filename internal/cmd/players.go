package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aidar/turmas/internal/domain"
)

func newPlayersCmd(v *viper.Viper) *cobra.Command {
	var group, team string

	playersCmd := &cobra.Command{
		Use:   "players",
		Short: "Manage the roster of a group",
	}
	playersCmd.PersistentFlags().StringVarP(&group, "group", "g", "", "group name")
	_ = playersCmd.MarkPersistentFlagRequired("group")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the players of one team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer closeStore()

			players, err := store.GetPlayersByGroupAndTeam(cmd.Context(), group, team)
			if err != nil {
				return err
			}
			for _, p := range players {
				fmt.Fprintln(cmd.OutOrStdout(), p.Name)
			}
			return nil
		},
	}
	listCmd.Flags().StringVarP(&team, "team", "t", domain.TeamA, `team: "Time A" or "Time B"`)

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a player to a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer closeStore()

			player := domain.Player{Name: args[0], Team: team}
			if err := store.AddPlayerToGroup(cmd.Context(), player, group); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q to %s\n", player.Name, player.Team)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&team, "team", "t", domain.TeamA, `team: "Time A" or "Time B"`)

	removeCmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a player from the group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.RemovePlayerFromGroup(cmd.Context(), args[0], group); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", args[0])
			return nil
		},
	}

	shuffleCmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Randomly re-split the group into two balanced teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := openStore(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer closeStore()

			players, err := store.ShuffleTeams(cmd.Context(), group)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range players {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Team)
			}
			return w.Flush()
		},
	}

	playersCmd.AddCommand(listCmd, addCmd, removeCmd, shuffleCmd)
	return playersCmd
}
