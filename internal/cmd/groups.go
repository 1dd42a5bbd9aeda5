package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGroupsCmd(v *viper.Viper) *cobra.Command {
	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "List, create and remove groups",
	}

	groupsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print group names in creation order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := openStore(cmd.Context(), v)
				if err != nil {
					return err
				}
				defer closeStore()

				groups, err := store.GetAllGroups(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range groups {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create an empty group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := openStore(cmd.Context(), v)
				if err != nil {
					return err
				}
				defer closeStore()

				if err := store.CreateGroup(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created group %q\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove a group and its players",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, closeStore, err := openStore(cmd.Context(), v)
				if err != nil {
					return err
				}
				defer closeStore()

				if err := store.RemoveGroup(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed group %q\n", args[0])
				return nil
			},
		},
	)

	return groupsCmd
}
