package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dlab/remote"
)

func newSelectCommand(ctx *commandContext) *cobra.Command {
	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Select objects or groups in a panel",
	}
	selectCmd.AddCommand(newSelectObjectsCommand(ctx))
	selectCmd.AddCommand(newSelectGroupsCommand(ctx))
	return selectCmd
}

func newSelectObjectsCommand(ctx *commandContext) *cobra.Command {
	var panelFlag string
	var groupFlag int

	cmd := &cobra.Command{
		Use:   "objects <index-or-uuid>...",
		Short: "Select objects by 1-based index or UUID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := remote.ParseRefs(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *remote.Client) error {
				if err := client.SelectObjects(refs, groupFlag, panelFlag); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Selected %d object(s)\n", len(refs))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&panelFlag, "panel", "", `Panel name ("signal" or "image"; empty = current)`)
	cmd.Flags().IntVar(&groupFlag, "group", 0, "Group number scoping index references (0 = current)")
	return cmd
}

func newSelectGroupsCommand(ctx *commandContext) *cobra.Command {
	var panelFlag string

	cmd := &cobra.Command{
		Use:   "groups <number-or-uuid>...",
		Short: "Select groups by number or UUID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := remote.ParseRefs(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *remote.Client) error {
				if err := client.SelectGroups(refs, panelFlag); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Selected %d group(s)\n", len(refs))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&panelFlag, "panel", "", `Panel name ("signal" or "image"; empty = current)`)
	return cmd
}

func newPanelCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "panel <name>",
		Short:     "Switch the active panel",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"signal", "image", "macro"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				return client.SwitchToPanel(args[0])
			})
		},
	}
}
