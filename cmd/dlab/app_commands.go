package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dlab/remote"
)

func newLabelCommand(ctx *commandContext) *cobra.Command {
	var panelFlag string
	var titleFlag string

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Add a title label to the associated plot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				return client.AddLabelWithTitle(titleFlag, panelFlag)
			})
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Label text (empty = object title)")
	cmd.Flags().StringVar(&panelFlag, "panel", "", `Panel name ("signal" or "image"; empty = current)`)
	return cmd
}

func newAnnotateCommand(ctx *commandContext) *cobra.Command {
	var panelFlag string
	var noRefreshFlag bool

	cmd := &cobra.Command{
		Use:   "annotate <items.json>",
		Short: "Attach annotation plot items from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read annotations: %w", err)
			}
			return ctx.withClient(func(client *remote.Client) error {
				return client.AddAnnotations(string(items), !noRefreshFlag, panelFlag)
			})
		},
	}

	cmd.Flags().StringVar(&panelFlag, "panel", "", `Panel name ("signal" or "image"; empty = current)`)
	cmd.Flags().BoolVar(&noRefreshFlag, "no-refresh", false, "Skip the plot refresh")
	return cmd
}

func newDeleteMetadataCommand(ctx *commandContext) *cobra.Command {
	var noRefreshFlag bool

	cmd := &cobra.Command{
		Use:   "delete-metadata",
		Short: "Delete metadata of the selected objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				return client.DeleteMetadata(!noRefreshFlag)
			})
		},
	}

	cmd.Flags().BoolVar(&noRefreshFlag, "no-refresh", false, "Skip the plot refresh")
	return cmd
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all application data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yesFlag {
				return fmt.Errorf("reset discards every object; pass --yes to confirm")
			}
			return ctx.withClient(func(client *remote.Client) error {
				if err := client.ResetAll(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Workspace cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yesFlag, "yes", false, "Confirm the reset")
	return cmd
}

func newCloseAppCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "close-app",
		Short: "Ask the DataLab application to shut down",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				return client.CloseApplication()
			})
		},
	}
}
