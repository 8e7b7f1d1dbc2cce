package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"dlab/remote"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>...",
		Short: "Open signal or image files in the current panel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				for _, path := range args {
					absolute, err := filepath.Abs(path)
					if err != nil {
						return fmt.Errorf("resolve %q: %w", path, err)
					}
					if err := client.OpenObject(absolute); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", absolute)
				}
				return nil
			})
		},
	}
}

func newHDF5Command(ctx *commandContext) *cobra.Command {
	hdf5Cmd := &cobra.Command{
		Use:   "hdf5",
		Short: "Save or load workspace HDF5 files",
	}
	hdf5Cmd.AddCommand(newHDF5SaveCommand(ctx))
	hdf5Cmd.AddCommand(newHDF5OpenCommand(ctx))
	hdf5Cmd.AddCommand(newHDF5ImportCommand(ctx))
	return hdf5Cmd
}

func newHDF5SaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Save the whole workspace to an HDF5 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absolute, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %q: %w", args[0], err)
			}
			return ctx.withClient(func(client *remote.Client) error {
				if err := client.SaveToH5File(absolute); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved workspace to %s\n", absolute)
				return nil
			})
		},
	}
}

func newHDF5OpenCommand(ctx *commandContext) *cobra.Command {
	var importAllFlag bool
	var resetAllFlag bool

	cmd := &cobra.Command{
		Use:   "open <file>...",
		Short: "Open HDF5 files, importing datasets from foreign ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := make([]string, len(args))
			for i, arg := range args {
				absolute, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolve %q: %w", arg, err)
				}
				paths[i] = absolute
			}
			return ctx.withClient(func(client *remote.Client) error {
				return client.OpenH5Files(paths, importAllFlag, resetAllFlag)
			})
		},
	}

	cmd.Flags().BoolVar(&importAllFlag, "import-all", false, "Import every object without prompting")
	cmd.Flags().BoolVar(&resetAllFlag, "reset-all", false, "Clear existing data first")
	return cmd
}

func newHDF5ImportCommand(ctx *commandContext) *cobra.Command {
	var resetAllFlag bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Open the HDF5 browser on a file for selective import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absolute, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %q: %w", args[0], err)
			}
			return ctx.withClient(func(client *remote.Client) error {
				return client.ImportH5File(absolute, resetAllFlag)
			})
		},
	}

	cmd.Flags().BoolVar(&resetAllFlag, "reset-all", false, "Clear existing data first")
	return cmd
}
