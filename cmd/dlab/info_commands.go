package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dlab/remote"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of the running DataLab instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				version, err := client.Version()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]any{"version": version, "port": client.Port()})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "DataLab %s (port %d)\n", version, client.Port())
				return nil
			})
		},
	}
}

func newMethodsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the methods the server exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				methods, err := client.Methods()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, methods)
				}
				for _, method := range methods {
					fmt.Fprintln(cmd.OutOrStdout(), method)
				}
				return nil
			})
		},
	}
}

func newObjectsCommand(ctx *commandContext) *cobra.Command {
	var panelFlag string
	var selectedFlag bool

	cmd := &cobra.Command{
		Use:   "objects",
		Short: "List workspace objects in a panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *remote.Client) error {
				if selectedFlag {
					uuids, err := client.SelectedObjectUUIDs(true)
					if err != nil {
						return err
					}
					if ctx.jsonOutput() {
						return writeJSON(cmd, uuids)
					}
					for _, id := range uuids {
						fmt.Fprintln(cmd.OutOrStdout(), id)
					}
					return nil
				}

				titles, err := client.ObjectTitles(panelFlag)
				if err != nil {
					return err
				}
				uuids, err := client.ObjectUUIDs(panelFlag)
				if err != nil {
					return err
				}

				type object struct {
					Index int    `json:"index"`
					Title string `json:"title"`
					UUID  string `json:"uuid,omitempty"`
				}
				objects := make([]object, len(titles))
				for i, title := range titles {
					objects[i] = object{Index: i + 1, Title: title}
					if i < len(uuids) {
						objects[i].UUID = uuids[i]
					}
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, objects)
				}
				if len(objects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No objects")
					return nil
				}
				rows := make([][]string, len(objects))
				for i, obj := range objects {
					rows[i] = []string{strconv.Itoa(obj.Index), obj.Title, obj.UUID}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Title", "UUID"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&panelFlag, "panel", "", `Panel name ("signal" or "image"; empty = current)`)
	cmd.Flags().BoolVar(&selectedFlag, "selected", false, "List selected object UUIDs instead")
	return cmd
}
