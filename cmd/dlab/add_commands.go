package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dlab/npy"
	"dlab/remote"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Send signal or image data to DataLab",
	}
	addCmd.AddCommand(newAddSignalCommand(ctx))
	addCmd.AddCommand(newAddImageCommand(ctx))
	return addCmd
}

func newAddSignalCommand(ctx *commandContext) *cobra.Command {
	var xPath string
	var yPath string
	var attrs remote.SignalAttrs

	cmd := &cobra.Command{
		Use:   "signal <title>",
		Short: "Add a 1-D signal from .npy files",
		Long: `Add a 1-D signal from .npy files.

The Y array is required. When --x is omitted, a 0..n-1 sample index ramp
is generated to match it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := readArray(yPath)
			if err != nil {
				return err
			}
			var x *npy.Array
			if xPath != "" {
				if x, err = readArray(xPath); err != nil {
					return err
				}
			} else {
				x = indexRamp(y.Len())
			}
			if x.Len() != y.Len() {
				return fmt.Errorf("x has %d points but y has %d", x.Len(), y.Len())
			}
			return ctx.withClient(func(client *remote.Client) error {
				added, err := client.AddSignal(args[0], x, y, attrs)
				if err != nil {
					return err
				}
				if !added {
					return fmt.Errorf("DataLab did not accept signal %q", args[0])
				}
				printer := message.NewPrinter(language.English)
				printer.Fprintf(cmd.OutOrStdout(), "Added signal %q (%d points)\n", args[0], y.Len())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&yPath, "y", "", "Y data (.npy file)")
	cmd.Flags().StringVar(&xPath, "x", "", "X data (.npy file; default is a sample index ramp)")
	cmd.Flags().StringVar(&attrs.XUnit, "xunit", "", "X axis unit")
	cmd.Flags().StringVar(&attrs.YUnit, "yunit", "", "Y axis unit")
	cmd.Flags().StringVar(&attrs.XLabel, "xlabel", "", "X axis label")
	cmd.Flags().StringVar(&attrs.YLabel, "ylabel", "", "Y axis label")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}

func newAddImageCommand(ctx *commandContext) *cobra.Command {
	var dataPath string
	var attrs remote.ImageAttrs

	cmd := &cobra.Command{
		Use:   "image <title>",
		Short: "Add a 2-D image from a .npy file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readArray(dataPath)
			if err != nil {
				return err
			}
			if len(data.Shape()) != 2 {
				return fmt.Errorf("image data must be 2-D, got shape %v", data.Shape())
			}
			return ctx.withClient(func(client *remote.Client) error {
				added, err := client.AddImage(args[0], data, attrs)
				if err != nil {
					return err
				}
				if !added {
					return fmt.Errorf("DataLab did not accept image %q", args[0])
				}
				printer := message.NewPrinter(language.English)
				printer.Fprintf(cmd.OutOrStdout(), "Added image %q (%d pixels)\n", args[0], data.Len())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Image data (.npy file)")
	cmd.Flags().StringVar(&attrs.XUnit, "xunit", "", "X axis unit")
	cmd.Flags().StringVar(&attrs.YUnit, "yunit", "", "Y axis unit")
	cmd.Flags().StringVar(&attrs.ZUnit, "zunit", "", "Z axis unit")
	cmd.Flags().StringVar(&attrs.XLabel, "xlabel", "", "X axis label")
	cmd.Flags().StringVar(&attrs.YLabel, "ylabel", "", "Y axis label")
	cmd.Flags().StringVar(&attrs.ZLabel, "zlabel", "", "Z axis label")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func readArray(path string) (*npy.Array, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open array file: %w", err)
	}
	defer file.Close()
	arr, err := npy.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return arr, nil
}

func indexRamp(n int) *npy.Array {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return npy.FromFloat64(values)
}
