package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dlab/dataset"
	"dlab/remote"
)

func newCalcCommand(ctx *commandContext) *cobra.Command {
	var moduleFlag string
	var classFlag string
	var setFlags []string

	cmd := &cobra.Command{
		Use:   "calc <name>",
		Short: "Run a compute function on the selected objects",
		Long: `Run a compute function on the selected objects.

Parameters are optional. To pass some, name the remote parameter class with
--module and --class, then set values with repeated --set key=value flags:

  dlab calc compute_moving_average --module cdl.param --class MovingAverageParam --set n=5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := buildParameters(moduleFlag, classFlag, setFlags)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *remote.Client) error {
				result, err := client.Calc(args[0], param)
				if err != nil {
					return err
				}
				if result == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "OK")
					return nil
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, map[string]any{
						"module": result.Module,
						"class":  result.Class,
						"values": result.Values,
					})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\n", result.Module, result.Class)
				for name, value := range result.Values {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s = %v\n", name, value)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&moduleFlag, "module", "", "Remote parameter class module")
	cmd.Flags().StringVar(&classFlag, "class", "", "Remote parameter class name")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Parameter value as key=value (repeatable)")
	return cmd
}

func buildParameters(module, class string, assignments []string) (*dataset.Parameters, error) {
	if module == "" && class == "" && len(assignments) == 0 {
		return nil, nil
	}
	if module == "" || class == "" {
		return nil, fmt.Errorf("--module and --class are both required when passing parameters")
	}
	param := dataset.New(module, class)
	for _, assignment := range assignments {
		key, raw, found := strings.Cut(assignment, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("--set %q is not key=value", assignment)
		}
		param.Set(strings.TrimSpace(key), parseValue(raw))
	}
	return param, nil
}

// parseValue interprets a flag value as bool, int, float, JSON, or string,
// in that order.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	}
	if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v
	}
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
	}
	return raw
}
