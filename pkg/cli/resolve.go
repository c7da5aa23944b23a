package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockvars/pkg/cli/internal/output"
)

// ErrUnresolved is returned when at least one key is not a predefined
// variable.
var ErrUnresolved = errors.New("some keys are not predefined variables")

// ResolveResult is the JSON form of one resolved value.
type ResolveResult struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

func newResolveCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "resolve KEY...",
		Short: "Resolve predefined variables to generated values",
		Long: `Resolve predefined variables to generated values, one per line.

The leading "$" may be omitted: "randomFullName" resolves $randomFullName.

Examples:
  mockvars resolve '$randomFullName'
  mockvars resolve randomWomanFullName randomBirthDateOver18 --count 5
  mockvars resolve guid --seed 42 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			r := a.resolver()
			var results []ResolveResult
			unresolved := 0

			for _, arg := range args {
				key := normalizeKey(arg, r.IsPredefined)
				for i := 0; i < count; i++ {
					val, ok := r.Resolve(key)
					if !ok {
						unresolved++
						results = append(results, ResolveResult{Key: key})
						output.Warn(cmd.ErrOrStderr(), "%s", a.loc.Getf("Resolve.NotPredefined", key))
						break
					}
					results = append(results, ResolveResult{Key: key, Value: val, Found: true})
				}
			}

			if a.jsonOutput {
				if err := output.JSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				for _, res := range results {
					if res.Found {
						fmt.Fprintln(cmd.OutOrStdout(), res.Value)
					}
				}
			}

			if unresolved > 0 {
				return fmt.Errorf("%w (%d of %d)", ErrUnresolved, unresolved, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to generate per key")
	return cmd
}

// normalizeKey adds the "$" prefix when the bare name is predefined.
func normalizeKey(arg string, isPredefined func(string) bool) string {
	if !strings.HasPrefix(arg, "$") && isPredefined("$"+arg) {
		return "$" + arg
	}
	return arg
}
