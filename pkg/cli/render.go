package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockvars/pkg/template"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		outputFile string
		userVars   map[string]string
	)

	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Substitute {{variable}} placeholders in a template",
		Long: `Substitute {{variable}} placeholders in FILE, or stdin when FILE is
omitted or "-". Predefined variables are resolved first, then user variables
from the config file and --var. Unknown placeholders are left unchanged.

Examples:
  echo '{"name": "{{$randomFullName}}"}' | mockvars render
  mockvars render body.json --var baseUrl=http://localhost:4280 -o out.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			variables := make(map[string]string, len(a.cfg.Variables)+len(userVars))
			for k, v := range a.cfg.Variables {
				variables[k] = v
			}
			for k, v := range userVars {
				variables[k] = v
			}

			engine := template.New(a.resolver(),
				template.WithVariables(variables),
				template.WithLogger(a.logger))
			rendered := engine.Process(string(in))

			if outputFile == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), rendered)
				return err
			}
			if err := os.WriteFile(outputFile, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			a.logger.Info("rendered template", "output", outputFile, "bytes", len(rendered))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringToStringVar(&userVars, "var", nil, "User variable as name=value (repeatable)")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return data, nil
}
