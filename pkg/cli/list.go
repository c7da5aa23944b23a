package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/getmockd/mockvars/pkg/cli/internal/output"
	"github.com/getmockd/mockvars/pkg/vars"
)

// Variable categories, in display order.
const (
	categoryIdentifiers = "identifiers"
	categoryNumbers     = "numbers"
	categoryDates       = "dates"
	categoryNames       = "names"
)

var categoryOrder = []string{categoryIdentifiers, categoryNumbers, categoryDates, categoryNames}

var keyCategories = map[string]string{
	vars.KeyGUID:                  categoryIdentifiers,
	vars.KeyRandomInt:             categoryNumbers,
	vars.KeyNow:                   categoryDates,
	vars.KeyToday:                 categoryDates,
	vars.KeyRandomBirthDate:       categoryDates,
	vars.KeyRandomBirthDateOver18: categoryDates,
	vars.KeyRandomFullName:        categoryNames,
	vars.KeyRandomManFullName:     categoryNames,
	vars.KeyRandomWomanFullName:   categoryNames,
	vars.KeyRandomFirstName:       categoryNames,
	vars.KeyRandomManFirstName:    categoryNames,
	vars.KeyRandomWomanFirstName:  categoryNames,
	vars.KeyRandomLastName:        categoryNames,
}

// VariableInfo is the JSON form of one listed variable.
type VariableInfo struct {
	Key         string `json:"key"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List predefined variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.resolver()

			byCategory := make(map[string][]VariableInfo)
			var all []VariableInfo
			for _, key := range vars.Keys() {
				example, _ := r.Resolve(key)
				info := VariableInfo{
					Key:         key,
					Category:    keyCategories[key],
					Description: a.loc.Get("Variable." + key),
					Example:     example,
				}
				byCategory[info.Category] = append(byCategory[info.Category], info)
				all = append(all, info)
			}

			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), all)
			}

			title := cases.Title(a.language())
			w := output.Table(cmd.OutOrStdout())
			for i, cat := range categoryOrder {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", title.String(a.loc.Get("Category."+cat)))
				fmt.Fprintf(w, "  %s\t%s\t%s\n",
					a.loc.Get("List.Header.Key"),
					a.loc.Get("List.Header.Description"),
					a.loc.Get("List.Header.Example"))
				for _, info := range byCategory[cat] {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", info.Key, info.Description, info.Example)
				}
			}
			return w.Flush()
		},
	}
}
