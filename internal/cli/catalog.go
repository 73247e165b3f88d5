package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
)

// newCatalogCmd creates the catalog listing command.
func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the built-in scale presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasesByName := make(map[string][]string)
			for alias, canonical := range catalog.Aliases() {
				aliasesByName[canonical] = append(aliasesByName[canonical], alias)
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers("NAME", "SCALE", "FUNCTION", "RANGE", "ALIASES")

			for _, name := range catalog.Names() {
				def, ok := catalog.Lookup(name, 250)
				if !ok {
					continue
				}
				aliases := aliasesByName[name]
				sort.Strings(aliases)
				t.Row(
					styleHighlight.Render(name),
					styleValue.Render(def.Name),
					def.Func.String(),
					fmt.Sprintf("%g .. %g", def.BeginValue, def.EndValue),
					styleDim.Render(strings.Join(aliases, ", ")),
				)
			}

			fmt.Println(styleTitle.Render("Scale catalog"))
			fmt.Println(t)
			return nil
		},
	}
}
