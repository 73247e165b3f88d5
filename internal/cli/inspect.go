package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/calc"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// newInspectCmd creates the inspect command: read one value off a scale,
// or follow the scale interactively.
func newInspectCmd(e *env) *cobra.Command {
	var (
		length   float64
		circular bool
		follow   bool
	)

	cmd := &cobra.Command{
		Use:   "inspect SCALE [VALUE]",
		Short: "Read a value's position on a scale",
		Long: `Inspect maps a value to its normalized position (and, for circular layouts,
its dial angle). With --follow, an interactive cursor slides along the scale
and reads values continuously.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 {
				length = e.cfg.ScaleLength
			}

			lookup := catalog.Lookup
			if circular {
				lookup = catalog.LookupCircular
			}
			def, ok := lookup(args[0], length)
			if !ok {
				return errors.New(errors.ErrCodeUnknownScale, "unknown scale %q", args[0])
			}

			if follow {
				return runFollow(def)
			}
			if len(args) < 2 {
				return errors.New(errors.ErrCodeInvalidFormat, "inspect needs a value unless --follow is set")
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse value %q", args[1])
			}
			if !calc.InDomain(def, value) {
				printWarning("%g is outside the %s scale's range [%g, %g]",
					value, def.Name, def.BeginValue, def.EndValue)
				return nil
			}

			pos := calc.PositionOf(def, value)
			fmt.Printf("%s %s\n", styleTitle.Render(def.Name), styleDim.Render(def.Func.String()))
			fmt.Printf("  value    %s\n", styleValue.Render(strconv.FormatFloat(value, 'g', -1, 64)))
			fmt.Printf("  position %s\n", styleHighlight.Render(fmt.Sprintf("%.6f", pos)))
			fmt.Printf("  offset   %s\n", styleValue.Render(fmt.Sprintf("%.2fpt", pos*def.Layout.Extent())))
			if def.Layout.IsCircular() {
				fmt.Printf("  angle    %s\n", styleHighlight.Render(fmt.Sprintf("%.3f°", calc.AngleOf(def, value))))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&length, "length", "l", 0, "scale length in points (circular: diameter)")
	cmd.Flags().BoolVar(&circular, "circular", false, "lay the scale out as a circle")
	cmd.Flags().BoolVar(&follow, "follow", false, "interactive cursor mode")

	return cmd
}
