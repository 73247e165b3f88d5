package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/validate"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// newValidateCmd creates the validate command. It accepts scale names or,
// with --rule, a full assembly, and reports every failed check rather than
// stopping at the first.
func newValidateCmd(e *env) *cobra.Command {
	var (
		length float64
		rule   string
	)

	cmd := &cobra.Command{
		Use:   "validate [SCALE...]",
		Short: "Check scales or a whole rule for soundness",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 {
				length = e.cfg.ScaleLength
			}
			if rule == "" && len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidFormat, "give scale names or --rule")
			}

			failures := 0
			if rule != "" {
				parsed, err := resolveRule(e, rule, length)
				if err != nil {
					return err
				}
				issues := validate.Assembly(parsed.RoleScales())
				for _, issue := range issues {
					printError("%s %s: %s", issue.Role, styleHighlight.Render(issue.Scale), issue.Err.Message)
				}
				failures += len(issues)
			}

			for _, name := range args {
				def, ok := catalog.Lookup(name, length)
				if !ok {
					printError("unknown scale %q", name)
					failures++
					continue
				}
				errs := validate.Scale(def)
				for _, err := range errs {
					printError("%s: %s", styleHighlight.Render(def.Name), err.Message)
				}
				if len(errs) == 0 {
					printSuccess("%s", def.Name)
				}
				failures += len(errs)
			}

			if failures > 0 {
				return fmt.Errorf("validation found %d problem(s)", failures)
			}
			if rule != "" {
				printSuccess("rule is sound: %s", strings.TrimSpace(rule))
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&length, "length", "l", 0, "scale length in points")
	cmd.Flags().StringVar(&rule, "rule", "", "validate a full rule in bracketed notation")
	return cmd
}
