package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/render"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/rules"
)

// newRulesCmd creates the rules command group.
func newRulesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Work with complete slide rule definitions",
		Long: `A rule is written in bracketed notation, three groups per face
(top stator, slide, bottom stator), front and back separated by a pipe:

  [L, K, A] [B, CI, C] [D, DI] | [S, T] [ST, C] [D]

Named assemblies from the configuration file can be used in place of the
notation.`,
	}

	cmd.AddCommand(newRulesParseCmd(e))
	cmd.AddCommand(newRulesRenderCmd(e))
	return cmd
}

// resolveRule turns a command argument into a parsed rule, going through
// the configured named assemblies first.
func resolveRule(e *env, arg string, length float64) (*rules.Rule, error) {
	notation := arg
	if !strings.Contains(arg, "[") {
		named, ok := e.cfg.Assemblies[arg]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownAssembly, "no assembly %q in configuration", arg)
		}
		notation = named
	}

	rule, errs := rules.Parse(notation, length)
	if len(errs) > 0 {
		for _, err := range errs {
			printError("%s", err)
		}
		return nil, errors.New(errors.ErrCodeInvalidRule, "rule has %d problem(s)", len(errs))
	}
	return rule, nil
}

// newRulesParseCmd creates "rules parse".
func newRulesParseCmd(e *env) *cobra.Command {
	var length float64

	cmd := &cobra.Command{
		Use:   "parse RULE",
		Short: "Parse a rule and show its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 {
				length = e.cfg.ScaleLength
			}
			rule, err := resolveRule(e, args[0], length)
			if err != nil {
				return err
			}

			fmt.Println(styleTitle.Render("Front"))
			printFace(rule.Front)
			if rule.HasBack() {
				fmt.Println(styleTitle.Render("Back"))
				printFace(rule.Back)
			}
			printSuccess("%d scale(s): %s", len(rule.RoleScales()), rule)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&length, "length", "l", 0, "scale length in points")
	return cmd
}

func printFace(face rules.Face) {
	printGroup := func(role string, defs []*scale.Definition) {
		names := make([]string, len(defs))
		for i, def := range defs {
			names[i] = def.Name
		}
		fmt.Printf("  %-14s %s\n", styleDim.Render(role), styleValue.Render(strings.Join(names, "  ")))
	}
	printGroup("top stator", face.TopStator)
	printGroup("slide", face.Slide)
	printGroup("bottom stator", face.BottomStator)
}

// newRulesRenderCmd creates "rules render".
func newRulesRenderCmd(e *env) *cobra.Command {
	var (
		length    float64
		output    string
		back      bool
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "render RULE",
		Short: "Render one face of a rule to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 {
				length = e.cfg.ScaleLength
			}
			rule, err := resolveRule(e, args[0], length)
			if err != nil {
				return err
			}

			face := rule.Front
			if back {
				if !rule.HasBack() {
					return errors.New(errors.ErrCodeInvalidRule, "rule has no back face")
				}
				face = rule.Back
			}

			if algorithm == "" {
				algorithm = e.cfg.Algorithm
			}
			alg, err := tick.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			data, err := render.FacePNG(face, tick.Options{Algorithm: alg})
			if err != nil {
				return err
			}
			if output == "" {
				output = "face.png"
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("rendered %d scale(s) to %s", len(face.TopStator)+len(face.Slide)+len(face.BottomStator), output)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&length, "length", "l", 0, "scale length in points")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default face.png)")
	cmd.Flags().BoolVar(&back, "back", false, "render the back face")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "tick strategy: legacy or modulo")
	return cmd
}
