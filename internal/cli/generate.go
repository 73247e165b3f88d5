package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/batch"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/cache"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/export"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/render"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd(e *env) *cobra.Command {
	var (
		length     float64
		circular   bool
		format     string
		outputDir  string
		algorithm  string
		multiplier int
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "generate SCALE...",
		Short: "Generate tick data for one or more scales",
		Long: `Generate computes the full tick sequence for the named catalog scales and
writes one file per scale. Use "all" to generate the entire catalog.

Formats: json (export document), csv (one row per tick), png (rendered image).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			names := args
			if len(args) == 1 && strings.EqualFold(args[0], "all") {
				names = catalog.Names()
			}

			if length <= 0 {
				length = e.cfg.ScaleLength
			}
			defs := make([]*scale.Definition, 0, len(names))
			for _, name := range names {
				var (
					def *scale.Definition
					ok  bool
				)
				if circular {
					def, ok = catalog.LookupCircular(name, length)
				} else {
					def, ok = catalog.Lookup(name, length)
				}
				if !ok {
					return errors.New(errors.ErrCodeUnknownScale, "unknown scale %q", name)
				}
				defs = append(defs, def)
			}

			if algorithm == "" {
				algorithm = e.cfg.Algorithm
			}
			alg, err := tick.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			opts := tick.Options{Algorithm: alg, PrecisionMultiplier: multiplier}

			switch format {
			case "json", "csv", "png":
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (json, csv, png)", format)
			}

			if outputDir == "" {
				outputDir = e.cfg.OutputDir
			}
			if outputDir == "" {
				outputDir = "."
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			c, err := e.openCache(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			p := newProgress(logger)
			results := batch.Generate(ctx, defs, batch.Options{Workers: workers, Tick: opts})
			written := 0
			for i, res := range results {
				if res.Err != nil {
					return res.Err
				}
				logger.Debug("generated", "scale", defs[i].Name, "ticks", len(res.Generated.Ticks), "job", res.JobID)
				path, err := writeResult(ctx, c, res.Generated, opts, format, outputDir)
				if err != nil {
					return err
				}
				printSuccess("%s %s", defs[i].Name, styleDim.Render(path))
				written++
			}
			p.done(fmt.Sprintf("Generated %d scale(s)", written))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&length, "length", "l", 0, "scale length in points (circular: diameter)")
	cmd.Flags().BoolVar(&circular, "circular", false, "lay the scale out as a circle")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, csv, or png")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "tick strategy: legacy or modulo")
	cmd.Flags().IntVar(&multiplier, "multiplier", 0, "precision multiplier for the modulo strategy (0 = auto)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent generation workers (0 = one per CPU)")

	return cmd
}

// writeResult writes one generated scale in the requested format and
// returns the file path. JSON output goes through the cache.
func writeResult(ctx context.Context, c cache.Cache, gen *scale.Generated, opts tick.Options, format, dir string) (string, error) {
	base := filepath.Join(dir, sanitizeName(gen.Definition.Name))
	switch format {
	case "csv":
		return base + ".csv", export.ExportCSV(gen, base+".csv")
	case "png":
		data, err := render.PNG(gen)
		if err != nil {
			return "", err
		}
		return base + ".png", os.WriteFile(base+".png", data, 0o644)
	}

	path := base + ".json"
	key := cache.NewDefaultKeyer().ScaleKey(gen.Definition, opts)
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return path, os.WriteFile(path, data, 0o644)
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(gen, &buf); err != nil {
		return "", err
	}
	_ = c.Set(ctx, key, buf.Bytes(), 0)
	return path, os.WriteFile(path, buf.Bytes(), 0o644)
}

// sanitizeName keeps scale names like "Γ" or "λ" usable as file names and
// strips path separators.
func sanitizeName(name string) string {
	name = strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, name)
}
