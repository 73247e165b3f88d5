package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/buildinfo"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/cache"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/config"
)

// env is the shared state commands read after PersistentPreRunE ran.
type env struct {
	cfg     *config.Config
	noCache bool
}

// openCache builds the cache backend the configuration selects. The
// --no-cache flag overrides everything with a null cache.
func (e *env) openCache(ctx context.Context) (cache.Cache, error) {
	if e.noCache || e.cfg.Cache.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if e.cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     e.cfg.Cache.RedisAddr,
			Password: e.cfg.Cache.RedisPassword,
			DB:       e.cfg.Cache.RedisDB,
		})
	}
	return cache.NewFileCache(e.cfg.CacheDir())
}

// Execute runs the electricslide CLI and returns an error if any command
// fails. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		e          env
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Slide rule scale engine",
		Long:         "electricslide computes, validates, exports, and renders slide rule scales, from the plain C/D pair through log-log and electrical engineering scales.",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to .electricslide.toml")
	root.PersistentFlags().BoolVar(&e.noCache, "no-cache", false, "bypass the generation cache")

	root.AddCommand(newGenerateCmd(&e))
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newInspectCmd(&e))
	root.AddCommand(newRulesCmd(&e))
	root.AddCommand(newValidateCmd(&e))
	root.AddCommand(newServeCmd(&e))
	root.AddCommand(newCacheCmd(&e))

	return root.ExecuteContext(ctx)
}
