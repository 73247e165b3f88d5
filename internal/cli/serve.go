package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/observability"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/server"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/store"
)

// newServeCmd creates the serve command.
func newServeCmd(e *env) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scale engine over HTTP",
		Long: `Serve exposes the catalog and the generator as a JSON API. With a MongoDB
URI configured, custom definitions are stored and served alongside the
catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if listen == "" {
				listen = e.cfg.Server.Listen
			}

			hooks := logHooks{logger: logger}
			observability.SetCacheHooks(hooks)
			observability.SetGenerationHooks(hooks)

			c, err := e.openCache(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			var st *store.Store
			if uri := e.cfg.Server.MongoURI; uri != "" {
				st, err = store.New(ctx, store.Config{URI: uri, Database: e.cfg.Server.MongoDatabase})
				if err != nil {
					return err
				}
				defer st.Close(ctx)
				logger.Info("custom definition store enabled", "database", e.cfg.Server.MongoDatabase)
			}

			srv := server.New(server.Options{
				Logger:           logger,
				Cache:            c,
				Store:            st,
				DefaultLength:    e.cfg.ScaleLength,
				DefaultAlgorithm: e.cfg.Algorithm,
				CacheTTL:         time.Duration(e.cfg.Cache.TTLHours) * time.Hour,
			})
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "bind address (default from config, :8080)")
	return cmd
}

// logHooks surfaces observability events in the server log at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h logHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h logHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h logHooks) OnGenerateStart(_ context.Context, scaleName, algorithm string) {
	h.logger.Debug("generate start", "scale", scaleName, "algorithm", algorithm)
}

func (h logHooks) OnGenerateComplete(_ context.Context, scaleName string, tickCount int, duration time.Duration) {
	h.logger.Debug("generate done", "scale", scaleName, "ticks", tickCount, "elapsed", duration)
}
