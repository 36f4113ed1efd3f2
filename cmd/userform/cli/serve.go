package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-userform"
	"github.com/goliatone/go-userform/internal/config"
	"github.com/goliatone/go-userform/internal/logging"
	"github.com/goliatone/go-userform/internal/metrics"
	"github.com/goliatone/go-userform/internal/server"
	"github.com/goliatone/go-userform/internal/session"
	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/renderers/vanilla"
)

func ServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form over HTTP",
		Long:  `Serve the form as a server-rendered page. Each visitor gets an in-memory form kept until it sits idle for the session TTL.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, logger)
		},
	}

	return cmd
}

func runServer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	formModel, err := loadForm(ctx, cfg)
	if err != nil {
		return err
	}
	renderer, err := vanilla.New(vanilla.WithTemplatesDir(cfg.TemplatesDir))
	if err != nil {
		return err
	}
	themeCfg, err := vanilla.Theme(cfg.ThemeVariant, cfg.AssetPrefix)
	if err != nil {
		return err
	}

	m := metrics.New()
	formLogger := logging.Named(logger, "form")
	store := session.NewStore(func() *form.Controller {
		return userform.NewController(formModel,
			form.WithDismissAfter(cfg.DismissAfter),
			form.WithLogger(formLogger),
		)
	},
		session.WithTTL(cfg.SessionTTL),
		session.WithLogger(logging.Named(logger, "session")),
		session.WithRecorder(m),
	)
	go store.Run(ctx)

	handler := server.New(formModel, renderer, store,
		server.WithLogger(logging.Named(logger, "http")),
		server.WithMetrics(m),
		server.WithTheme(themeCfg),
		server.WithDismissAfter(cfg.DismissAfter),
		server.WithAssets(cfg.AssetPrefix, vanilla.AssetsFS()),
	)

	logger.Info("serving form",
		zap.String("operation", formModel.OperationID),
		zap.String("theme_variant", cfg.ThemeVariant),
		zap.Duration("dismiss_after", cfg.DismissAfter),
	)
	return server.Serve(ctx, server.NewHTTPServer(cfg.Addr, handler.Routes()), logging.Named(logger, "http"))
}
